package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates habit with empty history and created status", func(t *testing.T) {
		h, err := domain.NewHabit(1, "Drink Water", "Two liters a day", domain.FrequencyDaily)

		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Equal(t, int64(1), h.OwnerID)
		assert.Equal(t, "Drink Water", h.Title)
		assert.Equal(t, domain.StatusCreated, h.Status)
		assert.Empty(t, h.ExecutionHistory)
		assert.Zero(t, h.ID, "id is assigned by the store, not the constructor")
		assert.WithinDuration(t, time.Now().UTC(), h.Created, 2*time.Second)
	})

	t.Run("Success: Trims whitespace", func(t *testing.T) {
		h, err := domain.NewHabit(1, "  Read  ", "  Ten pages  ", domain.FrequencyWeekly)

		require.NoError(t, err)
		assert.Equal(t, "Read", h.Title)
		assert.Equal(t, "Ten pages", h.Description)
	})

	t.Run("Error: Empty title", func(t *testing.T) {
		_, err := domain.NewHabit(1, "  ", "desc", domain.FrequencyDaily)
		assert.ErrorIs(t, err, domain.ErrHabitTitleEmpty)
	})

	t.Run("Error: Empty description", func(t *testing.T) {
		_, err := domain.NewHabit(1, "Title", "", domain.FrequencyDaily)
		assert.ErrorIs(t, err, domain.ErrHabitDescEmpty)
	})

	t.Run("Error: Title too long", func(t *testing.T) {
		_, err := domain.NewHabit(1, strings.Repeat("x", 101), "desc", domain.FrequencyDaily)
		assert.ErrorIs(t, err, domain.ErrHabitTitleTooLong)
	})

	t.Run("Error: Invalid owner", func(t *testing.T) {
		_, err := domain.NewHabit(0, "Title", "desc", domain.FrequencyDaily)
		assert.ErrorIs(t, err, domain.ErrHabitInvalidOwner)
	})

	t.Run("Error: Invalid frequency", func(t *testing.T) {
		_, err := domain.NewHabit(1, "Title", "desc", domain.Frequency("hourly"))
		assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
	})
}

func TestHabit_RecordExecution(t *testing.T) {
	today := domain.Today()

	newHabit := func(f domain.Frequency) *domain.Habit {
		h, err := domain.NewHabit(1, "Title", "desc", f)
		require.NoError(t, err)
		return h
	}

	t.Run("Success: First completion moves status to in_progress", func(t *testing.T) {
		h := newHabit(domain.FrequencyDaily)

		updated, err := h.RecordExecution(today)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, updated.Status)
		require.Len(t, updated.ExecutionHistory, 1)
		assert.True(t, updated.ExecutionHistory[0].Equal(today))

		// the original habit must stay untouched
		assert.Equal(t, domain.StatusCreated, h.Status)
		assert.Empty(t, h.ExecutionHistory)
	})

	t.Run("Success: Status never reverts from in_progress", func(t *testing.T) {
		h := newHabit(domain.FrequencyDaily)
		first, err := h.RecordExecution(today.AddDays(-1))
		require.NoError(t, err)

		second, err := first.RecordExecution(today)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, second.Status)
		assert.Len(t, second.ExecutionHistory, 2)
	})

	t.Run("Error: Daily completion twice on the same day", func(t *testing.T) {
		h := newHabit(domain.FrequencyDaily)
		first, err := h.RecordExecution(today)
		require.NoError(t, err)

		_, err = first.RecordExecution(today)
		assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
		assert.Len(t, first.ExecutionHistory, 1, "history must not grow on rejection")
	})

	t.Run("Error: Weekly completion six days after the last", func(t *testing.T) {
		h := newHabit(domain.FrequencyWeekly)
		first, err := h.RecordExecution(today.AddDays(-6))
		require.NoError(t, err)

		_, err = first.RecordExecution(today)
		assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	})

	t.Run("Success: Weekly completion exactly seven days after the last", func(t *testing.T) {
		h := newHabit(domain.FrequencyWeekly)
		first, err := h.RecordExecution(today.AddDays(-7))
		require.NoError(t, err)

		second, err := first.RecordExecution(today)
		require.NoError(t, err)
		assert.Len(t, second.ExecutionHistory, 2)
	})
}

func TestHabit_ExecutionsInWindow(t *testing.T) {
	today := domain.Today()
	h := &domain.Habit{
		Frequency: domain.FrequencyDaily,
		ExecutionHistory: []domain.Date{
			today,
			today.AddDays(-3),
			today.AddDays(-10),
		},
	}

	start, end := domain.PeriodWeek.Window(today)
	executions := h.ExecutionsInWindow(start, end)

	require.Len(t, executions, 2)
	assert.True(t, executions[0].Equal(today))
	assert.True(t, executions[1].Equal(today.AddDays(-3)))
}
