package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		p, err := domain.ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(p))
	}

	_, err := domain.ParsePeriod("year")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = domain.ParsePeriod("")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestPeriod_Window(t *testing.T) {
	ref := domain.NewDate(2024, time.May, 15)

	t.Run("Day window reaches back one day", func(t *testing.T) {
		start, end := domain.PeriodDay.Window(ref)
		assert.True(t, start.Equal(domain.NewDate(2024, time.May, 14)))
		assert.True(t, end.Equal(ref))
	})

	t.Run("Week window reaches back seven days", func(t *testing.T) {
		start, end := domain.PeriodWeek.Window(ref)
		assert.True(t, start.Equal(domain.NewDate(2024, time.May, 8)))
		assert.True(t, end.Equal(ref))
	})

	t.Run("Month window is calendar-correct", func(t *testing.T) {
		start, end := domain.PeriodMonth.Window(ref)
		assert.True(t, start.Equal(domain.NewDate(2024, time.April, 15)))
		assert.True(t, end.Equal(ref))
	})

	t.Run("Month window clips day-of-month", func(t *testing.T) {
		start, _ := domain.PeriodMonth.Window(domain.NewDate(2024, time.March, 31))
		assert.True(t, start.Equal(domain.NewDate(2024, time.February, 29)))
	})
}

func TestPeriod_TotalDays(t *testing.T) {
	ref := domain.NewDate(2024, time.February, 10)

	assert.Equal(t, 1, domain.PeriodDay.TotalDays(ref))
	assert.Equal(t, 7, domain.PeriodWeek.TotalDays(ref))
	// month denominator counts the current month, not the window
	assert.Equal(t, 29, domain.PeriodMonth.TotalDays(ref))
	assert.Equal(t, 31, domain.PeriodMonth.TotalDays(domain.NewDate(2024, time.July, 1)))
}
