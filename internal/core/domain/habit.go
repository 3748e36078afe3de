package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitTitleEmpty   = errors.New("habit title cannot be empty")
	ErrHabitDescEmpty    = errors.New("habit description cannot be empty")
	ErrHabitTitleTooLong = errors.New("habit title is too long (max 100 chars)")
	ErrHabitDescTooLong  = errors.New("habit description is too long (max 500 chars)")
	ErrHabitInvalidOwner = errors.New("invalid owner id")
	ErrAlreadyCompleted  = errors.New("habit already completed in the current window")
)

const (
	MaxTitleLen = 100
	MaxDescLen  = 500
)

// Status tracks whether a habit has ever been completed. The only
// transition is created -> in_progress on the first recorded execution;
// it never reverts.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
)

type Habit struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Frequency   Frequency `json:"frequency" db:"frequency"`
	Status      Status    `json:"status" db:"status"`

	// ExecutionHistory holds the calendar dates completions were
	// recorded on. It is not guaranteed sorted.
	ExecutionHistory []Date `json:"execution_history"`

	Created time.Time `json:"created" db:"created"`
}

func NewHabit(ownerID int64, title, description string, frequency Frequency) (*Habit, error) {
	if ownerID <= 0 {
		return nil, ErrHabitInvalidOwner
	}

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return nil, ErrHabitTitleEmpty
	}
	if len(trimmedTitle) > MaxTitleLen {
		return nil, ErrHabitTitleTooLong
	}

	trimmedDesc := strings.TrimSpace(description)
	if trimmedDesc == "" {
		return nil, ErrHabitDescEmpty
	}
	if len(trimmedDesc) > MaxDescLen {
		return nil, ErrHabitDescTooLong
	}

	if !frequency.Valid() {
		return nil, ErrInvalidFrequency
	}

	return &Habit{
		OwnerID:          ownerID,
		Title:            trimmedTitle,
		Description:      trimmedDesc,
		Frequency:        frequency,
		Status:           StatusCreated,
		ExecutionHistory: []Date{},
		Created:          time.Now().UTC(),
	}, nil
}

// RecordExecution validates the duplicate-prevention rule for ref and
// returns an updated copy of the habit with the completion appended.
// The receiver is never mutated; the caller persists the copy as a whole
// so the store stays the single owner of committed state.
func (h *Habit) RecordExecution(ref Date) (*Habit, error) {
	if h.Frequency.DuplicateWindowViolated(h.ExecutionHistory, ref) {
		return nil, ErrAlreadyCompleted
	}

	updated := *h
	updated.ExecutionHistory = make([]Date, 0, len(h.ExecutionHistory)+1)
	updated.ExecutionHistory = append(updated.ExecutionHistory, h.ExecutionHistory...)
	updated.ExecutionHistory = append(updated.ExecutionHistory, ref)

	if updated.Status == StatusCreated {
		updated.Status = StatusInProgress
	}

	return &updated, nil
}

// ExecutionsInWindow returns the completion dates falling inside
// [start, end] inclusive, in history order.
func (h *Habit) ExecutionsInWindow(start, end Date) []Date {
	executions := make([]Date, 0, len(h.ExecutionHistory))
	for _, d := range h.ExecutionHistory {
		if d.InWindow(start, end) {
			executions = append(executions, d)
		}
	}
	return executions
}
