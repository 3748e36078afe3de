package services

import (
	"context"
	"sync"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

// ExecutionService records habit completions and reads execution history
// back per period. RecordExecution is a read-check-then-write cycle, so
// calls are serialized per habit id: two concurrent attempts for the same
// habit can never both pass the duplicate-prevention check.
type ExecutionService struct {
	repo domain.HabitRepository

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewExecutionService(repo domain.HabitRepository) *ExecutionService {
	return &ExecutionService{
		repo:  repo,
		locks: make(map[int64]*sync.Mutex),
	}
}

func (s *ExecutionService) habitLock(habitID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[habitID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[habitID] = lock
	}
	return lock
}

// RecordExecution appends today's date to the habit's history after the
// frequency's duplicate-prevention rule passes. On the first completion
// the habit moves from created to in_progress. The updated habit is
// persisted as a whole; the loaded copy is never mutated in place.
func (s *ExecutionService) RecordExecution(ctx context.Context, habitID, ownerID int64) (*domain.Habit, error) {
	lock := s.habitLock(habitID)
	lock.Lock()
	defer lock.Unlock()

	habit, err := s.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.OwnerID != ownerID {
		return nil, domain.ErrHabitNotFound
	}

	updated, err := habit.RecordExecution(domain.Today())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// GetExecutions returns the habit's completion dates inside the window
// the period resolves to against today, both window ends inclusive.
func (s *ExecutionService) GetExecutions(ctx context.Context, habitID, ownerID int64, period domain.Period) ([]domain.Date, error) {
	habit, err := s.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.OwnerID != ownerID {
		return nil, domain.ErrHabitNotFound
	}

	start, end := period.Window(domain.Today())
	return habit.ExecutionsInWindow(start, end), nil
}
