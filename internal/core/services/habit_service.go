package services

import (
	"context"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

type HabitService struct {
	repo domain.HabitRepository
}

func NewHabitService(repo domain.HabitRepository) *HabitService {
	return &HabitService{
		repo: repo,
	}
}

type CreateHabitInput struct {
	OwnerID     int64
	Title       string
	Description string
	Frequency   string
}

// UpdateHabitInput carries a partial update: empty fields leave the
// stored value untouched.
type UpdateHabitInput struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Frequency   string
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	frequency, err := domain.ParseFrequency(input.Frequency)
	if err != nil {
		return nil, err
	}

	habit, err := domain.NewHabit(input.OwnerID, input.Title, input.Description, frequency)
	if err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, habit)
}

// Get returns the habit only when it belongs to ownerID. A habit owned by
// somebody else is reported as not found rather than as forbidden, so ids
// cannot be probed.
func (s *HabitService) Get(ctx context.Context, id, ownerID int64) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if habit.OwnerID != ownerID {
		return nil, domain.ErrHabitNotFound
	}

	return habit, nil
}

func (s *HabitService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Habit, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.Get(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	habit.Title = mergeString(input.Title, habit.Title)
	habit.Description = mergeString(input.Description, habit.Description)

	if input.Frequency != "" {
		frequency, err := domain.ParseFrequency(input.Frequency)
		if err != nil {
			return nil, err
		}
		habit.Frequency = frequency
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id, ownerID int64) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
