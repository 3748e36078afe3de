package services

import (
	"context"
	"fmt"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

// AdminService holds the administrative pass-throughs: bulk listings,
// arbitrary deletes, and blocking. Every method checks the acting user's
// role first.
type AdminService struct {
	userRepo  domain.UserRepository
	habitRepo domain.HabitRepository
}

func NewAdminService(userRepo domain.UserRepository, habitRepo domain.HabitRepository) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		habitRepo: habitRepo,
	}
}

func (s *AdminService) requireAdmin(actor *domain.User) error {
	if actor == nil || !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.userRepo.ListAll(ctx)
}

func (s *AdminService) ListHabits(ctx context.Context, actor *domain.User) ([]*domain.Habit, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.habitRepo.ListAll(ctx)
}

// DeleteUser removes the user together with all their habits.
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.User, userID int64) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.habitRepo.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("admin service: failed to delete habits of user %d: %w", userID, err)
	}

	return s.userRepo.Delete(ctx, userID)
}

func (s *AdminService) DeleteHabit(ctx context.Context, actor *domain.User, habitID int64) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}

	return s.habitRepo.Delete(ctx, habitID)
}

func (s *AdminService) SetBlocked(ctx context.Context, actor *domain.User, userID int64, blocked bool) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Blocked = blocked
	return s.userRepo.Update(ctx, user)
}
