package services

import (
	"context"
	"fmt"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

type AuthService struct {
	repo domain.UserRepository
}

func NewAuthService(repo domain.UserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	ID       int64
	Name     string
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth service: email lookup failed: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return created, nil
}

// Login authenticates by email and password. Blocked users are rejected
// even with valid credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, err
	}

	if user.Blocked {
		return nil, domain.ErrUserBlocked
	}

	return user, nil
}

// Update applies a partial update to the user's own account. A changed
// email must not collide with another account.
func (s *AuthService) Update(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		updated, err := domain.NewUser(mergeString(input.Name, user.Name), input.Email)
		if err != nil {
			return nil, err
		}

		taken, err := s.repo.ExistsByEmail(ctx, updated.Email)
		if err != nil {
			return nil, fmt.Errorf("auth service: email lookup failed: %w", err)
		}
		if taken {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = updated.Email
	}

	user.Name = mergeString(input.Name, user.Name)

	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *AuthService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
