package domain

import "context"

type UserRepository interface {
	// Add persists a new user and returns it with its assigned id.
	Add(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a user with the email is stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update replaces the stored state of an existing user.
	Update(ctx context.Context, user *User) error

	// Delete permanently removes a user.
	Delete(ctx context.Context, id int64) error

	// ListAll retrieves every stored user, for administrative listings.
	ListAll(ctx context.Context) ([]*User, error)
}
