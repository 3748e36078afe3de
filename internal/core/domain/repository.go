package domain

import "context"

// HabitRepository is the key-value persistence boundary the engine runs
// against. Implementations assign ids on Add (monotonically increasing,
// never reused) and serialize writes so a read-modify-write cycle in the
// services cannot interleave with another writer for the same habit.
type HabitRepository interface {
	// Add persists a new habit and returns it with its assigned id.
	Add(ctx context.Context, habit *Habit) (*Habit, error)

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id int64) (*Habit, error)

	// ListByOwner retrieves all habits belonging to one user.
	ListByOwner(ctx context.Context, ownerID int64) ([]*Habit, error)

	// Update replaces the stored state of an existing habit as a whole.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit. Deletion is immediate and
	// irreversible; there is no soft-delete.
	Delete(ctx context.Context, id int64) error

	// DeleteByOwner removes every habit belonging to one user.
	DeleteByOwner(ctx context.Context, ownerID int64) error

	// Exists reports whether a habit with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// ListAll retrieves every stored habit, for administrative listings.
	ListAll(ctx context.Context) ([]*Habit, error)
}
