package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

var _ domain.HabitRepository = (*InMemoryHabitRepository)(nil)

// InMemoryHabitRepository keeps habits in a map guarded by a RWMutex.
// The id counter lives inside the repository and is advanced under the
// same lock that serializes writes, so ids are monotonic and never
// reused even after deletes.
type InMemoryHabitRepository struct {
	mu     sync.RWMutex
	store  map[int64]*domain.Habit
	nextID int64
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[int64]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Add(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++

	stored := cloneHabit(habit)
	stored.ID = r.nextID
	r.store[stored.ID] = stored

	return cloneHabit(stored), nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return cloneHabit(habit), nil
}

func (r *InMemoryHabitRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]*domain.Habit, 0)
	for _, h := range r.store {
		if h.OwnerID == ownerID {
			habits = append(habits, cloneHabit(h))
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].ID < habits[j].ID
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	r.store[habit.ID] = cloneHabit(habit)
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryHabitRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.store {
		if h.OwnerID == ownerID {
			delete(r.store, id)
		}
	}
	return nil
}

func (r *InMemoryHabitRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[id]
	return ok, nil
}

func (r *InMemoryHabitRepository) ListAll(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.store))
	for _, h := range r.store {
		habits = append(habits, cloneHabit(h))
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].ID < habits[j].ID
	})

	return habits, nil
}

// cloneHabit hands out defensive copies so callers cannot mutate stored
// state behind the repository's back; the execution history slice is
// copied too.
func cloneHabit(h *domain.Habit) *domain.Habit {
	clone := *h
	clone.ExecutionHistory = make([]domain.Date, len(h.ExecutionHistory))
	copy(clone.ExecutionHistory, h.ExecutionHistory)
	return &clone
}
