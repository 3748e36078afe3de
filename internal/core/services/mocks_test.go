package services_test

import (
	"context"
	"sort"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

// MockHabitRepo is a map-backed HabitRepository with an injectable error
// for failure-path tests. It clones on the way in and out like the real
// stores do.
type MockHabitRepo struct {
	store         map[int64]*domain.Habit
	nextID        int64
	simulateError error
}

func NewMockHabitRepo() *MockHabitRepo {
	return &MockHabitRepo{
		store: make(map[int64]*domain.Habit),
	}
}

func cloneHabit(h *domain.Habit) *domain.Habit {
	clone := *h
	clone.ExecutionHistory = append([]domain.Date{}, h.ExecutionHistory...)
	return &clone
}

func (m *MockHabitRepo) Add(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	m.nextID++
	stored := cloneHabit(habit)
	stored.ID = m.nextID
	m.store[stored.ID] = stored
	return cloneHabit(stored), nil
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return cloneHabit(h), nil
}

func (m *MockHabitRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	list := make([]*domain.Habit, 0)
	for _, h := range m.store {
		if h.OwnerID == ownerID {
			list = append(list, cloneHabit(h))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockHabitRepo) Update(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	if _, ok := m.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	m.store[habit.ID] = cloneHabit(habit)
	return nil
}

func (m *MockHabitRepo) Delete(ctx context.Context, id int64) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	if _, ok := m.store[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MockHabitRepo) DeleteByOwner(ctx context.Context, ownerID int64) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	for id, h := range m.store {
		if h.OwnerID == ownerID {
			delete(m.store, id)
		}
	}
	return nil
}

func (m *MockHabitRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.simulateError != nil {
		return false, m.simulateError
	}

	_, ok := m.store[id]
	return ok, nil
}

func (m *MockHabitRepo) ListAll(ctx context.Context) ([]*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	list := make([]*domain.Habit, 0, len(m.store))
	for _, h := range m.store {
		list = append(list, cloneHabit(h))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

type MockUserRepo struct {
	store         map[int64]*domain.User
	nextID        int64
	simulateError error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{
		store: make(map[int64]*domain.User),
	}
}

func (m *MockUserRepo) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	m.nextID++
	stored := *user
	stored.ID = m.nextID
	m.store[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	for _, u := range m.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.simulateError != nil {
		return false, m.simulateError
	}

	for _, u := range m.store {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	if _, ok := m.store[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	m.store[user.ID] = &clone
	return nil
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	if _, ok := m.store[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MockUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}

	list := make([]*domain.User, 0, len(m.store))
	for _, u := range m.store {
		clone := *u
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
