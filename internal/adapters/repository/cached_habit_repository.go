package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitCacheTTL = 30 * time.Minute

// CachedHabitRepository is a read-through cache for per-owner habit
// listings. Every write path invalidates the owner's cached list; reads
// that miss or hit corrupted data fall back to the underlying store.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedHabitRepository) cacheKey(ownerID int64) string {
	return fmt.Sprintf("habits:%d", ownerID)
}

func (r *CachedHabitRepository) invalidate(ctx context.Context, ownerID int64) {
	if err := r.cache.Del(ctx, r.cacheKey(ownerID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for owner %d: %v", ownerID, err)
	}
}

func (r *CachedHabitRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Habit, error) {
	key := r.cacheKey(ownerID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}

		log.Printf("[CACHE] Corrupted data for owner %d, cleaning up key", ownerID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	habits, err := r.next.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, key, data, habitCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.next.Exists(ctx, id)
}

func (r *CachedHabitRepository) ListAll(ctx context.Context) ([]*domain.Habit, error) {
	return r.next.ListAll(ctx)
}

func (r *CachedHabitRepository) Add(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	created, err := r.next.Add(ctx, habit)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, created.OwnerID)
	return created, nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.OwnerID)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id int64) error {
	habit, err := r.next.GetByID(ctx, id)
	if err == nil && habit != nil {
		defer r.invalidate(ctx, habit.OwnerID)
	}

	return r.next.Delete(ctx, id)
}

func (r *CachedHabitRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	defer r.invalidate(ctx, ownerID)
	return r.next.DeleteByOwner(ctx, ownerID)
}
