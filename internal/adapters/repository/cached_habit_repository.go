package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/strideworks/stride-engine/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitListTTL = 30 * time.Minute

// CachedHabitRepository decorates a habit repository with a redis cache on
// the per-user habit list. That list is read on every tracker render and
// every statistics request, making it the hottest query in the system.
// Every write path invalidates; reads repopulate lazily.
type CachedHabitRepository struct {
	source domain.HabitRepository
	cache  *redis.Client
	ttl    time.Duration
}

func NewCachedHabitRepository(source domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		source: source,
		cache:  cache,
		ttl:    habitListTTL,
	}
}

func habitListKey(userID string) string {
	return fmt.Sprintf("habits:%s", userID)
}

func (r *CachedHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	if habits, ok := r.readCached(ctx, userID); ok {
		return habits, nil
	}

	habits, err := r.source.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.storeCached(ctx, userID, habits)

	return habits, nil
}

func (r *CachedHabitRepository) readCached(ctx context.Context, userID string) ([]*domain.Habit, bool) {
	key := habitListKey(userID)

	raw, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] read error for user %s: %v", userID, err)
		}
		return nil, false
	}

	var habits []*domain.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		log.Printf("[CACHE] corrupted entry for user %s, evicting", userID)
		r.cache.Del(ctx, key)
		return nil, false
	}

	return habits, true
}

func (r *CachedHabitRepository) storeCached(ctx context.Context, userID string, habits []*domain.Habit) {
	data, err := json.Marshal(habits)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, habitListKey(userID), data, r.ttl).Err(); err != nil {
		log.Printf("[CACHE] write error for user %s: %v", userID, err)
	}
}

func (r *CachedHabitRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, habitListKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] invalidation failed for user %s: %v", userID, err)
	}
}

// invalidateByHabitID resolves the owner first; id-only write paths need
// this because the cache is keyed by user.
func (r *CachedHabitRepository) invalidateByHabitID(ctx context.Context, id string) {
	habit, err := r.source.GetByID(ctx, id)
	if err != nil || habit == nil {
		return
	}
	r.invalidate(ctx, habit.UserID)
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.source.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.source.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.source.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	r.invalidateByHabitID(ctx, id)
	return r.source.Delete(ctx, id)
}

func (r *CachedHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	if err := r.source.UpdateStreaks(ctx, id, current, longest); err != nil {
		return err
	}
	r.invalidateByHabitID(ctx, id)
	return nil
}
