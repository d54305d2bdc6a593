package workers

import (
	"context"
	"log"

	"github.com/strideworks/stride-engine/internal/core/analytics"
	"github.com/strideworks/stride-engine/internal/core/domain"
)

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type StreakJob struct {
	HabitID string
}

// StreakWorker refreshes the denormalized streak counters after check-in
// mutations. Streak math itself lives in the analytics package; the worker
// only moves results into storage.
type StreakWorker struct {
	habitRepo HabitRepository
	jobs      chan StreakJob
}

func NewStreakWorker(repo HabitRepository) *StreakWorker {
	return &StreakWorker{
		habitRepo: repo,
		jobs:      make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(habitID string) {
	select {
	case w.jobs <- StreakJob{HabitID: habitID}:
	default:
		log.Printf("Streak worker queue full! Dropping job for habit %s", habitID)
	}
}

// ProcessOne recomputes and persists streaks for a single habit. Exposed so
// callers that need synchronous results (tests, backfills) can bypass the
// queue.
func (w *StreakWorker) ProcessOne(ctx context.Context, habitID string) error {
	habit, err := w.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return err
	}

	current := analytics.CurrentStreak(habit.CheckIns, domain.Today())
	longest := analytics.MaxStreak(habit.CheckIns)

	if habit.CurrentStreak == current && habit.LongestStreak == longest {
		return nil
	}

	return w.habitRepo.UpdateStreaks(ctx, habitID, current, longest)
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	if err := w.ProcessOne(ctx, job.HabitID); err != nil {
		log.Printf("Streak worker failed for habit %s: %v", job.HabitID, err)
	}
}
