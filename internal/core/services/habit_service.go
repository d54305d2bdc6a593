package services

import (
	"context"

	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/strideworks/stride-engine/internal/core/workers"
)

type HabitService struct {
	repo   domain.HabitRepository
	worker *workers.StreakWorker
}

func NewHabitService(repo domain.HabitRepository, worker *workers.StreakWorker) *HabitService {
	return &HabitService{
		repo:   repo,
		worker: worker,
	}
}

type CreateHabitInput struct {
	UserID      string
	Title       string
	Description string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.UserID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *HabitService) Rename(ctx context.Context, id, userID, title, description string) (*domain.Habit, error) {
	habit, err := s.ownedHabit(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := habit.Rename(title, description); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// CheckIn marks the habit done on the given day. Days after today are a
// policy violation and rejected here; the analytics engine itself stays
// policy-free. Re-checking an already checked day is a silent no-op.
func (s *HabitService) CheckIn(ctx context.Context, id, userID string, day domain.LocalDate) error {
	habit, err := s.ownedHabit(ctx, id, userID)
	if err != nil {
		return err
	}

	added, err := habit.CheckIn(day, domain.Today())
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return err
	}

	s.worker.Enqueue(habit.ID)
	return nil
}

func (s *HabitService) Uncheck(ctx context.Context, id, userID string, day domain.LocalDate) error {
	habit, err := s.ownedHabit(ctx, id, userID)
	if err != nil {
		return err
	}

	if !habit.Uncheck(day) {
		return nil
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return err
	}

	s.worker.Enqueue(habit.ID)
	return nil
}

func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.ownedHabit(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *HabitService) ownedHabit(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}
