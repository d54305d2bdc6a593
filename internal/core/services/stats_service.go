package services

import (
	"context"

	"github.com/strideworks/stride-engine/internal/core/analytics"
	"github.com/strideworks/stride-engine/internal/core/domain"
)

// StatsService assembles statistics snapshots for one user. It only loads
// entities and hands them to the analytics engine; every number the API
// serves is computed there, never here.
type StatsService struct {
	goalRepo  domain.GoalRepository
	habitRepo domain.HabitRepository
}

func NewStatsService(goalRepo domain.GoalRepository, habitRepo domain.HabitRepository) *StatsService {
	return &StatsService{
		goalRepo:  goalRepo,
		habitRepo: habitRepo,
	}
}

func (s *StatsService) Overview(ctx context.Context, userID string, today domain.LocalDate) (*analytics.OverviewStats, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := analytics.Overview(goals, habits, today)
	return &stats, nil
}

func (s *StatsService) GoalStats(ctx context.Context, userID string, period analytics.Period, ref domain.LocalDate) (*analytics.GoalPeriodStats, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := analytics.GoalStats(goals, period, ref)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *StatsService) HabitStats(ctx context.Context, userID string, period analytics.Period, ref domain.LocalDate) (*analytics.HabitPeriodStats, error) {
	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := analytics.HabitStats(habits, period, ref)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Activity returns the per-day check-in histogram over the period's day
// sequence, one point per day in order.
func (s *StatsService) Activity(ctx context.Context, userID string, period analytics.Period, ref domain.LocalDate) ([]analytics.ActivityPoint, error) {
	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	days, err := analytics.HistogramDays(period, ref)
	if err != nil {
		return nil, err
	}

	return analytics.ActivityHistogram(habits, days), nil
}

// TrackerDays resolves the calendar grid for the tracker page: a Monday-
// first week or a full calendar month around the reference day.
func (s *StatsService) TrackerDays(view analytics.Period, ref domain.LocalDate) ([]domain.LocalDate, error) {
	return analytics.DaysFor(view, ref)
}
