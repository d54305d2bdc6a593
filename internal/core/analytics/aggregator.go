package analytics

import (
	"math"
	"sort"

	"github.com/strideworks/stride-engine/internal/core/domain"
)

// Snapshot types are derived, immutable aggregates. A stale snapshot is
// recomputed from fresh entities, never patched.

type OverviewStats struct {
	TotalGoals     int `json:"total_goals"`
	CompletedGoals int `json:"completed_goals"`
	ActiveGoals    int `json:"active_goals"`
	TotalHabits    int `json:"total_habits"`
	CompletedToday int `json:"completed_today"`

	GoalCompletionRate  int `json:"goal_completion_rate"`
	HabitCompletionRate int `json:"habit_completion_rate"`

	// MaxGoalStreak is the largest subgoal count among all goals: a crude
	// stand-in the product has always shown in place of a true goal streak.
	// Kept as-is so the overview numbers do not shift.
	MaxGoalStreak  int `json:"max_goal_streak"`
	MaxHabitStreak int `json:"max_habit_streak"`
}

type GoalPeriodStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Archived  int `json:"archived"`

	Priorities   map[string]int `json:"priorities"`
	Complexities map[string]int `json:"complexities"`

	CompletionRate int `json:"completion_rate"`
}

type HabitRank struct {
	HabitID string `json:"habit_id"`
	Title   string `json:"title"`
	Streak  int    `json:"streak"`
}

type HabitPeriodStats struct {
	Total          int         `json:"total"`
	CompletedToday int         `json:"completed_today"`
	CompletionRate int         `json:"completion_rate"`
	AverageStreak  int         `json:"average_streak"`
	TotalCheckIns  int         `json:"total_checkins"`
	TopHabits      []HabitRank `json:"top_habits"`
}

type ActivityPoint struct {
	Day   domain.LocalDate `json:"date"`
	Count int              `json:"count"`
}

const topHabitLimit = 3

// Overview folds both entity kinds into the dashboard header counts. Empty
// inputs yield all zeroes.
func Overview(goals []*domain.Goal, habits []*domain.Habit, today domain.LocalDate) OverviewStats {
	stats := OverviewStats{
		TotalGoals:  len(goals),
		TotalHabits: len(habits),
	}

	for _, g := range goals {
		if g.Completed {
			stats.CompletedGoals++
		} else if !g.Archived {
			stats.ActiveGoals++
		}
		if n := len(g.Subgoals); n > stats.MaxGoalStreak {
			stats.MaxGoalStreak = n
		}
	}

	for _, h := range habits {
		if h.CheckIns.Contains(today) {
			stats.CompletedToday++
		}
		if s := CurrentStreak(h.CheckIns, today); s > stats.MaxHabitStreak {
			stats.MaxHabitStreak = s
		}
	}

	stats.GoalCompletionRate = roundPercent(stats.CompletedGoals, stats.TotalGoals)
	stats.HabitCompletionRate = roundPercent(stats.CompletedToday, stats.TotalHabits)

	return stats
}

// GoalStats scopes goals to the period by creation day and breaks the
// remainder down by lifecycle state and by the opaque priority/complexity
// tags.
func GoalStats(goals []*domain.Goal, p Period, ref domain.LocalDate) (GoalPeriodStats, error) {
	filtered, err := ByPeriod(goals, p, ref, GoalCreationDay)
	if err != nil {
		return GoalPeriodStats{}, err
	}

	stats := GoalPeriodStats{
		Total:        len(filtered),
		Priorities:   make(map[string]int),
		Complexities: make(map[string]int),
	}

	for _, g := range filtered {
		// Completed and archived are independent flags, so the three
		// buckets may overlap and need not sum to the total.
		if g.Completed {
			stats.Completed++
		}
		if g.Archived {
			stats.Archived++
		}
		if !g.Completed && !g.Archived {
			stats.Active++
		}
		stats.Priorities[g.Priority]++
		stats.Complexities[g.Complexity]++
	}

	stats.CompletionRate = roundPercent(stats.Completed, stats.Total)
	return stats, nil
}

// HabitStats scopes habits to the period by check-in activity and derives
// the dashboard numbers for them. The period completion rate is check-ins
// inside the window over (habit count x window length).
func HabitStats(habits []*domain.Habit, p Period, ref domain.LocalDate) (HabitPeriodStats, error) {
	filtered, err := ByPeriod(habits, p, ref, HabitActivityDay(ref))
	if err != nil {
		return HabitPeriodStats{}, err
	}

	stats := HabitPeriodStats{
		Total:     len(filtered),
		TopHabits: []HabitRank{},
	}
	if stats.Total == 0 {
		return stats, nil
	}

	windowDays, err := HistogramDays(p, ref)
	if err != nil {
		return HabitPeriodStats{}, err
	}

	possible := len(filtered) * len(windowDays)
	completed := 0
	streakSum := 0

	ranks := make([]HabitRank, 0, len(filtered))

	for _, h := range filtered {
		if h.CheckIns.Contains(ref) {
			stats.CompletedToday++
		}
		stats.TotalCheckIns += h.CheckIns.Len()

		for _, day := range windowDays {
			if h.CheckIns.Contains(day) {
				completed++
			}
		}

		streak := CurrentStreak(h.CheckIns, ref)
		streakSum += streak
		ranks = append(ranks, HabitRank{HabitID: h.ID, Title: h.Title, Streak: streak})
	}

	stats.CompletionRate = roundPercent(completed, possible)
	stats.AverageStreak = int(math.Round(float64(streakSum) / float64(len(filtered))))

	// Stable sort keeps input order between equal streaks.
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Streak > ranks[j].Streak })
	if len(ranks) > topHabitLimit {
		ranks = ranks[:topHabitLimit]
	}
	stats.TopHabits = ranks

	return stats, nil
}

// ActivityHistogram counts, for each supplied day, how many habits have a
// check-in on that day. The result matches the input sequence in length and
// order, all-zero when nothing is checked in.
func ActivityHistogram(habits []*domain.Habit, days []domain.LocalDate) []ActivityPoint {
	points := make([]ActivityPoint, len(days))
	for i, day := range days {
		count := 0
		for _, h := range habits {
			if h.CheckIns.Contains(day) {
				count++
			}
		}
		points[i] = ActivityPoint{Day: day, Count: count}
	}
	return points
}

// HistogramDays is the day sequence activity charts and period completion
// rates are computed over. It is DaysFor with one exception: the unbounded
// "all" period falls back to a trailing 30-day window, which is what the
// dashboard has always shown for it.
func HistogramDays(p Period, ref domain.LocalDate) ([]domain.LocalDate, error) {
	if p == PeriodAll {
		return spanDays(ref.AddDays(-29), 30), nil
	}
	return DaysFor(p, ref)
}
