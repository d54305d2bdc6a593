package analytics

import "github.com/strideworks/stride-engine/internal/core/domain"

// DaySelector extracts the day an entity is filtered on. ok=false means the
// entity has no relevant day (e.g. a habit with no check-ins) and is
// excluded from every bounded period.
type DaySelector[T any] func(T) (domain.LocalDate, bool)

// ByPeriod keeps entities whose selected day lies in [cutoff, ref]. The
// selector is supplied by the caller, so goals (creation day) and habits
// (latest check-in) share one filter without the engine knowing their
// shapes. The "all" period returns the input unchanged.
func ByPeriod[T any](items []T, p Period, ref domain.LocalDate, at DaySelector[T]) ([]T, error) {
	cutoff, bounded, err := CutoffFor(p, ref)
	if err != nil {
		return nil, err
	}
	if !bounded {
		return items, nil
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		day, ok := at(item)
		if !ok {
			continue
		}
		if day.Compare(cutoff) >= 0 && day.Compare(ref) <= 0 {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// GoalCreationDay selects a goal's creation day in the goal's own calendar.
func GoalCreationDay(g *domain.Goal) (domain.LocalDate, bool) {
	return domain.DateOf(g.CreatedAt), true
}

// HabitActivityDay selects a habit's most recent check-in on or before ref.
// With the inclusive [cutoff, ref] bound this keeps a habit exactly when
// any of its check-ins falls inside the window.
func HabitActivityDay(ref domain.LocalDate) DaySelector[*domain.Habit] {
	return func(h *domain.Habit) (domain.LocalDate, bool) {
		return h.CheckIns.LatestOnOrBefore(ref)
	}
}
