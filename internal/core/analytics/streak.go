package analytics

import "github.com/strideworks/stride-engine/internal/core/domain"

// streakHorizon caps the backward walk of CurrentStreak. A streak longer
// than a year is reported as the horizon length; this keeps the scan O(365)
// regardless of history size.
const streakHorizon = 365

// CurrentStreak counts consecutive checked-in days ending at asOf,
// including asOf itself. An unchecked asOf breaks the streak immediately:
// there is no grace period.
//
// The anchor day is explicit rather than read from the wall clock, so the
// result is independent of call time.
func CurrentStreak(checkins domain.CheckInSet, asOf domain.LocalDate) int {
	if !checkins.Contains(asOf) {
		return 0
	}

	streak := 1
	for i := 1; i < streakHorizon; i++ {
		if !checkins.Contains(asOf.AddDays(-i)) {
			break
		}
		streak++
	}
	return streak
}

// MaxStreak is the longest run of consecutive days anywhere in the set's
// history: 0 for an empty set, 1 for a singleton. The scan sorts first, so
// the answer does not depend on insertion order. Zero-day gaps (duplicates,
// impossible by the set invariant) are tolerated without breaking a run.
func MaxStreak(checkins domain.CheckInSet) int {
	dates := checkins.Sorted()
	if len(dates) == 0 {
		return 0
	}

	maxStreak := 1
	current := 1

	for i := 1; i < len(dates); i++ {
		switch gap := dates[i-1].DiffDays(dates[i]); {
		case gap == 1:
			current++
		case gap > 1:
			if current > maxStreak {
				maxStreak = current
			}
			current = 1
		}
	}

	if current > maxStreak {
		maxStreak = current
	}
	return maxStreak
}
