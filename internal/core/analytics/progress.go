package analytics

import (
	"math"

	"github.com/strideworks/stride-engine/internal/core/domain"
)

// GoalPercent is a goal's completion percentage. Without subgoals the
// completed flag decides everything: 100 or 0, never a division by zero.
// With subgoals the percentage is the completed share, rounded to the
// nearest integer with ties going up (1 of 3 -> 33, 2 of 3 -> 67).
func GoalPercent(g *domain.Goal) int {
	total := len(g.Subgoals)
	if total == 0 {
		if g.Completed {
			return 100
		}
		return 0
	}

	completed := 0
	for i := range g.Subgoals {
		if g.Subgoals[i].Completed {
			completed++
		}
	}

	return roundPercent(completed, total)
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
