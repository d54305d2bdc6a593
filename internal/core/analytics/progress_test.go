package analytics_test

import (
	"testing"

	"github.com/strideworks/stride-engine/internal/core/analytics"
	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalWithSubgoals(t *testing.T, completed, total int) *domain.Goal {
	t.Helper()
	require.LessOrEqual(t, completed, total)

	g, err := domain.NewGoal("u1", "goal", "", "", "")
	require.NoError(t, err)

	for i := 0; i < total; i++ {
		sg, err := g.AddSubgoal("step")
		require.NoError(t, err)
		if i < completed {
			_, err = g.ToggleSubgoal(sg.ID)
			require.NoError(t, err)
		}
	}
	return g
}

func TestGoalPercent(t *testing.T) {
	t.Run("No subgoals: completed flag decides", func(t *testing.T) {
		open := goalWithSubgoals(t, 0, 0)
		assert.Equal(t, 0, analytics.GoalPercent(open))

		done := goalWithSubgoals(t, 0, 0)
		done.Complete()
		assert.Equal(t, 100, analytics.GoalPercent(done))
	})

	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "None done", completed: 0, total: 4, want: 0},
		{name: "All done", completed: 4, total: 4, want: 100},
		{name: "One of three rounds to 33", completed: 1, total: 3, want: 33},
		{name: "Two of three rounds to 67", completed: 2, total: 3, want: 67},
		{name: "Half rounds up", completed: 1, total: 2, want: 50},
		{name: "One of eight rounds to 13", completed: 1, total: 8, want: 13},
		{name: "One of six rounds up to 17", completed: 1, total: 6, want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goalWithSubgoals(t, tt.completed, tt.total)
			assert.Equal(t, tt.want, analytics.GoalPercent(g))
		})
	}

	t.Run("Completed flag does not override subgoal math", func(t *testing.T) {
		g := goalWithSubgoals(t, 1, 4)
		g.Completed = true

		assert.Equal(t, 25, analytics.GoalPercent(g))
	})
}
