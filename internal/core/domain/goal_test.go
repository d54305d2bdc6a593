package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal(t *testing.T) {
	t.Run("Success: Creates goal with tag defaults", func(t *testing.T) {
		g, err := domain.NewGoal("u1", "Learn Go", "from scratch", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Learn Go", g.Title)
		assert.Equal(t, "u1", g.UserID)
		assert.NotEmpty(t, g.ID)

		assert.Equal(t, domain.DefaultPriority, g.Priority)
		assert.Equal(t, domain.DefaultComplexity, g.Complexity)

		assert.False(t, g.Completed)
		assert.False(t, g.Archived)
		assert.Empty(t, g.Subgoals)
		assert.WithinDuration(t, time.Now().UTC(), g.CreatedAt, 2*time.Second)
	})

	t.Run("Success: Keeps caller-supplied tags verbatim", func(t *testing.T) {
		g, err := domain.NewGoal("u1", "Ship", "", "urgent!!", "weird-tag")

		require.NoError(t, err)
		assert.Equal(t, "urgent!!", g.Priority)
		assert.Equal(t, "weird-tag", g.Complexity)
	})

	t.Run("Error: Empty Title", func(t *testing.T) {
		_, err := domain.NewGoal("u1", "  ", "", "", "")
		assert.Equal(t, domain.ErrGoalTitleEmpty, err)
	})

	t.Run("Error: Title Too Long", func(t *testing.T) {
		_, err := domain.NewGoal("u1", strings.Repeat("a", 201), "", "", "")
		assert.Equal(t, domain.ErrGoalTitleTooLong, err)
	})

	t.Run("Error: Invalid UserID", func(t *testing.T) {
		_, err := domain.NewGoal("", "Title", "", "", "")
		assert.Equal(t, domain.ErrGoalInvalidUserID, err)
	})
}

func TestGoal_Update(t *testing.T) {
	t.Run("Success: Empty tags keep previous values", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "high", "hard")

		err := g.Update("New Title", "desc", "", "")

		require.NoError(t, err)
		assert.Equal(t, "New Title", g.Title)
		assert.Equal(t, "high", g.Priority)
		assert.Equal(t, "hard", g.Complexity)
	})

	t.Run("Error: Empty title rejected", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		assert.Equal(t, domain.ErrGoalTitleEmpty, g.Update("", "", "", ""))
	})
}

func TestGoal_Complete(t *testing.T) {
	g, _ := domain.NewGoal("u1", "Title", "", "", "")
	_, _ = g.AddSubgoal("one")
	_, _ = g.AddSubgoal("two")

	g.Complete()

	assert.True(t, g.Completed)
	for _, sg := range g.Subgoals {
		assert.True(t, sg.Completed, "Complete must cascade to every subgoal")
	}
}

func TestGoal_Archive(t *testing.T) {
	g, _ := domain.NewGoal("u1", "Title", "", "", "")

	g.Archive()
	firstUpdate := g.UpdatedAt

	time.Sleep(1 * time.Millisecond)
	g.Archive()

	assert.True(t, g.Archived)
	assert.Equal(t, firstUpdate, g.UpdatedAt, "Re-archiving must be a no-op")
}

func TestGoal_Subgoals(t *testing.T) {
	t.Run("Success: Add appends in order", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")

		first, err := g.AddSubgoal("first")
		require.NoError(t, err)
		second, err := g.AddSubgoal("second")
		require.NoError(t, err)

		require.Len(t, g.Subgoals, 2)
		assert.Equal(t, first.ID, g.Subgoals[0].ID)
		assert.Equal(t, second.ID, g.Subgoals[1].ID)
		assert.False(t, first.Completed)
	})

	t.Run("Error: Empty subgoal title", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		_, err := g.AddSubgoal("  ")
		assert.Equal(t, domain.ErrSubgoalTitleEmpty, err)
	})

	t.Run("Success: Toggling the last open subgoal completes the goal", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		a, _ := g.AddSubgoal("a")
		b, _ := g.AddSubgoal("b")

		_, err := g.ToggleSubgoal(a.ID)
		require.NoError(t, err)
		assert.False(t, g.Completed)

		_, err = g.ToggleSubgoal(b.ID)
		require.NoError(t, err)
		assert.True(t, g.Completed)
	})

	t.Run("Success: Unchecking a subgoal reopens the goal", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		a, _ := g.AddSubgoal("a")
		_, _ = g.ToggleSubgoal(a.ID)
		require.True(t, g.Completed)

		_, err := g.ToggleSubgoal(a.ID)

		require.NoError(t, err)
		assert.False(t, g.Completed)
		assert.False(t, g.Subgoals[0].Completed)
	})

	t.Run("Error: Toggle unknown subgoal", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		_, err := g.ToggleSubgoal("missing")
		assert.Equal(t, domain.ErrSubgoalNotFound, err)
	})

	t.Run("Success: Remove drops exactly one subgoal", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		a, _ := g.AddSubgoal("a")
		b, _ := g.AddSubgoal("b")
		keptID := b.ID

		require.NoError(t, g.RemoveSubgoal(a.ID))

		require.Len(t, g.Subgoals, 1)
		assert.Equal(t, keptID, g.Subgoals[0].ID)
	})

	t.Run("Error: Remove unknown subgoal", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Title", "", "", "")
		assert.Equal(t, domain.ErrSubgoalNotFound, g.RemoveSubgoal("missing"))
	})
}
