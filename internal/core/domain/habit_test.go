package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates valid habit with empty history", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "Drink Water", "2L per day")

		require.NoError(t, err)
		assert.Equal(t, "Drink Water", h.Title)
		assert.Equal(t, "2L per day", h.Description)
		assert.Equal(t, "u1", h.UserID)
		assert.NotEmpty(t, h.ID)

		assert.Equal(t, 0, h.CheckIns.Len())
		assert.Equal(t, 0, h.CurrentStreak)
		assert.Equal(t, 0, h.LongestStreak)

		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
	})

	t.Run("Success: Trims whitespace", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "  Read  ", "  books  ")

		require.NoError(t, err)
		assert.Equal(t, "Read", h.Title)
		assert.Equal(t, "books", h.Description)
	})

	t.Run("Error: Empty Title", func(t *testing.T) {
		_, err := domain.NewHabit("u1", "   ", "")
		assert.Equal(t, domain.ErrHabitTitleEmpty, err)
	})

	t.Run("Error: Title Too Long", func(t *testing.T) {
		_, err := domain.NewHabit("u1", strings.Repeat("a", 101), "")
		assert.Equal(t, domain.ErrHabitTitleTooLong, err)
	})

	t.Run("Error: Description Too Long", func(t *testing.T) {
		_, err := domain.NewHabit("u1", "Ok", strings.Repeat("d", 501))
		assert.Equal(t, domain.ErrHabitDescTooLong, err)
	})

	t.Run("Error: Invalid UserID", func(t *testing.T) {
		_, err := domain.NewHabit("", "Title", "")
		assert.Equal(t, domain.ErrHabitInvalidUserID, err)
	})
}

func TestHabit_Rename(t *testing.T) {
	t.Run("Success: Updates fields and timestamp", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Old", "old desc")
		originalTime := h.UpdatedAt
		time.Sleep(1 * time.Millisecond)

		err := h.Rename("New", "new desc")

		require.NoError(t, err)
		assert.Equal(t, "New", h.Title)
		assert.Equal(t, "new desc", h.Description)
		assert.True(t, h.UpdatedAt.After(originalTime))
	})

	t.Run("Error: Keeps old fields on invalid input", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Old", "old desc")

		err := h.Rename("", "new desc")

		assert.Equal(t, domain.ErrHabitTitleEmpty, err)
		assert.Equal(t, "Old", h.Title)
		assert.Equal(t, "old desc", h.Description)
	})
}

func TestHabit_CheckIn(t *testing.T) {
	today := domain.NewLocalDate(2024, time.June, 15)

	t.Run("Success: Records today", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Run", "")

		added, err := h.CheckIn(today, today)

		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, h.CheckIns.Contains(today))
	})

	t.Run("Success: Records a past day", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Run", "")

		added, err := h.CheckIn(today.AddDays(-3), today)

		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("Success: Repeat check-in is a silent no-op", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Run", "")
		_, _ = h.CheckIn(today, today)

		added, err := h.CheckIn(today, today)

		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, h.CheckIns.Len())
	})

	t.Run("Error: Rejects future days", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Run", "")

		_, err := h.CheckIn(today.AddDays(1), today)

		assert.Equal(t, domain.ErrFutureCheckIn, err)
		assert.Equal(t, 0, h.CheckIns.Len())
	})
}

func TestHabit_Uncheck(t *testing.T) {
	today := domain.NewLocalDate(2024, time.June, 15)

	h, _ := domain.NewHabit("u1", "Run", "")
	_, _ = h.CheckIn(today, today)

	assert.True(t, h.Uncheck(today))
	assert.False(t, h.Uncheck(today), "Unchecking an absent day must report false")
	assert.Equal(t, 0, h.CheckIns.Len())
}

func TestHabit_SetStreaks(t *testing.T) {
	h, _ := domain.NewHabit("u1", "Run", "")
	originalTime := h.UpdatedAt
	time.Sleep(1 * time.Millisecond)

	h.SetStreaks(5, 10)

	assert.Equal(t, 5, h.CurrentStreak)
	assert.Equal(t, 10, h.LongestStreak)
	assert.True(t, h.UpdatedAt.After(originalTime))
}
