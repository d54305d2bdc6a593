package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideworks/stride-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("DB_USER", "stride_user"),
		envOr("DB_PASSWORD", "secret"),
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_NAME", "stride_db"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	return db
}

func cleanup(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.Exec("TRUNCATE TABLE habits, goals, users CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func seedTestUser(t *testing.T, db *sqlx.DB, id, email string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
        VALUES ($1, 'Fixture', $2, 'hash', NOW(), NOW())`, id, email)
	require.NoError(t, err, "Failed to create user fixture")
}

func TestPostgresHabitRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	repo := NewPostgresHabitRepository(db)
	ctx := context.Background()

	userID := uuid.New().String()
	seedTestUser(t, db, userID, "habit-test@stride.app")

	habit, err := domain.NewHabit(userID, "Integration Habit", "round trip through text[]")
	require.NoError(t, err)

	today := domain.Today()
	for _, d := range []domain.LocalDate{today.AddDays(-2), today.AddDays(-1), today} {
		_, err := habit.CheckIn(d, today)
		require.NoError(t, err)
	}
	habit.SetStreaks(3, 3)

	t.Run("Create and GetByID round trip", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, habit))

		fetched, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)

		assert.Equal(t, habit.Title, fetched.Title)
		assert.Equal(t, habit.UserID, fetched.UserID)
		assert.Equal(t, 3, fetched.CheckIns.Len())
		assert.True(t, fetched.CheckIns.Contains(today))
		assert.Equal(t, 3, fetched.CurrentStreak)
		assert.WithinDuration(t, habit.CreatedAt, fetched.CreatedAt, time.Second)
	})

	t.Run("Update rewrites the check-in history", func(t *testing.T) {
		habit.Uncheck(today.AddDays(-1))

		require.NoError(t, repo.Update(ctx, habit))

		fetched, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, fetched.CheckIns.Len())
		assert.False(t, fetched.CheckIns.Contains(today.AddDays(-1)))
	})

	t.Run("UpdateStreaks touches only the counters", func(t *testing.T) {
		require.NoError(t, repo.UpdateStreaks(ctx, habit.ID, 1, 5))

		fetched, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fetched.CurrentStreak)
		assert.Equal(t, 5, fetched.LongestStreak)
		assert.Equal(t, 2, fetched.CheckIns.Len())
	})

	t.Run("ListByUserID returns only the owner's habits in creation order", func(t *testing.T) {
		otherUser := uuid.New().String()
		seedTestUser(t, db, otherUser, "other@stride.app")
		foreign, err := domain.NewHabit(otherUser, "Not Mine", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, foreign))

		second, err := domain.NewHabit(userID, "Second Habit", "")
		require.NoError(t, err)
		second.CreatedAt = habit.CreatedAt.Add(time.Minute)
		second.UpdatedAt = second.CreatedAt
		require.NoError(t, repo.Create(ctx, second))

		habits, err := repo.ListByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, habits, 2)
		assert.Equal(t, habit.ID, habits[0].ID)
		assert.Equal(t, second.ID, habits[1].ID)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, habit.ID))

		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Missing ids surface as not found", func(t *testing.T) {
		missing := uuid.New().String()

		_, err := repo.GetByID(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, missing), domain.ErrHabitNotFound)
		assert.ErrorIs(t, repo.UpdateStreaks(ctx, missing, 0, 0), domain.ErrHabitNotFound)
	})
}
