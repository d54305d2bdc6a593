package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideworks/stride-engine/internal/core/domain"

	_ "github.com/lib/pq"
)

// The user repository maps unique violations through lib/pq, so this
// test connects with the pq driver instead of the pgx one.
func setupUserTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("DB_USER", "stride_user"),
		envOr("DB_PASSWORD", "secret"),
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_NAME", "stride_db"),
	)

	db, err := sql.Open("postgres", dsn)
	if err == nil {
		err = db.Ping()
	}
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	return db
}

func cleanupUsers(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec("TRUNCATE TABLE habits, goals, users CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func newTestUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(uuid.New().String(), "Integration User", email)
	require.NoError(t, err)
	require.NoError(t, u.SetPassword("super-secret"))
	return u
}

func TestPostgresUserRepository_Integration(t *testing.T) {
	db := setupUserTestDB(t)
	defer db.Close()

	cleanupUsers(t, db)
	defer cleanupUsers(t, db)

	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "user-test@stride.app")

	t.Run("Create and fetch by email and id", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))

		byEmail, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.NoError(t, byEmail.CheckPassword("super-secret"))

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
	})

	t.Run("Error: Duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		dup := newTestUser(t, user.Email)

		err := repo.Create(ctx, dup)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("Error: Unknown email and id map to ErrUserNotFound", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@stride.app")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
