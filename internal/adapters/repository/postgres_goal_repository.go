package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/strideworks/stride-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

// Subgoals are owned exclusively by their goal and always read and written
// together with it, so they live in a jsonb column instead of a join table.
func (r *PostgresGoalRepository) scanRow(row scannable) (*domain.Goal, error) {
	var g domain.Goal
	var subgoalsJSON []byte

	err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description,
		&g.Priority, &g.Complexity,
		&g.Completed, &g.Archived,
		&subgoalsJSON,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Subgoals = []domain.Subgoal{}
	if len(subgoalsJSON) > 0 {
		if err := json.Unmarshal(subgoalsJSON, &g.Subgoals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subgoals: %w", err)
		}
	}

	return &g, nil
}

const goalColumns = `
        id, user_id, title, description,
        priority, complexity,
        completed, archived,
        subgoals,
        created_at, updated_at`

func (r *PostgresGoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	subgoalsJSON, err := json.Marshal(g.Subgoals)
	if err != nil {
		return fmt.Errorf("failed to marshal subgoals: %w", err)
	}

	query := `
        INSERT INTO goals (` + goalColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.ExecContext(ctx, query,
		g.ID, g.UserID, g.Title, g.Description,
		g.Priority, g.Complexity,
		g.Completed, g.Archived,
		subgoalsJSON,
		g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

func (r *PostgresGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

	g, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return g, nil
}

func (r *PostgresGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	query := `
        SELECT ` + goalColumns + ` FROM goals
        WHERE user_id = $1
        ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal

	for rows.Next() {
		g, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("row scan error: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (r *PostgresGoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	subgoalsJSON, err := json.Marshal(g.Subgoals)
	if err != nil {
		return fmt.Errorf("failed to marshal subgoals: %w", err)
	}

	query := `
        UPDATE goals SET
            title = $1, description = $2,
            priority = $3, complexity = $4,
            completed = $5, archived = $6,
            subgoals = $7,
            updated_at = $8
        WHERE id = $9`

	res, err := r.db.ExecContext(ctx, query,
		g.Title, g.Description,
		g.Priority, g.Complexity,
		g.Completed, g.Archived,
		subgoalsJSON,
		g.UpdatedAt,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}
