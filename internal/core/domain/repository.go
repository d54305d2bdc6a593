package domain

import (
	"context"
)

type GoalRepository interface {
	// Create persists a new goal with its subgoals.
	Create(ctx context.Context, goal *Goal) error

	// GetByID retrieves a goal (with subgoals) by its unique identifier.
	GetByID(ctx context.Context, id string) (*Goal, error)

	// ListByUserID retrieves all goals of a user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	// Update rewrites the goal's fields and its full subgoal list.
	Update(ctx context.Context, goal *Goal) error

	// Delete permanently removes a goal and its subgoals.
	Delete(ctx context.Context, id string) error
}

type HabitRepository interface {
	// Create persists a new habit definition.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit together with its check-in history.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID retrieves all habits of a user with their check-ins.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	// Update rewrites the habit's fields and its check-in set.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit and drops its check-ins.
	Delete(ctx context.Context, id string) error

	// UpdateStreaks persists the denormalized streak counters computed by
	// the streak worker, without touching the rest of the row.
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
