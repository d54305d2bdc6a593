package services

import (
	"context"

	"github.com/strideworks/stride-engine/internal/core/domain"
)

type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

type CreateGoalInput struct {
	UserID      string
	Title       string
	Description string
	Priority    string
	Complexity  string
	Subgoals    []string
}

type UpdateGoalInput struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Priority    string
	Complexity  string
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.UserID, input.Title, input.Description, input.Priority, input.Complexity)
	if err != nil {
		return nil, err
	}

	for _, title := range input.Subgoals {
		if _, err := goal.AddSubgoal(title); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *GoalService) Update(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.ownedGoal(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = goal.Title
	}
	desc := input.Description
	if desc == "" {
		desc = goal.Description
	}

	if err := goal.Update(title, desc, input.Priority, input.Complexity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Complete closes out the goal and all of its subgoals in one step.
func (s *GoalService) Complete(ctx context.Context, id, userID string) (*domain.Goal, error) {
	goal, err := s.ownedGoal(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	goal.Complete()

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Archive(ctx context.Context, id, userID string) (*domain.Goal, error) {
	goal, err := s.ownedGoal(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	goal.Archive()

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.ownedGoal(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *GoalService) AddSubgoal(ctx context.Context, goalID, userID, title string) (*domain.Subgoal, error) {
	goal, err := s.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	sg, err := goal.AddSubgoal(title)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return sg, nil
}

func (s *GoalService) ToggleSubgoal(ctx context.Context, goalID, userID, subgoalID string) (*domain.Goal, error) {
	goal, err := s.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if _, err := goal.ToggleSubgoal(subgoalID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) RemoveSubgoal(ctx context.Context, goalID, userID, subgoalID string) error {
	goal, err := s.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	if err := goal.RemoveSubgoal(subgoalID); err != nil {
		return err
	}

	return s.repo.Update(ctx, goal)
}

// ownedGoal fetches a goal and hides its existence from other users.
func (s *GoalService) ownedGoal(ctx context.Context, id, userID string) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	return goal, nil
}
