package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrGoalTitleEmpty    = errors.New("goal title cannot be empty")
	ErrGoalTitleTooLong  = errors.New("goal title is too long (max 200 chars)")
	ErrGoalInvalidUserID = errors.New("invalid user id")
	ErrSubgoalNotFound   = errors.New("subgoal not found")
	ErrSubgoalTitleEmpty = errors.New("subgoal title cannot be empty")
)

const MaxGoalTitleLen = 200

// Priority and complexity are opaque tags: the engine counts them in
// breakdowns but never interprets their values. Defaults mirror what the
// clients send.
const (
	DefaultPriority   = "medium"
	DefaultComplexity = "medium"
)

type Subgoal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type Goal struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Priority   string `json:"priority"`
	Complexity string `json:"complexity"`

	Completed bool `json:"completed"`
	Archived  bool `json:"archived"`

	// Subgoals are owned exclusively by the goal and drive its progress
	// percentage. Order is the insertion order.
	Subgoals []Subgoal `json:"subgoals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGoal(userID, title, description, priority, complexity string) (*Goal, error) {
	if userID == "" {
		return nil, ErrGoalInvalidUserID
	}

	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return nil, ErrGoalTitleEmpty
	}
	if len(cleanTitle) > MaxGoalTitleLen {
		return nil, ErrGoalTitleTooLong
	}

	if priority == "" {
		priority = DefaultPriority
	}
	if complexity == "" {
		complexity = DefaultComplexity
	}

	now := time.Now().UTC()

	return &Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       cleanTitle,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Complexity:  complexity,
		Subgoals:    []Subgoal{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (g *Goal) Update(title, description, priority, complexity string) error {
	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return ErrGoalTitleEmpty
	}
	if len(cleanTitle) > MaxGoalTitleLen {
		return ErrGoalTitleTooLong
	}

	g.Title = cleanTitle
	g.Description = strings.TrimSpace(description)
	if priority != "" {
		g.Priority = priority
	}
	if complexity != "" {
		g.Complexity = complexity
	}
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete marks the goal done and every subgoal with it, matching how the
// original flow closes out a goal in one action.
func (g *Goal) Complete() {
	g.Completed = true
	for i := range g.Subgoals {
		g.Subgoals[i].Completed = true
	}
	g.UpdatedAt = time.Now().UTC()
}

func (g *Goal) Archive() {
	if g.Archived {
		return
	}
	g.Archived = true
	g.UpdatedAt = time.Now().UTC()
}

func (g *Goal) AddSubgoal(title string) (*Subgoal, error) {
	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return nil, ErrSubgoalTitleEmpty
	}

	sg := Subgoal{
		ID:        uuid.New().String(),
		Title:     cleanTitle,
		CreatedAt: time.Now().UTC(),
	}
	g.Subgoals = append(g.Subgoals, sg)
	g.UpdatedAt = time.Now().UTC()
	return &g.Subgoals[len(g.Subgoals)-1], nil
}

// ToggleSubgoal flips a subgoal's completed flag. When every subgoal ends up
// completed the goal itself is marked completed; unchecking any subgoal
// reopens the goal.
func (g *Goal) ToggleSubgoal(subgoalID string) (*Subgoal, error) {
	idx := g.subgoalIndex(subgoalID)
	if idx < 0 {
		return nil, ErrSubgoalNotFound
	}

	g.Subgoals[idx].Completed = !g.Subgoals[idx].Completed
	g.Completed = g.allSubgoalsCompleted()
	g.UpdatedAt = time.Now().UTC()
	return &g.Subgoals[idx], nil
}

func (g *Goal) RemoveSubgoal(subgoalID string) error {
	idx := g.subgoalIndex(subgoalID)
	if idx < 0 {
		return ErrSubgoalNotFound
	}

	g.Subgoals = append(g.Subgoals[:idx], g.Subgoals[idx+1:]...)
	g.UpdatedAt = time.Now().UTC()
	return nil
}

func (g *Goal) subgoalIndex(subgoalID string) int {
	for i := range g.Subgoals {
		if g.Subgoals[i].ID == subgoalID {
			return i
		}
	}
	return -1
}

func (g *Goal) allSubgoalsCompleted() bool {
	if len(g.Subgoals) == 0 {
		return false
	}
	for i := range g.Subgoals {
		if !g.Subgoals[i].Completed {
			return false
		}
	}
	return true
}
