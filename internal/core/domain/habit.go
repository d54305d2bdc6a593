package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitTitleEmpty    = errors.New("habit title cannot be empty")
	ErrHabitTitleTooLong  = errors.New("habit title is too long (max 100 chars)")
	ErrHabitDescTooLong   = errors.New("habit description is too long (max 500 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrFutureCheckIn      = errors.New("cannot check in on a future date")
)

const (
	MaxTitleLen = 100
	MaxDescLen  = 500
)

type Habit struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// CheckIns is the habit's full check-in history as local calendar days.
	CheckIns CheckInSet `json:"checkin_dates"`

	// CurrentStreak and LongestStreak are denormalized by the streak worker
	// for cheap list views. The analytics engine always recomputes from
	// CheckIns, so a lagging value here never skews statistics.
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func validateHabitFields(title, desc string) (string, string, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return "", "", ErrHabitTitleEmpty
	}
	if len(trimmedTitle) > MaxTitleLen {
		return "", "", ErrHabitTitleTooLong
	}

	trimmedDesc := strings.TrimSpace(desc)
	if len(trimmedDesc) > MaxDescLen {
		return "", "", ErrHabitDescTooLong
	}

	return trimmedTitle, trimmedDesc, nil
}

func NewHabit(userID, title, description string) (*Habit, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	cleanTitle, cleanDesc, err := validateHabitFields(title, description)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       cleanTitle,
		Description: cleanDesc,
		CheckIns:    NewCheckInSet(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (h *Habit) Rename(title, description string) error {
	cleanTitle, cleanDesc, err := validateHabitFields(title, description)
	if err != nil {
		return err
	}

	h.Title = cleanTitle
	h.Description = cleanDesc
	h.UpdatedAt = time.Now().UTC()
	return nil
}

// CheckIn records a completed day. The no-future policy lives here, at the
// lifecycle boundary: the analytics engine itself accepts whatever days are
// already in the set. Idempotent; reports whether the day was new.
func (h *Habit) CheckIn(day, today LocalDate) (bool, error) {
	if day.After(today) {
		return false, ErrFutureCheckIn
	}

	added := h.CheckIns.Add(day)
	if added {
		h.UpdatedAt = time.Now().UTC()
	}
	return added, nil
}

// Uncheck removes a recorded day. Reports whether the day was present.
func (h *Habit) Uncheck(day LocalDate) bool {
	removed := h.CheckIns.Remove(day)
	if removed {
		h.UpdatedAt = time.Now().UTC()
	}
	return removed
}

func (h *Habit) SetStreaks(current, longest int) {
	h.CurrentStreak = current
	h.LongestStreak = longest
	h.UpdatedAt = time.Now().UTC()
}
