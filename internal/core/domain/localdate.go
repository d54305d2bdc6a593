package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateKey = errors.New("invalid date key (must be YYYY-MM-DD)")

const dateKeyLayout = "2006-01-02"

// LocalDate is a calendar day in the observer's local calendar.
// It carries no time of day and no timezone, so comparing two LocalDates
// can never be skewed by a UTC shift: a check-in at 23:50 local time stays
// on its local day.
type LocalDate struct {
	year  int
	month time.Month
	day   int
}

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	// Normalize through time.Date so out-of-range components roll over
	// the same way the standard library does.
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return LocalDate{year: y, month: m, day: d}
}

// DateOf strips the time of day from t in t's own location.
func DateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{year: y, month: m, day: d}
}

// Today returns the current day in the local calendar.
func Today() LocalDate {
	return DateOf(time.Now())
}

// ParseDateKey parses a zero-padded YYYY-MM-DD key. A malformed key is a
// caller bug and fails fast rather than mapping to a zero day.
func ParseDateKey(s string) (LocalDate, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateOf(t), nil
}

// Key renders the canonical YYYY-MM-DD form. Downstream set-membership
// checks are plain string equality on this value.
func (d LocalDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d LocalDate) String() string {
	return d.Key()
}

func (d LocalDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d LocalDate) Year() int         { return d.year }
func (d LocalDate) Month() time.Month { return d.month }
func (d LocalDate) Day() int          { return d.day }

// Weekday reports the day of the week, Sunday = 0.
func (d LocalDate) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// AddDays returns the day n days later (n may be negative).
func (d LocalDate) AddDays(n int) LocalDate {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// Compare is a total order: -1 if d is before other, 0 if equal, 1 if after.
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

func (d LocalDate) Before(other LocalDate) bool { return d.Compare(other) < 0 }
func (d LocalDate) After(other LocalDate) bool  { return d.Compare(other) > 0 }

// DiffDays returns the exact number of days from d to other. Arithmetic is
// date-only in UTC, so daylight-saving transitions cannot introduce drift.
func (d LocalDate) DiffDays(other LocalDate) int {
	return int(other.utc().Sub(d.utc()).Hours() / 24)
}

// utc pins the day to midnight UTC purely for arithmetic. UTC has no DST,
// so every day is exactly 24h long here.
func (d LocalDate) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

func (d *LocalDate) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDateKey, data)
	}
	parsed, err := ParseDateKey(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
