// Package analytics is the single source of truth for date, streak and
// statistics math. Every view (lists, tracker calendar, dashboard, sidebar
// counters) reads derived facts from here instead of reimplementing them.
//
// All functions are pure: they depend only on their arguments, including an
// explicit reference day where "now" matters, so results are deterministic
// and trivially safe to call concurrently.
package analytics

import (
	"errors"
	"fmt"

	"github.com/strideworks/stride-engine/internal/core/domain"
)

var (
	ErrUnknownPeriod   = errors.New("unknown period tag")
	ErrUnboundedPeriod = errors.New("period has no day sequence, use the cutoff form")
)

// Period names a reporting window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// ParsePeriod validates a raw period tag. A bad tag is a caller bug and
// fails fast instead of silently producing empty statistics.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return Period(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

// DaysFor resolves a period to its ordered, contiguous day sequence, used by
// the tracker calendar and histogram binning.
//
//   - week: the Monday..Sunday week containing ref. Sunday counts as the
//     last day of its week, not the first.
//   - month: every day of ref's calendar month (28-31 days).
//   - quarter, year: fixed trailing 90/365-day windows ending at ref. These
//     are intentionally not calendar quarters/years; histogram call sites
//     rely on the fixed length.
//   - all: has no day sequence, callers must use CutoffFor.
func DaysFor(p Period, ref domain.LocalDate) ([]domain.LocalDate, error) {
	switch p {
	case PeriodWeek:
		start := ref.AddDays(-mondayOffset(ref))
		return spanDays(start, 7), nil

	case PeriodMonth:
		first := domain.NewLocalDate(ref.Year(), ref.Month(), 1)
		length := daysInMonth(ref)
		return spanDays(first, length), nil

	case PeriodQuarter:
		return spanDays(ref.AddDays(-89), 90), nil

	case PeriodYear:
		return spanDays(ref.AddDays(-364), 365), nil

	case PeriodAll:
		return nil, ErrUnboundedPeriod

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
}

// CutoffFor returns the inclusive lower bound for period filtering, or
// ok=false for the unbounded "all" period.
//
// Note the month convention here is a fixed 30-day lookback while
// DaysFor(month) lists the actual calendar month. Both conventions exist in
// the UI surfaces this engine replaced and are kept distinct on purpose:
// unifying them would change displayed statistics.
func CutoffFor(p Period, ref domain.LocalDate) (cutoff domain.LocalDate, ok bool, err error) {
	switch p {
	case PeriodWeek:
		return ref.AddDays(-7), true, nil
	case PeriodMonth:
		return ref.AddDays(-30), true, nil
	case PeriodQuarter:
		return ref.AddDays(-90), true, nil
	case PeriodYear:
		return ref.AddDays(-365), true, nil
	case PeriodAll:
		return domain.LocalDate{}, false, nil
	default:
		return domain.LocalDate{}, false, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
}

// mondayOffset is the number of days from the most recent Monday to d.
func mondayOffset(d domain.LocalDate) int {
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	return (int(d.Weekday()) + 6) % 7
}

func daysInMonth(d domain.LocalDate) int {
	firstOfNext := domain.NewLocalDate(d.Year(), d.Month()+1, 1)
	first := domain.NewLocalDate(d.Year(), d.Month(), 1)
	return first.DiffDays(firstOfNext)
}

func spanDays(start domain.LocalDate, n int) []domain.LocalDate {
	days := make([]domain.LocalDate, n)
	for i := 0; i < n; i++ {
		days[i] = start.AddDays(i)
	}
	return days
}
