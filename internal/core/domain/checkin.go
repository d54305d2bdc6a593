package domain

import (
	"encoding/json"
	"sort"
)

// CheckInSet is the set of days a habit was performed. Membership is keyed
// on the canonical date key, so adding the same day twice is a no-op.
type CheckInSet struct {
	days map[string]LocalDate
}

func NewCheckInSet(days ...LocalDate) CheckInSet {
	s := CheckInSet{days: make(map[string]LocalDate, len(days))}
	for _, d := range days {
		s.days[d.Key()] = d
	}
	return s
}

// CheckInSetFromKeys builds a set from raw date keys, failing fast on the
// first malformed key.
func CheckInSetFromKeys(keys []string) (CheckInSet, error) {
	s := CheckInSet{days: make(map[string]LocalDate, len(keys))}
	for _, k := range keys {
		d, err := ParseDateKey(k)
		if err != nil {
			return CheckInSet{}, err
		}
		s.days[d.Key()] = d
	}
	return s, nil
}

// Add records a check-in. Idempotent: reports whether the day was new.
func (s *CheckInSet) Add(d LocalDate) bool {
	if s.days == nil {
		s.days = make(map[string]LocalDate)
	}
	key := d.Key()
	if _, ok := s.days[key]; ok {
		return false
	}
	s.days[key] = d
	return true
}

// Remove drops a check-in. Reports whether the day was present.
func (s *CheckInSet) Remove(d LocalDate) bool {
	key := d.Key()
	if _, ok := s.days[key]; !ok {
		return false
	}
	delete(s.days, key)
	return true
}

func (s CheckInSet) Contains(d LocalDate) bool {
	_, ok := s.days[d.Key()]
	return ok
}

func (s CheckInSet) Len() int {
	return len(s.days)
}

// Sorted returns every check-in day in ascending order.
func (s CheckInSet) Sorted() []LocalDate {
	out := make([]LocalDate, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Keys returns the sorted canonical date keys.
func (s CheckInSet) Keys() []string {
	out := make([]string, 0, len(s.days))
	for k := range s.days {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Latest returns the most recent check-in day, if any.
func (s CheckInSet) Latest() (LocalDate, bool) {
	var best LocalDate
	found := false
	for _, d := range s.days {
		if !found || d.After(best) {
			best = d
			found = true
		}
	}
	return best, found
}

// LatestOnOrBefore returns the most recent check-in day not after ref.
func (s CheckInSet) LatestOnOrBefore(ref LocalDate) (LocalDate, bool) {
	var best LocalDate
	found := false
	for _, d := range s.days {
		if d.After(ref) {
			continue
		}
		if !found || d.After(best) {
			best = d
			found = true
		}
	}
	return best, found
}

// Clone returns an independent copy, so snapshots handed to the analytics
// layer cannot be mutated underneath it.
func (s CheckInSet) Clone() CheckInSet {
	c := CheckInSet{days: make(map[string]LocalDate, len(s.days))}
	for k, d := range s.days {
		c.days[k] = d
	}
	return c
}

func (s CheckInSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

func (s *CheckInSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	parsed, err := CheckInSetFromKeys(keys)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
