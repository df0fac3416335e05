package reservation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"projector-reservation/internal/domain/schedule"
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptySlotSet = errors.New("at least one slot is required")
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time component. Stored and compared as a
// "YYYY-MM-DD" string, matching the persisted representation.
type Date struct {
	value string
}

func NewDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	// Round-trip to reject inputs like "2026-1-2" that Parse would accept
	// only in canonical form anyway, and to normalize the stored string.
	return Date{value: t.Format(dateLayout)}, nil
}

func DateOf(t time.Time) Date {
	return Date{value: t.Format(dateLayout)}
}

func (d Date) String() string {
	return d.value
}

func (d Date) IsZero() bool {
	return d.value == ""
}

// Day anchors the date at midnight in loc.
func (d Date) Day(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(dateLayout, d.value, loc)
	return t
}

// SlotSet is a validated, deduplicated, ascending-sorted set of catalog
// slot ids. Order is normalized here so downstream display and storage are
// deterministic.
type SlotSet struct {
	ids []int
}

func NewSlotSet(ids []int) (SlotSet, error) {
	if len(ids) == 0 {
		return SlotSet{}, ErrEmptySlotSet
	}

	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !schedule.IsValidID(id) {
			return SlotSet{}, fmt.Errorf("%w: %d", schedule.ErrUnknownSlot, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Ints(out)

	return SlotSet{ids: out}, nil
}

// ReconstructSlotSet trusts persisted data; ids are still normalized.
func ReconstructSlotSet(ids []int) SlotSet {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	return SlotSet{ids: out}
}

func (s SlotSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s SlotSet) Len() int {
	return len(s.ids)
}

func (s SlotSet) Contains(id int) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Intersect returns the slot ids present in both sets, ascending.
func (s SlotSet) Intersect(other SlotSet) []int {
	var out []int
	for _, id := range s.ids {
		if other.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

func (s SlotSet) Overlaps(other SlotSet) bool {
	return len(s.Intersect(other)) > 0
}

func (s SlotSet) First() int {
	if len(s.ids) == 0 {
		return 0
	}
	return s.ids[0]
}

func (s SlotSet) Last() int {
	if len(s.ids) == 0 {
		return 0
	}
	return s.ids[len(s.ids)-1]
}
