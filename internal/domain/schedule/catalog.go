// Package schedule holds the static catalog of bookable class periods.
// The catalog is fixed at compile time; every other component takes slot
// ids and resolves them here.
package schedule

import (
	"errors"
	"time"
)

var ErrUnknownSlot = errors.New("unknown slot id")

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

type Slot struct {
	ID        int
	Label     string
	StartTime string // wall clock, "15:04"
	EndTime   string
	Period    Period
}

var catalog = []Slot{
	{ID: 1, Label: "1st class", StartTime: "07:35", EndTime: "08:25", Period: PeriodMorning},
	{ID: 2, Label: "2nd class", StartTime: "08:25", EndTime: "09:10", Period: PeriodMorning},
	{ID: 3, Label: "3rd class", StartTime: "09:30", EndTime: "10:20", Period: PeriodMorning},
	{ID: 4, Label: "4th class", StartTime: "10:20", EndTime: "11:10", Period: PeriodMorning},
	{ID: 5, Label: "5th class", StartTime: "11:10", EndTime: "12:00", Period: PeriodMorning},
	{ID: 6, Label: "6th class", StartTime: "13:30", EndTime: "14:20", Period: PeriodAfternoon},
	{ID: 7, Label: "7th class", StartTime: "14:20", EndTime: "15:05", Period: PeriodAfternoon},
	{ID: 8, Label: "8th class", StartTime: "15:20", EndTime: "16:10", Period: PeriodAfternoon},
	{ID: 9, Label: "9th class", StartTime: "16:10", EndTime: "17:00", Period: PeriodAfternoon},
}

var location = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.Local
	}
	return loc
}()

// Location is the wall-clock zone the catalog times are defined in.
func Location() *time.Location {
	return location
}

// Slots returns the catalog in schedule order. Callers must not mutate the
// returned slice.
func Slots() []Slot {
	return catalog
}

func Len() int {
	return len(catalog)
}

func ByID(id int) (Slot, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Slot{}, ErrUnknownSlot
}

func IsValidID(id int) bool {
	_, err := ByID(id)
	return err == nil
}

// EndOn anchors the slot's end time to the given calendar day in loc.
func (s Slot) EndOn(day time.Time, loc *time.Location) time.Time {
	t, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		// Catalog times are compile-time constants; a parse failure is a bug.
		panic("schedule: malformed catalog end time " + s.EndTime)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
