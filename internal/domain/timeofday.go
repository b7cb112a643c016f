package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a local wall-clock time expressed as minutes since midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses a HH:MM string (24-hour format).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// TimeOfDayOf extracts the local time of day of t in the given location.
func TimeOfDayOf(t time.Time, loc *time.Location) TimeOfDay {
	local := t.In(loc)
	return NewTimeOfDay(local.Hour(), local.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// NightOrdinal positions t within the rolling night day, as minutes since the
// 20:00 rollover. 23:30 orders before 00:30 under this measure, which is the
// ordering "earlier tonight" actually means.
func (t TimeOfDay) NightOrdinal() int {
	return (int(t) - RolloverHour*60 + minutesPerDay) % minutesPerDay
}

// EarlierInNight reports whether t comes before other within the same night.
func (t TimeOfDay) EarlierInNight(other TimeOfDay) bool {
	return t.NightOrdinal() < other.NightOrdinal()
}
