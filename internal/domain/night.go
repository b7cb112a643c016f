package domain

import (
	"fmt"
	"time"
)

const (
	// RolloverHour is the local hour at which the night day rolls over: any
	// instant at or after 20:00 belongs to the night labeled the next
	// calendar date.
	RolloverHour = 20
)

// WindowStart and WindowEnd bound the judgment window [22:00, 06:00). Only
// messages inside the window count; the wider 20:00-20:00 day exists solely to
// decide which date labels tonight.
var (
	WindowStart = NewTimeOfDay(22, 0)
	WindowEnd   = NewTimeOfDay(6, 0)
)

// Night identifies one 24-hour judgment cycle by the calendar date on which it
// ends (at 20:00 local).
type Night struct {
	Year  int
	Month time.Month
	Day   int
}

// NightFor maps an instant to the night it belongs to, in the given timezone.
func NightFor(t time.Time, loc *time.Location) Night {
	local := t.In(loc)
	y, m, d := local.Date()
	if local.Hour() >= RolloverHour {
		y, m, d = local.AddDate(0, 0, 1).Date()
	}
	return Night{Year: y, Month: m, Day: d}
}

// ParseNight parses a YYYY-MM-DD night label.
func ParseNight(s string) (Night, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Night{}, fmt.Errorf("invalid night %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Night{Year: y, Month: m, Day: d}, nil
}

func (n Night) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", n.Year, n.Month, n.Day)
}

func (n Night) date() time.Time {
	return time.Date(n.Year, n.Month, n.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday is the weekday of the calendar date labeling the night.
func (n Night) Weekday() time.Weekday {
	return n.date().Weekday()
}

// IsWeekend reports whether the night uses the weekend bracket variant. A
// night labeled Saturday is Friday evening through Saturday morning.
func (n Night) IsWeekend() bool {
	wd := n.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (n Night) Next() Night {
	y, m, d := n.date().AddDate(0, 0, 1).Date()
	return Night{Year: y, Month: m, Day: d}
}

func (n Night) Prev() Night {
	y, m, d := n.date().AddDate(0, 0, -1).Date()
	return Night{Year: y, Month: m, Day: d}
}

// InJudgmentWindow reports whether t falls inside n's judgment window when
// observed from loc.
func (n Night) InJudgmentWindow(t time.Time, loc *time.Location) bool {
	if NightFor(t, loc) != n {
		return false
	}
	tod := TimeOfDayOf(t, loc)
	return tod >= WindowStart || tod < WindowEnd
}
