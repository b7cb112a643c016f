package domain

import "fmt"

// Bracket is a named sub-interval [Start, End) of the judgment window. An End
// of 00:00 means midnight, i.e. the bracket runs up to the end of the evening
// half of the window.
type Bracket struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether tod falls in [Start, End), compared by night
// ordinal so brackets spanning midnight work.
func (b Bracket) Contains(tod TimeOfDay) bool {
	o := tod.NightOrdinal()
	return o >= b.Start.NightOrdinal() && o < b.End.NightOrdinal()
}

// BracketTable holds the ordered bracket sequences for weekday and weekend
// nights. Weekend bracket names are a subset of weekday names with collapsed
// boundaries, which is what lets corrections map a weekday choice onto a
// weekend night by name.
type BracketTable struct {
	Weekday []Bracket
	Weekend []Bracket
}

// DefaultBrackets returns the stock tables: curfew starts being judged at
// 22:00 on weekdays and 01:00 counts as winning on weekends.
func DefaultBrackets() BracketTable {
	return BracketTable{
		Weekday: []Bracket{
			{Name: "Winner", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(0, 0)},
			{Name: "12-1", Start: NewTimeOfDay(0, 0), End: NewTimeOfDay(1, 0)},
			{Name: "1-2", Start: NewTimeOfDay(1, 0), End: NewTimeOfDay(2, 0)},
			{Name: "2-3", Start: NewTimeOfDay(2, 0), End: NewTimeOfDay(3, 0)},
			{Name: "bruh", Start: NewTimeOfDay(3, 0), End: NewTimeOfDay(4, 0)},
			{Name: "*my brother in christ*", Start: NewTimeOfDay(4, 0), End: NewTimeOfDay(5, 0)},
			{Name: "turbo cringe", Start: NewTimeOfDay(5, 0), End: NewTimeOfDay(6, 0)},
		},
		Weekend: []Bracket{
			{Name: "Winner", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(1, 0)},
			{Name: "1-2", Start: NewTimeOfDay(1, 0), End: NewTimeOfDay(2, 0)},
			{Name: "2-3", Start: NewTimeOfDay(2, 0), End: NewTimeOfDay(3, 0)},
			{Name: "bruh", Start: NewTimeOfDay(3, 0), End: NewTimeOfDay(4, 0)},
			{Name: "*my brother in christ*", Start: NewTimeOfDay(4, 0), End: NewTimeOfDay(5, 0)},
			{Name: "turbo cringe", Start: NewTimeOfDay(5, 0), End: NewTimeOfDay(6, 0)},
		},
	}
}

// For selects the bracket variant for the given night.
func (t BracketTable) For(n Night) []Bracket {
	if n.IsWeekend() {
		return t.Weekend
	}
	return t.Weekday
}

// Bucket returns the name of the bracket containing tod on the given night.
func (t BracketTable) Bucket(n Night, tod TimeOfDay) (string, error) {
	for _, b := range t.For(n) {
		if b.Contains(tod) {
			return b.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %s on night %s", ErrNoBracketMatch, tod, n)
}

// ForNight resolves a bracket name against the night's variant. Commands offer
// the weekday bracket list, so a weekend night needs the name mapped to its
// weekend equivalent; a name absent from the variant is rejected.
func (t BracketTable) ForNight(n Night, name string) (Bracket, error) {
	for _, b := range t.For(n) {
		if b.Name == name {
			return b, nil
		}
	}
	return Bracket{}, fmt.Errorf("%w: %q on night %s", ErrInvalidBracketForNight, name, n)
}

// Validate checks that each variant covers [WindowStart, WindowEnd) exactly,
// with contiguous non-overlapping brackets, and that the weekend names are a
// subset of the weekday names.
func (t BracketTable) Validate() error {
	if err := validateVariant("weekday", t.Weekday); err != nil {
		return err
	}
	if err := validateVariant("weekend", t.Weekend); err != nil {
		return err
	}

	weekdayNames := make(map[string]bool, len(t.Weekday))
	for _, b := range t.Weekday {
		weekdayNames[b.Name] = true
	}
	for _, b := range t.Weekend {
		if !weekdayNames[b.Name] {
			return fmt.Errorf("weekend bracket %q has no weekday equivalent", b.Name)
		}
	}

	return nil
}

func validateVariant(variant string, brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%s bracket table is empty", variant)
	}

	seen := make(map[string]bool, len(brackets))
	for _, b := range brackets {
		if b.Name == "" {
			return fmt.Errorf("%s bracket table contains an unnamed bracket", variant)
		}
		if seen[b.Name] {
			return fmt.Errorf("%s bracket table repeats name %q", variant, b.Name)
		}
		seen[b.Name] = true

		if b.Start.NightOrdinal() >= b.End.NightOrdinal() {
			return fmt.Errorf("%s bracket %q is empty or inverted (%s-%s)", variant, b.Name, b.Start, b.End)
		}
	}

	if brackets[0].Start != WindowStart {
		return fmt.Errorf("%s bracket table starts at %s, want %s", variant, brackets[0].Start, WindowStart)
	}
	for i := 1; i < len(brackets); i++ {
		if brackets[i].Start != brackets[i-1].End {
			return fmt.Errorf("%s bracket table has a gap or overlap between %q and %q",
				variant, brackets[i-1].Name, brackets[i].Name)
		}
	}
	if last := brackets[len(brackets)-1]; last.End != WindowEnd {
		return fmt.Errorf("%s bracket table ends at %s, want %s", variant, last.End, WindowEnd)
	}

	return nil
}
