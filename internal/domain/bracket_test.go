package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tuesdayNight  = Night{Year: 2025, Month: time.November, Day: 18}
	saturdayNight = Night{Year: 2025, Month: time.November, Day: 22}
)

func TestDefaultBrackets_Validate(t *testing.T) {
	assert.NoError(t, DefaultBrackets().Validate())
}

func TestBracketTable_Bucket(t *testing.T) {
	table := DefaultBrackets()

	tests := []struct {
		name       string
		night      Night
		timeOfDay  TimeOfDay
		wantBucket string
	}{
		{
			name:       "Weekday 23:30 wins",
			night:      tuesdayNight,
			timeOfDay:  NewTimeOfDay(23, 30),
			wantBucket: "Winner",
		},
		{
			name:       "Weekday 00:30 is past midnight",
			night:      tuesdayNight,
			timeOfDay:  NewTimeOfDay(0, 30),
			wantBucket: "12-1",
		},
		{
			name:       "Weekend 23:30 wins",
			night:      saturdayNight,
			timeOfDay:  NewTimeOfDay(23, 30),
			wantBucket: "Winner",
		},
		{
			name:       "Weekend winner bracket extends to 01:00",
			night:      saturdayNight,
			timeOfDay:  NewTimeOfDay(0, 30),
			wantBucket: "Winner",
		},
		{
			name:       "Weekend 01:00 no longer wins",
			night:      saturdayNight,
			timeOfDay:  NewTimeOfDay(1, 0),
			wantBucket: "1-2",
		},
		{
			name:       "Small hours land in bruh",
			night:      tuesdayNight,
			timeOfDay:  NewTimeOfDay(3, 30),
			wantBucket: "bruh",
		},
		{
			name:       "Last bracket runs to the window close",
			night:      tuesdayNight,
			timeOfDay:  NewTimeOfDay(5, 59),
			wantBucket: "turbo cringe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Bucket(tt.night, tt.timeOfDay)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, got)
		})
	}
}

func TestBracketTable_Bucket_NoMatch(t *testing.T) {
	table := DefaultBrackets()

	// Noon never reaches Bucket in normal operation: the judgment window
	// check filters it out first. A miss is an invariant violation.
	_, err := table.Bucket(tuesdayNight, NewTimeOfDay(12, 0))
	assert.ErrorIs(t, err, ErrNoBracketMatch)

	_, err = table.Bucket(tuesdayNight, NewTimeOfDay(21, 0))
	assert.ErrorIs(t, err, ErrNoBracketMatch)
}

func TestBracketTable_Bucket_TotalCoverage(t *testing.T) {
	table := DefaultBrackets()

	// Every minute of [22:00, 06:00) maps to exactly one bracket for both
	// variants.
	for _, night := range []Night{tuesdayNight, saturdayNight} {
		for ord := WindowStart.NightOrdinal(); ord < WindowEnd.NightOrdinal(); ord++ {
			tod := TimeOfDay((ord + RolloverHour*60) % minutesPerDay)
			_, err := table.Bucket(night, tod)
			require.NoError(t, err, "night %s time %s", night, tod)
		}
	}
}

func TestBracketTable_ForNight(t *testing.T) {
	table := DefaultBrackets()

	t.Run("Shared bracket maps onto the weekend variant by name", func(t *testing.T) {
		bracket, err := table.ForNight(saturdayNight, "bruh")
		require.NoError(t, err)
		assert.Equal(t, NewTimeOfDay(3, 0), bracket.Start)
	})

	t.Run("Weekday-only bracket is rejected on a weekend night", func(t *testing.T) {
		_, err := table.ForNight(saturdayNight, "12-1")
		assert.ErrorIs(t, err, ErrInvalidBracketForNight)
	})

	t.Run("Weekday bracket resolves on a weekday night", func(t *testing.T) {
		bracket, err := table.ForNight(tuesdayNight, "12-1")
		require.NoError(t, err)
		assert.Equal(t, NewTimeOfDay(0, 0), bracket.Start)
	})

	t.Run("Unknown bracket is rejected", func(t *testing.T) {
		_, err := table.ForNight(tuesdayNight, "nope")
		assert.ErrorIs(t, err, ErrInvalidBracketForNight)
	})
}

func TestBracketTable_Validate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table BracketTable
	}{
		{
			name:  "Empty weekday table",
			table: BracketTable{Weekend: DefaultBrackets().Weekend},
		},
		{
			name: "Gap in coverage",
			table: BracketTable{
				Weekday: []Bracket{
					{Name: "a", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(0, 0)},
					{Name: "b", Start: NewTimeOfDay(1, 0), End: NewTimeOfDay(6, 0)},
				},
				Weekend: DefaultBrackets().Weekend,
			},
		},
		{
			name: "Does not start at the window open",
			table: BracketTable{
				Weekday: []Bracket{
					{Name: "a", Start: NewTimeOfDay(23, 0), End: NewTimeOfDay(6, 0)},
				},
				Weekend: DefaultBrackets().Weekend,
			},
		},
		{
			name: "Does not reach the window close",
			table: BracketTable{
				Weekday: []Bracket{
					{Name: "a", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(5, 0)},
				},
				Weekend: DefaultBrackets().Weekend,
			},
		},
		{
			name: "Duplicate bracket name",
			table: BracketTable{
				Weekday: []Bracket{
					{Name: "a", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(0, 0)},
					{Name: "a", Start: NewTimeOfDay(0, 0), End: NewTimeOfDay(6, 0)},
				},
				Weekend: DefaultBrackets().Weekend,
			},
		},
		{
			name: "Weekend bracket without weekday equivalent",
			table: BracketTable{
				Weekday: []Bracket{
					{Name: "a", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(6, 0)},
				},
				Weekend: []Bracket{
					{Name: "b", Start: NewTimeOfDay(22, 0), End: NewTimeOfDay(6, 0)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.table.Validate())
		})
	}
}
