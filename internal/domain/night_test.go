package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNightFor(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	ny := mustLocation(t, "America/New_York")

	tests := []struct {
		name      string
		instant   time.Time
		loc       *time.Location
		wantNight string
	}{
		{
			name:      "Afternoon belongs to the night ending today",
			instant:   time.Date(2025, 11, 18, 15, 0, 0, 0, la),
			loc:       la,
			wantNight: "2025-11-18",
		},
		{
			name:      "Just before rollover still belongs to today",
			instant:   time.Date(2025, 11, 18, 19, 59, 59, 0, la),
			loc:       la,
			wantNight: "2025-11-18",
		},
		{
			name:      "Rollover instant belongs to tomorrow's night",
			instant:   time.Date(2025, 11, 18, 20, 0, 0, 0, la),
			loc:       la,
			wantNight: "2025-11-19",
		},
		{
			name:      "Late evening belongs to tomorrow's night",
			instant:   time.Date(2025, 11, 18, 23, 30, 0, 0, la),
			loc:       la,
			wantNight: "2025-11-19",
		},
		{
			name:      "Early morning belongs to the night ending today",
			instant:   time.Date(2025, 11, 19, 2, 0, 0, 0, la),
			loc:       la,
			wantNight: "2025-11-19",
		},
		{
			name:      "Night assignment follows the observer timezone",
			instant:   time.Date(2025, 11, 18, 23, 30, 0, 0, ny), // 20:30 in LA
			loc:       la,
			wantNight: "2025-11-19",
		},
		{
			name:      "Same instant in its own timezone is past rollover too",
			instant:   time.Date(2025, 11, 18, 23, 30, 0, 0, ny),
			loc:       ny,
			wantNight: "2025-11-19",
		},
		{
			name:      "Month boundary rolls into the next month",
			instant:   time.Date(2025, 11, 30, 21, 0, 0, 0, la),
			loc:       la,
			wantNight: "2025-12-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightFor(tt.instant, tt.loc)
			assert.Equal(t, tt.wantNight, got.String())
		})
	}
}

func TestNightFor_ConstantAcrossTheNight(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")

	// Every instant in [20:00 on the 18th, 20:00 on the 19th) maps to the
	// same night, and the mapping flips exactly at the boundary.
	start := time.Date(2025, 11, 18, 20, 0, 0, 0, la)
	end := time.Date(2025, 11, 19, 20, 0, 0, 0, la)

	for instant := start; instant.Before(end); instant = instant.Add(30 * time.Minute) {
		assert.Equal(t, "2025-11-19", NightFor(instant, la).String(), "instant %s", instant)
	}
	assert.Equal(t, "2025-11-20", NightFor(end, la).String())
	assert.Equal(t, "2025-11-19", NightFor(end.Add(-time.Second), la).String())
}

func TestNight_InJudgmentWindow(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	night := Night{Year: 2025, Month: time.November, Day: 19}

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{
			name:    "Before curfew is inside the night but not the window",
			instant: time.Date(2025, 11, 18, 21, 0, 0, 0, la),
			want:    false,
		},
		{
			name:    "Window opens at 22:00",
			instant: time.Date(2025, 11, 18, 22, 0, 0, 0, la),
			want:    true,
		},
		{
			name:    "Late evening is in the window",
			instant: time.Date(2025, 11, 18, 23, 30, 0, 0, la),
			want:    true,
		},
		{
			name:    "Small hours are in the window",
			instant: time.Date(2025, 11, 19, 3, 15, 0, 0, la),
			want:    true,
		},
		{
			name:    "Last minute before close is in the window",
			instant: time.Date(2025, 11, 19, 5, 59, 0, 0, la),
			want:    true,
		},
		{
			name:    "Window closes at 06:00",
			instant: time.Date(2025, 11, 19, 6, 0, 0, 0, la),
			want:    false,
		},
		{
			name:    "Daytime of the labeling date is outside",
			instant: time.Date(2025, 11, 19, 12, 0, 0, 0, la),
			want:    false,
		},
		{
			name:    "In-window instant of a different night does not match",
			instant: time.Date(2025, 11, 19, 23, 0, 0, 0, la),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, night.InJudgmentWindow(tt.instant, la))
		})
	}
}

func TestNight_IsWeekend(t *testing.T) {
	assert.False(t, Night{Year: 2025, Month: time.November, Day: 18}.IsWeekend()) // Tuesday
	assert.False(t, Night{Year: 2025, Month: time.November, Day: 21}.IsWeekend()) // Friday
	assert.True(t, Night{Year: 2025, Month: time.November, Day: 22}.IsWeekend())  // Saturday
	assert.True(t, Night{Year: 2025, Month: time.November, Day: 23}.IsWeekend())  // Sunday
}

func TestNight_NextPrev(t *testing.T) {
	night := Night{Year: 2025, Month: time.November, Day: 30}
	assert.Equal(t, "2025-12-01", night.Next().String())
	assert.Equal(t, "2025-11-29", night.Prev().String())
}

func TestParseNight(t *testing.T) {
	night, err := ParseNight("2025-11-19")
	require.NoError(t, err)
	assert.Equal(t, Night{Year: 2025, Month: time.November, Day: 19}, night)

	_, err = ParseNight("tonight")
	assert.Error(t, err)
}
