package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(name)
	require.NoError(t, err)

	return loc
}

func TestNextOccurrenceUTC_Kolkata(t *testing.T) {
	kolkata := mustLoad(t, "Asia/Kolkata")

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "sunday evening rolls to monday morning",
			// Sunday 2025-09-14 22:00 IST.
			now: time.Date(2025, 9, 14, 22, 0, 0, 0, kolkata),
			// Monday 09:00 IST = Monday 03:30 UTC.
			want: time.Date(2025, 9, 15, 3, 30, 0, 0, time.UTC),
		},
		{
			name: "monday before the slot stays today",
			now:  time.Date(2025, 9, 15, 8, 0, 0, 0, kolkata),
			want: time.Date(2025, 9, 15, 3, 30, 0, 0, time.UTC),
		},
		{
			name: "monday just past the slot jumps a full week",
			now:  time.Date(2025, 9, 15, 9, 1, 0, 0, kolkata),
			want: time.Date(2025, 9, 22, 3, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextOccurrenceUTC("monday", "09:00", "Asia/Kolkata", tt.now)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNextOccurrenceUTC_ExactlyAtSlot(t *testing.T) {
	kolkata := mustLoad(t, "Asia/Kolkata")
	now := time.Date(2025, 9, 15, 9, 0, 0, 0, kolkata)

	got, ok := NextOccurrenceUTC("monday", "09:00", "Asia/Kolkata", now)
	require.True(t, ok)

	// A candidate equal to now is not in the past, so it is kept.
	assert.True(t, now.UTC().Equal(got))
}

func TestNextOccurrenceUTC_ResultMatchesWeekdayAndTime(t *testing.T) {
	zones := []string{"Asia/Kolkata", "America/New_York", "Europe/Moscow", "UTC"}
	now := time.Date(2025, 3, 5, 17, 42, 11, 0, time.UTC)

	for _, tz := range zones {
		loc := mustLoad(t, tz)

		for _, day := range []string{"monday", "wednesday", "sunday"} {
			got, ok := NextOccurrenceUTC(day, "07:15", tz, now)
			require.True(t, ok, "%s %s", tz, day)

			local := got.In(loc)
			assert.Equal(t, day, weekdayName(local.Weekday()), "weekday in %s", tz)
			assert.Equal(t, "07:15", local.Format("15:04"), "time of day in %s", tz)
			assert.False(t, got.Before(now), "never in the past")
		}
	}
}

func TestNextOccurrenceUTC_Deterministic(t *testing.T) {
	now := time.Date(2025, 9, 14, 22, 0, 0, 0, time.UTC)

	first, ok1 := NextOccurrenceUTC("friday", "18:30", "Europe/Moscow", now)
	second, ok2 := NextOccurrenceUTC("friday", "18:30", "Europe/Moscow", now)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, first.Equal(second))
}

func TestNextOccurrenceUTC_Disabled(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		weekday   string
		localTime string
		timezone  string
	}{
		{"empty time means disabled", "monday", "", "Asia/Kolkata"},
		{"blank time means disabled", "monday", "   ", "Asia/Kolkata"},
		{"unknown weekday", "someday", "09:00", "Asia/Kolkata"},
		{"malformed time", "monday", "9am", "Asia/Kolkata"},
		{"hour out of range", "monday", "25:00", "Asia/Kolkata"},
		{"minute out of range", "monday", "09:75", "Asia/Kolkata"},
		{"invalid timezone", "monday", "09:00", "Nowhere/Nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NextOccurrenceUTC(tt.weekday, tt.localTime, tt.timezone, now)
			assert.False(t, ok)
		})
	}
}

func weekdayName(wd time.Weekday) string {
	for name, w := range weekdays {
		if w == wd {
			return name
		}
	}
	return ""
}
