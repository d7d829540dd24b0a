package timeslot_test

import (
	"testing"

	"reservahub/shared/timeslot"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		expected int
	}{
		{
			name:     "midnight",
			clock:    "00:00",
			expected: 0,
		},
		{
			name:     "morning",
			clock:    "09:30",
			expected: 570,
		},
		{
			name:     "end of day",
			clock:    "23:59",
			expected: 1439,
		},
		{
			name:     "hours only",
			clock:    "14",
			expected: 840,
		},
		{
			name:     "unparsable",
			clock:    "bad",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.ToMinutes(tt.clock)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected string
	}{
		{
			name:     "zero",
			minutes:  0,
			expected: "00:00",
		},
		{
			name:     "morning",
			minutes:  570,
			expected: "09:30",
		},
		{
			name:     "negative clamps to zero",
			minutes:  -30,
			expected: "00:00",
		},
		{
			name:     "wraps past midnight",
			minutes:  1500,
			expected: "01:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.MinutesToTime(tt.minutes)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestToMinutesRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "08:15", "12:00", "17:45", "23:30"} {
		if got := timeslot.MinutesToTime(timeslot.ToMinutes(clock)); got != clock {
			t.Errorf("round trip of %s produced %s", clock, got)
		}
	}
}

func TestParseDateOnly(t *testing.T) {
	parsed := timeslot.ParseDateOnly("2025-06-09")
	if parsed.IsZero() {
		t.Fatal("expected a valid time")
	}

	// Anchored at local noon so timezone shifts keep the calendar day.
	if parsed.Hour() != 12 {
		t.Errorf("expected noon anchor, got hour %d", parsed.Hour())
	}

	if timeslot.ToLocalDateISO(parsed) != "2025-06-09" {
		t.Errorf("expected 2025-06-09, got %s", timeslot.ToLocalDateISO(parsed))
	}

	if !timeslot.ParseDateOnly("not-a-date").IsZero() {
		t.Error("expected zero time for unparsable input")
	}
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{
			name:     "monday",
			date:     "2025-06-09",
			expected: 0,
		},
		{
			name:     "saturday",
			date:     "2025-06-14",
			expected: 5,
		},
		{
			name:     "sunday maps to 6",
			date:     "2025-06-15",
			expected: 6,
		},
		{
			name:     "unparsable",
			date:     "junk",
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.DayIndex(tt.date)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestParseDateTimeLocal(t *testing.T) {
	parsed, ok := timeslot.ParseDateTimeLocal("2025-06-09", "14:30")
	if !ok {
		t.Fatal("expected parse to succeed")
	}

	if parsed.Hour() != 14 || parsed.Minute() != 30 {
		t.Errorf("expected 14:30, got %02d:%02d", parsed.Hour(), parsed.Minute())
	}

	// Empty clock falls back to midnight.
	parsed, ok = timeslot.ParseDateTimeLocal("2025-06-09", "")
	if !ok {
		t.Fatal("expected parse to succeed")
	}

	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("expected midnight, got %02d:%02d", parsed.Hour(), parsed.Minute())
	}

	if _, ok = timeslot.ParseDateTimeLocal("2025-06-09", "25:00"); ok {
		t.Error("expected parse to fail for invalid clock")
	}
}

func TestEndOfDay(t *testing.T) {
	end := timeslot.EndOfDay(timeslot.ParseDateOnly("2025-06-09"))

	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("expected 23:59:59, got %02d:%02d:%02d", end.Hour(), end.Minute(), end.Second())
	}

	if timeslot.ToLocalDateISO(end) != "2025-06-09" {
		t.Errorf("expected same calendar day, got %s", timeslot.ToLocalDateISO(end))
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        [2]int
		b        [2]int
		expected bool
	}{
		{
			name:     "full overlap",
			a:        [2]int{540, 600},
			b:        [2]int{540, 600},
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        [2]int{540, 600},
			b:        [2]int{570, 630},
			expected: true,
		},
		{
			name:     "contained",
			a:        [2]int{540, 660},
			b:        [2]int{570, 600},
			expected: true,
		},
		{
			name:     "back to back do not overlap",
			a:        [2]int{540, 600},
			b:        [2]int{600, 660},
			expected: false,
		},
		{
			name:     "disjoint",
			a:        [2]int{540, 600},
			b:        [2]int{700, 760},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.RangesOverlap(tt.a[0], tt.a[1], tt.b[0], tt.b[1])
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFormat12h(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		expected string
	}{
		{
			name:     "morning",
			clock:    "09:30",
			expected: "9:30 AM",
		},
		{
			name:     "afternoon",
			clock:    "14:30",
			expected: "2:30 PM",
		},
		{
			name:     "midnight",
			clock:    "00:00",
			expected: "12:00 AM",
		},
		{
			name:     "noon",
			clock:    "12:00",
			expected: "12:00 PM",
		},
		{
			name:     "unparsable returned unchanged",
			clock:    "junk",
			expected: "junk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := timeslot.Format12h(tt.clock)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}
