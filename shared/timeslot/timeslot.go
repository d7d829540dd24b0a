package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reservahub/shared/timezone"
)

const (
	minutesPerHour = 60

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ToMinutes converts an "HH:MM" clock value to minutes since midnight.
// Unparsable segments count as zero.
func ToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)

	hours, _ := strconv.Atoi(parts[0])

	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}

	return hours*minutesPerHour + minutes
}

// MinutesToTime renders minutes since midnight as "HH:MM", wrapping past
// midnight and clamping negatives to zero.
func MinutesToTime(value int) string {
	total := max(0, value)

	hours := (total / minutesPerHour) % 24
	minutes := total % minutesPerHour

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// ParseDateOnly parses "YYYY-MM-DD" into a calendar date anchored at local
// noon. Anchoring at midday instead of midnight keeps the calendar day stable
// when the value is later shifted across timezones. Returns the zero time on
// unparsable input.
func ParseDateOnly(date string) time.Time {
	parsed, err := time.ParseInLocation(DateLayout, date, timezone.GetLocation())
	if err != nil {
		return time.Time{}
	}

	return parsed.Add(12 * time.Hour)
}

// DayIndex maps a "YYYY-MM-DD" date to an ISO weekday index, 0=Monday through
// 6=Sunday. Returns -1 on unparsable input.
func DayIndex(date string) int {
	parsed := ParseDateOnly(date)
	if parsed.IsZero() {
		return -1
	}

	// time.Weekday is Sunday-first.
	weekday := int(parsed.Weekday())
	if weekday == 0 {
		return 6
	}

	return weekday - 1
}

// ParseDateTimeLocal combines a date and an "HH:MM" clock value into a local
// time.Time. The boolean result is false on unparsable input.
func ParseDateTimeLocal(date, clock string) (time.Time, bool) {
	if clock == "" {
		clock = "00:00"
	}

	parsed, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, timezone.GetLocation())
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// ToLocalDateISO renders a time as a "YYYY-MM-DD" local calendar date.
func ToLocalDateISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.ToAppTime(t).Format(DateLayout)
}

// EndOfDay returns the last instant of the local calendar day of t.
func EndOfDay(t time.Time) time.Time {
	local := timezone.ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(time.Millisecond*999), timezone.GetLocation())
}

// RangesOverlap reports whether two half-open minute intervals [startA,endA)
// and [startB,endB) intersect. Back-to-back ranges sharing a boundary do not
// overlap.
func RangesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// Format12h renders an "HH:MM" 24h clock value in 12-hour form, e.g. "14:30"
// becomes "2:30 PM". Unparsable input is returned unchanged.
func Format12h(clock string) string {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return clock
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return clock
	}

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%s %s", display, parts[1], meridiem)
}
