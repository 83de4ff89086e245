// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour = 60
	secondsInAnHour = 3600

	// MinutesInADay is the length of the 24-hour face.
	MinutesInADay = 1440
	// MinutesInHalfADay is the length of a 12-hour face.
	MinutesInHalfADay = 720
)

var errFutureTime = errors.New("the specified time is in the future")

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatElapsed renders d as HH:MM:SS. Negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int(d / time.Second)

	hours := total / secondsInAnHour
	minutes := (total % secondsInAnHour) / minutesInAnHour
	seconds := total % minutesInAnHour

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatMinutes renders a minute count as "1h 05m" or "42m".
func FormatMinutes(val int) string {
	hrs, mins := MinsToHoursAndMins(val)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// MinuteOfDay returns the number of whole minutes since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*minutesInAnHour + t.Minute()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		999999999,
		t.Location(),
	)
}

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())

	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// FromStr parses a natural language time expression such as "20 minutes
// ago" or "9:30am" relative to now. Times in the future are rejected.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q: %w", s, err)
	}

	if dt.Time.After(now) {
		return time.Time{}, errFutureTime
	}

	return dt.Time, nil
}
