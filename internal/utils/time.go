package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// NowFromSettings returns the current time in the timezone from settings.
func NowFromSettings(settings models.Settings) (time.Time, error) {
	return NowInTimezone(settings.Timezone)
}

// StartOfDay truncates t to midnight of its calendar day, preserving location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameCalendarDay reports whether a and b fall on the same calendar day when
// both are viewed in b's location. Calendar-day semantics, not elapsed
// duration: 23:59 and 00:01 the next day are different days.
func SameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CalendarDaysBetween returns the number of whole calendar days from a's day
// to b's day, evaluated in b's location. Negative when a is after b. The
// civil dates are re-anchored in UTC so DST transitions cannot skew the count.
func CalendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks that the string matches the standard time format.
func ValidateTimeFormat(timeStr string) error {
	if _, err := ParseTime(timeStr); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", timeStr)
	}
	return nil
}

// ValidateTimezone checks that the timezone name is a valid IANA name.
func ValidateTimezone(timezone string) error {
	if timezone == "" || timezone == "Local" {
		return nil
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return nil
}
