// Package calendar centralizes local-date formatting, weekday lookup and
// time-of-day arithmetic so day/weekday derivation stays consistent across
// the evaluator, the state machine and the auto-tagger.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// MinutesPerDay is the size of the minutes-since-midnight range.
	MinutesPerDay = 24 * 60
)

// DateOf formats t as a local calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	return DateOf(a) == DateOf(b)
}

// ISOWeekday returns the ISO weekday of t: 1 (Monday) through 7 (Sunday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// MinuteOfDay returns the minutes elapsed since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseHHMM converts an "HH:MM" time-of-day string to minutes since
// midnight. Returns an error for anything that is not a valid HH:MM value.
func ParseHHMM(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return hh*60 + mm, nil
}

// FormatHHMM renders minutes-since-midnight as "HH:MM".
func FormatHHMM(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AtMinute returns the instant on t's calendar day at the given
// minutes-since-midnight, in t's location.
func AtMinute(t time.Time, minutes int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), minutes/60, minutes%60, 0, 0, t.Location())
}

// SpanishWeekdayName maps ISO weekdays to the short labels the kiosk UI
// displays.
func SpanishWeekdayName(iso int) string {
	switch iso {
	case 1:
		return "Lun"
	case 2:
		return "Mar"
	case 3:
		return "Mié"
	case 4:
		return "Jue"
	case 5:
		return "Vie"
	case 6:
		return "Sáb"
	case 7:
		return "Dom"
	}
	return ""
}
