package schedule

import (
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/calendar"
)

// EarlyVisibilityMinutes is subtracted from a turn's nominal start before
// the activity check, so a row surfaces on the board ahead of the shift.
const EarlyVisibilityMinutes = 20

// IsActive decides whether sch is in force at now. It fails closed on date
// range and weekday exclusions, and fails open (active) when the referenced
// turn is missing or carries unparseable times, so a misconfigured turn
// never hides an employee from the board.
func IsActive(sch Schedule, t *turn.Turn, now time.Time) bool {
	if sch.StartDate != nil && calendar.DateOf(now) < calendar.DateOf(*sch.StartDate) {
		return false
	}
	if sch.EndDate != nil && calendar.DateOf(now) > calendar.DateOf(*sch.EndDate) {
		return false
	}
	if !sch.AppliesOn(calendar.ISOWeekday(now)) {
		return false
	}
	if t == nil {
		return true
	}

	start, okStart := t.StartMinute()
	end, okEnd := t.EndMinute()
	if !okStart || !okEnd {
		return true
	}
	if start == end {
		// Full-day window.
		return true
	}

	adjStart := start - EarlyVisibilityMinutes
	if adjStart < 0 {
		adjStart += calendar.MinutesPerDay
	}

	return inWindow(calendar.MinuteOfDay(now), adjStart, end)
}

// inWindow checks minutes-since-midnight membership in [start, end],
// treating start > end as a window that wraps past midnight.
func inWindow(now, start, end int) bool {
	if start == end {
		return true
	}
	if start < end {
		return now >= start && now <= end
	}
	return now >= start || now <= end
}
