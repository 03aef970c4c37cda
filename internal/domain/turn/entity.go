package turn

import (
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/pkg/calendar"
)

// Turn is a named recurring time-of-day window ("Matutino 06:00-14:00").
// A turn whose end does not come after its start wraps past midnight;
// identical start and end mean the window covers the whole day.
type Turn struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Fixed     bool   // seeded catalog entries, protected from edits
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartMinute returns the turn start as minutes since midnight.
// ok is false when the stored value is not a valid HH:MM string.
func (t Turn) StartMinute() (int, bool) {
	m, err := calendar.ParseHHMM(t.StartTime)
	return m, err == nil
}

// EndMinute returns the turn end as minutes since midnight.
func (t Turn) EndMinute() (int, bool) {
	m, err := calendar.ParseHHMM(t.EndTime)
	return m, err == nil
}

// WrapsMidnight reports whether the window spans into the next day.
func (t Turn) WrapsMidnight() bool {
	start, okS := t.StartMinute()
	end, okE := t.EndMinute()
	if !okS || !okE {
		return false
	}
	return end <= start && start != end
}

// ElapsedSinceStart returns minutes elapsed since the turn's nominal start.
// ok is false before the start, outside the window, for full-day turns and
// for unparseable times.
func (t Turn) ElapsedSinceStart(now time.Time) (int, bool) {
	start, okS := t.StartMinute()
	end, okE := t.EndMinute()
	if !okS || !okE || start == end {
		return 0, false
	}

	nowMin := calendar.MinuteOfDay(now)
	if start < end {
		if nowMin < start || nowMin > end {
			return 0, false
		}
		return nowMin - start, true
	}

	// Window wraps past midnight.
	switch {
	case nowMin >= start:
		return nowMin - start, true
	case nowMin <= end:
		return nowMin + calendar.MinutesPerDay - start, true
	default:
		return 0, false
	}
}
