package schedule

import "time"

// Schedule binds an employee to a turn for a set of weekdays within an
// optional date range. Days are ISO weekdays (1=Monday .. 7=Sunday); an
// empty set means the schedule applies every day.
type Schedule struct {
	ID         string
	EmployeeID string
	TurnID     *string
	Days       []int
	FreeDay    *int
	StartDate  *time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AppliesOn reports whether sch covers the ISO weekday.
func (s Schedule) AppliesOn(isoWeekday int) bool {
	if len(s.Days) == 0 {
		return true
	}
	for _, d := range s.Days {
		if d == isoWeekday {
			return true
		}
	}
	return false
}
