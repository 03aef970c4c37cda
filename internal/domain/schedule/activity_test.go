package schedule

import (
	"testing"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

// at builds an instant on Monday 2025-11-03 at the given wall-clock time.
func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.Local)
}

func morningTurn() *turn.Turn {
	return &turn.Turn{ID: "t1", Name: "Matutino", StartTime: "06:00", EndTime: "14:00"}
}

func TestIsActive_DayWindow(t *testing.T) {
	sch := Schedule{ID: "s1", EmployeeID: "e1"}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before early-visibility buffer", at(5, 30), false},
		{"inside buffer ahead of start", at(5, 45), true},
		{"at nominal start", at(6, 0), true},
		{"mid shift", at(10, 0), true},
		{"at end", at(14, 0), true},
		{"after end", at(14, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsActive(sch, morningTurn(), c.now))
		})
	}
}

func TestIsActive_OvernightWindow(t *testing.T) {
	sch := Schedule{ID: "s1", EmployeeID: "e1"}
	night := &turn.Turn{ID: "t2", Name: "Nocturno", StartTime: "22:00", EndTime: "06:00"}

	assert.True(t, IsActive(sch, night, at(23, 30)))
	assert.True(t, IsActive(sch, night, at(5, 30)))
	assert.False(t, IsActive(sch, night, at(12, 0)))
	// Buffer surfaces the row from 21:40.
	assert.True(t, IsActive(sch, night, at(21, 45)))
	assert.False(t, IsActive(sch, night, at(21, 30)))
}

func TestIsActive_BufferWrapsToPreviousDay(t *testing.T) {
	sch := Schedule{ID: "s1", EmployeeID: "e1"}
	early := &turn.Turn{ID: "t3", Name: "Madrugada", StartTime: "00:10", EndTime: "08:00"}

	// 00:10 - 20min wraps to 23:50 of the previous day.
	assert.True(t, IsActive(sch, early, at(23, 55)))
	assert.True(t, IsActive(sch, early, at(0, 5)))
	assert.True(t, IsActive(sch, early, at(7, 0)))
	assert.False(t, IsActive(sch, early, at(12, 0)))
}

func TestIsActive_FullDayWindow(t *testing.T) {
	sch := Schedule{ID: "s1", EmployeeID: "e1"}
	allDay := &turn.Turn{ID: "t4", Name: "Guardia", StartTime: "08:00", EndTime: "08:00"}

	assert.True(t, IsActive(sch, allDay, at(0, 0)))
	assert.True(t, IsActive(sch, allDay, at(12, 0)))
	assert.True(t, IsActive(sch, allDay, at(23, 59)))
}

func TestIsActive_DateRange(t *testing.T) {
	sch := Schedule{
		ID:         "s1",
		EmployeeID: "e1",
		StartDate:  datePtr(2025, time.November, 1),
		EndDate:    datePtr(2025, time.November, 30),
	}

	assert.True(t, IsActive(sch, morningTurn(), at(10, 0)))

	before := time.Date(2025, 10, 15, 10, 0, 0, 0, time.Local)
	assert.False(t, IsActive(sch, morningTurn(), before))

	after := time.Date(2025, 12, 1, 10, 0, 0, 0, time.Local)
	assert.False(t, IsActive(sch, morningTurn(), after))
}

func TestIsActive_WeekdayExclusion(t *testing.T) {
	// 2025-11-03 is a Monday (ISO 1).
	weekdaysOnly := Schedule{ID: "s1", EmployeeID: "e1", Days: []int{1, 2, 3, 4, 5}}
	weekendOnly := Schedule{ID: "s2", EmployeeID: "e1", Days: []int{6, 7}}

	assert.True(t, IsActive(weekdaysOnly, morningTurn(), at(10, 0)))
	assert.False(t, IsActive(weekendOnly, morningTurn(), at(10, 0)))

	// Empty days means every day.
	allDays := Schedule{ID: "s3", EmployeeID: "e1"}
	assert.True(t, IsActive(allDays, morningTurn(), at(10, 0)))
}

func TestIsActive_DegradesOpenOnBadTurn(t *testing.T) {
	sch := Schedule{ID: "s1", EmployeeID: "e1"}

	// Missing turn never hides the employee.
	assert.True(t, IsActive(sch, nil, at(3, 0)))

	// Unparseable times degrade to always-active.
	broken := &turn.Turn{ID: "t5", Name: "Roto", StartTime: "morning", EndTime: "14:00"}
	assert.True(t, IsActive(sch, broken, at(3, 0)))
}

func TestIsActive_NoWrapSymmetry(t *testing.T) {
	// For start < end the window must be exactly [start-buffer, end].
	sch := Schedule{ID: "s1", EmployeeID: "e1"}
	tn := morningTurn()

	for minute := 0; minute < 24*60; minute++ {
		now := at(minute/60, minute%60)
		want := minute >= 6*60-EarlyVisibilityMinutes && minute <= 14*60
		if got := IsActive(sch, tn, now); got != want {
			t.Fatalf("IsActive at minute %d = %v, want %v", minute, got, want)
		}
	}
}
