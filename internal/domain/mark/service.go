package mark

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
)

// BoardRow is one kiosk board entry: an employee whose schedule is currently
// active or who still holds an open shift.
type BoardRow struct {
	Employee  employee.Employee
	Turn      *turn.Turn
	Status    Status
	OpenMarks []Mark
}

// CloseResult reports a committed close. ReportStale is true when the mark
// was closed but its report consolidation failed; the report catches up on
// the next qualifying event.
type CloseResult struct {
	Mark        Mark
	ReportStale bool
}

type Service interface {
	// MarkShiftIn opens the day's shift. It returns (nil, nil) when the
	// employee already started, already closed the day, or was tagged
	// absent today.
	MarkShiftIn(ctx context.Context, employeeID string) (*Mark, error)
	// MarkShiftOut closes the open shift and consolidates its report. It
	// returns (nil, nil) when no shift is open.
	MarkShiftOut(ctx context.Context, employeeID string) (*CloseResult, error)
	// ToggleBreak closes the employee's open break of the given type, or
	// opens one when none is open.
	ToggleBreak(ctx context.Context, employeeID, breakType string) (Mark, error)
	RecordGenericMark(ctx context.Context, employeeID, label string) (Mark, error)
	CloseMark(ctx context.Context, id string) (CloseResult, error)
	StatusOf(ctx context.Context, employeeID string, now time.Time) (Status, error)
	ListBoard(ctx context.Context) ([]BoardRow, error)
	ListMarks(ctx context.Context, f Filter) ([]Mark, error)
	UpdateMark(ctx context.Context, req *UpdateMarkRequest) (Mark, error)
}
