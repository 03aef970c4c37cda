package report

import (
	"context"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
)

type Service interface {
	// ConsolidateShift builds a shift_report from a closed shift_in mark,
	// replacing the employee's previous report.
	ConsolidateShift(ctx context.Context, shiftIn mark.Mark) (Report, error)
	// ConsolidateSnapshot builds a row_snapshot from the employee's full
	// mark history, replacing the employee's previous report.
	ConsolidateSnapshot(ctx context.Context, employeeID string) (Report, error)
	List(ctx context.Context) ([]Report, error)
	UpdateNotes(ctx context.Context, req *UpdateReportRequest) (Report, error)
	Clear(ctx context.Context) error
}
