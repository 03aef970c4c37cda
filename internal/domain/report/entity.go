package report

import (
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
)

type Type string

const (
	TypeShiftReport Type = "shift_report"
	TypeRowSnapshot Type = "row_snapshot"
)

// MarkItem is a mark frozen into a report, stored as jsonb.
type MarkItem struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Type      mark.Type  `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// BreakSummary condenses one break_start mark. DurationMin is nil while the
// break was still open at consolidation time.
type BreakSummary struct {
	BreakType   string     `json:"break_type"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	DurationMin *int       `json:"duration_min,omitempty"`
}

// Report is the consolidated record for one employee. The store keeps at
// most one per employee; each consolidation replaces the previous one.
type Report struct {
	ID          string
	Type        Type
	EmployeeID  string
	Employee    *employee.Snapshot
	TurnID      *string
	Turn        *turn.Snapshot
	Start       *time.Time
	End         *time.Time
	DurationMin *int
	Items       []MarkItem
	Breaks      []BreakSummary
	Notes       *string
	Timestamp   time.Time
}
