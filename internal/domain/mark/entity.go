package mark

import "time"

type Type string

const (
	TypeShiftIn    Type = "shift_in"
	TypeShiftOut   Type = "shift_out"
	TypeBreakStart Type = "break_start"
	TypeAbsent     Type = "absent"
	TypeLate       Type = "late"
	TypeGeneric    Type = "generic"
)

// Status is derived from an employee's marks and active schedule. It is
// never stored.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusOnShift Status = "on-shift"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusClosed  Status = "closed"
)

// Board labels as the kiosk displays them.
const (
	LabelShiftIn  = "ENTRADA"
	LabelShiftOut = "SALIDA"
	LabelLate     = "TARDANZA"
	LabelAbsent   = "AUSENTE"
)

// Thresholds in minutes past the turn's nominal start.
const (
	LateThresholdMinutes   = 5
	AbsentThresholdMinutes = 15
)

const (
	BreakAlmuerzoCena  = "almuerzo_cena"
	BreakDesayunoCafe  = "desayuno_cafe"
	BreakAlmuerzoLimit = 60
	BreakDesayunoLimit = 15
)

// DefaultBreakMinutes returns the suggested duration for a break type, or 0
// when the type carries no default.
func DefaultBreakMinutes(breakType string) int {
	switch breakType {
	case BreakAlmuerzoCena:
		return BreakAlmuerzoLimit
	case BreakDesayunoCafe:
		return BreakDesayunoLimit
	}
	return 0
}

// Meta carries type-specific payload, stored as jsonb.
type Meta struct {
	BreakType   string `json:"break_type,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"`
}

type Mark struct {
	ID         string
	EmployeeID string
	TurnID     *string
	Label      string
	Type       Type
	CreatedAt  time.Time
	ClosedAt   *time.Time
	Meta       *Meta
}

func (m Mark) IsOpen() bool {
	return m.ClosedAt == nil
}

// DurationMinutes is the rounded open-to-close span. The second return is
// false while the mark is still open.
func (m Mark) DurationMinutes() (int, bool) {
	if m.ClosedAt == nil {
		return 0, false
	}
	return int(m.ClosedAt.Sub(m.CreatedAt).Round(time.Minute) / time.Minute), true
}
