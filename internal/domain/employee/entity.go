package employee

import "time"

type Employee struct {
	ID         string
	Name       string
	PositionID *string
	Code       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot is the denormalized employee view embedded in reports, frozen at
// consolidation time so later edits do not rewrite history.
type Snapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position *string `json:"position,omitempty"`
	Code     *string `json:"code,omitempty"`
}

// SnapshotOf freezes e with its resolved position name.
func SnapshotOf(e Employee, positionName *string) Snapshot {
	return Snapshot{
		ID:       e.ID,
		Name:     e.Name,
		Position: positionName,
		Code:     e.Code,
	}
}
