package master

import "time"

// Position is a master-data catalog entry referenced by employees.
type Position struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
