package operator

import (
	"time"
)

// Operator is a driver/machine operator: the assignee credited with the hours
// of a timesheet cell, and the principal that logs into the editor.
type Operator struct {
	ID        string
	Code      string
	Name      string
	PINHash   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
