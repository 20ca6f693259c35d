package timesheet

import (
	"time"
)

// WorkEntry is one work-hour record as known to the system of record:
// hours logged by an equipment unit on a calendar date against a work type.
type WorkEntry struct {
	ID          string
	EquipmentID string
	Date        time.Time
	WorkTypeID  string
	Hours       float64
	AssigneeID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkType is a category of labor an equipment unit can log hours against.
// The set of supported work types defines the column domain of the matrix.
type WorkType struct {
	ID   string
	Name string
}

// NewWorkEntry carries the fields needed to create a record.
type NewWorkEntry struct {
	EquipmentID string
	DateKey     string
	WorkTypeID  string
	Hours       float64
	AssigneeID  string
}

type OperationKind string

const (
	OpCreate OperationKind = "create"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// SaveOperation is one step of a batch save. DateKey and WorkTypeID are set
// for creates and updates; RecordID is set for updates and deletes.
type SaveOperation struct {
	Kind       OperationKind
	DateKey    string
	WorkTypeID string
	RecordID   string
	Hours      float64
	AssigneeID string
}

// OperationFailure records one persistence call that did not go through,
// with enough detail to retry just that cell.
type OperationFailure struct {
	Operation SaveOperation
	Err       error
}

// SaveReport summarizes a batch save. Refreshed is true when the matrix was
// re-seeded from the server after the batch (at least one operation succeeded).
type SaveReport struct {
	Attempted int
	Succeeded int
	Failures  []OperationFailure
	Refreshed bool
}
