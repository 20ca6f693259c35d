package timesheet

import (
	"context"
)

// Repository is the boundary to the system of record for work-hour entries.
// The matrix session fetches the full year through it and converges local
// edits back one operation at a time.
type Repository interface {
	// ListForYear retrieves every work entry of an equipment unit within the
	// given calendar year.
	ListForYear(ctx context.Context, equipmentID string, year int) ([]WorkEntry, error)

	// ListWorkTypes retrieves the work types supported by the equipment's
	// type. They define the matrix's column domain.
	ListWorkTypes(ctx context.Context, equipmentID string) ([]WorkType, error)

	// CreateEntry inserts a new record and returns its generated id.
	CreateEntry(ctx context.Context, entry NewWorkEntry) (string, error)

	// UpdateEntry updates hours and assignee of an existing record.
	// Returns ErrEntryNotFound if the record no longer exists.
	UpdateEntry(ctx context.Context, recordID string, hours float64, assigneeID string) error

	// DeleteEntry removes a record. A missing record is treated as success,
	// the end state is the same.
	DeleteEntry(ctx context.Context, recordID string) error

	// WithinTransaction runs fn with every repository call made through
	// fn's context executing in a single transaction.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
