package timesheet

import (
	"context"
)

// Service defines the editing-session operations exposed to the HTTP layer.
type Service interface {
	// OpenSession loads the full-year matrix for an equipment unit and
	// registers a new editing session.
	OpenSession(ctx context.Context, equipmentID string, req OpenSessionRequest) (SessionResponse, error)

	// GetView projects the visible window of a session's matrix.
	GetView(ctx context.Context, sessionID string, q ViewQuery) (ViewResponse, error)

	// EditCell applies one cell edit, gated by the day-ceiling invariant.
	EditCell(ctx context.Context, sessionID string, req EditCellRequest) (CellResponse, error)

	// ClearCell zeroes a cell and, if it backs a server record, marks that
	// record for deletion on the next save.
	ClearCell(ctx context.Context, sessionID string, req ClearCellRequest) (CellResponse, error)

	// AddWorkType attaches a new work-type column to an already-loaded matrix.
	AddWorkType(ctx context.Context, sessionID string, req AddWorkTypeRequest) error

	// Save diffs the matrix against the server snapshot and executes the
	// resulting batch.
	Save(ctx context.Context, sessionID string) (SaveResponse, error)

	// CloseSession discards a session and its unsaved edits.
	CloseSession(ctx context.Context, sessionID string) error
}
