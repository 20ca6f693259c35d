package timesheet

import (
	"errors"
	"fmt"
	"strings"
)

// Timesheet domain errors
var (
	ErrEntryNotFound        = errors.New("work entry not found")
	ErrSessionNotFound      = errors.New("timesheet session not found")
	ErrSaveInFlight         = errors.New("a save is already in progress for this session")
	ErrNothingToSave        = errors.New("nothing to save")
	ErrWorkTypeNotSupported = errors.New("work type is not supported by this equipment")
	ErrDateOutsideYear      = errors.New("date is outside the loaded year")
	ErrUnknownViewMode      = errors.New("unknown view mode")
	ErrWindowOutOfRange     = errors.New("view window segment is out of range for the month")
)

// CeilingViolationError rejects an edit that would push a day's total hours
// over the daily limit. CurrentTotal is the day's effective total across the
// other columns, Attempted the proposed value for the edited column.
type CeilingViolationError struct {
	DateKey      string
	CurrentTotal float64
	Attempted    float64
	Limit        float64
}

func (e *CeilingViolationError) Error() string {
	return fmt.Sprintf("day %s total is %.2fh; adding %.2fh would exceed the %.0fh limit",
		e.DateKey, e.CurrentTotal, e.Attempted, e.Limit)
}

// CellRef identifies one cell of the matrix.
type CellRef struct {
	DateKey    string
	WorkTypeID string
}

// MissingAssigneesError blocks a save because one or more cells queued for
// create/update have no assignee. All offending cells are reported together.
type MissingAssigneesError struct {
	Cells []CellRef
}

func (e *MissingAssigneesError) Error() string {
	refs := make([]string, 0, len(e.Cells))
	for _, c := range e.Cells {
		refs = append(refs, c.DateKey+"/"+c.WorkTypeID)
	}
	return "assignee is required for non-empty cells: " + strings.Join(refs, ", ")
}
