package timesheet

import (
	"strconv"
	"strings"

	"github.com/fleetworks/timesheet-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET SESSION DTOs
// ========================================

type OpenSessionRequest struct {
	Year int `json:"year"`
}

func (r *OpenSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ViewModes are the accepted values of ViewQuery.Mode.
var ViewModes = []string{"week", "15day", "month"}

// ViewQuery selects the visible window of the yearly matrix. Mode is one of
// "week", "15day", "month". Segment picks the week (0-4) or half (0-1) of the
// month and is ignored in month mode.
type ViewQuery struct {
	Mode    string
	Month   int
	Segment int
}

func (q *ViewQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.Mode) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode is required",
		})
	} else if !validator.IsInSlice(q.Mode, ViewModes) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of week, 15day, month",
		})
	}

	if q.Month < 1 || q.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if q.Segment < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "segment",
			Message: "segment must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditCellRequest carries one cell edit. Hours arrives as the raw input-field
// text; blank or unparseable values normalize to zero downstream. A nil
// AssigneeID preserves the cell's current assignee.
type EditCellRequest struct {
	DateKey    string  `json:"date"`
	WorkTypeID string  `json:"work_type_id"`
	Hours      string  `json:"hours"`
	AssigneeID *string `json:"assignee_id"`
}

func (r *EditCellRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.DateKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.WorkTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type_id",
			Message: "work_type_id is required",
		})
	}

	if !validator.IsEmpty(r.Hours) {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Hours), 64)
		if err == nil && v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "hours",
				Message: "hours must not be negative",
			})
		}
	}

	if r.AssigneeID != nil && validator.IsEmpty(*r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignee_id",
			Message: "assignee_id must not be blank when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClearCellRequest struct {
	DateKey    string `json:"date"`
	WorkTypeID string `json:"work_type_id"`
}

func (r *ClearCellRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.DateKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.WorkTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type_id",
			Message: "work_type_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddWorkTypeRequest struct {
	WorkTypeID        string `json:"work_type_id"`
	Name              string `json:"name"`
	DefaultAssigneeID string `json:"default_assignee_id"`
}

func (r *AddWorkTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type_id",
			Message: "work_type_id is required",
		})
	}

	if validator.IsEmpty(r.DefaultAssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_assignee_id",
			Message: "default_assignee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type WorkTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SessionResponse struct {
	SessionID   string             `json:"session_id"`
	EquipmentID string             `json:"equipment_id"`
	Year        int                `json:"year"`
	WorkTypes   []WorkTypeResponse `json:"work_types"`
}

type CellResponse struct {
	DateKey    string  `json:"date"`
	WorkTypeID string  `json:"work_type_id"`
	Hours      float64 `json:"hours"`
	AssigneeID string  `json:"assignee_id,omitempty"`
	Persisted  bool    `json:"persisted"`
	Dirty      bool    `json:"dirty"`
	DayTotal   float64 `json:"day_total"`
}

type ViewResponse struct {
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Cells        []CellResponse     `json:"cells"`
	DayTotals    map[string]float64 `json:"day_totals"`
	ColumnTotals map[string]float64 `json:"column_totals"`
	GrandTotal   float64            `json:"grand_total"`
}

type FailedOperationResponse struct {
	Kind       string `json:"kind"`
	DateKey    string `json:"date,omitempty"`
	WorkTypeID string `json:"work_type_id,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
	Error      string `json:"error"`
}

type SaveResponse struct {
	Message   string                    `json:"message"`
	Attempted int                       `json:"attempted"`
	Succeeded int                       `json:"succeeded"`
	Failed    []FailedOperationResponse `json:"failed,omitempty"`
	Refreshed bool                      `json:"refreshed"`
}
