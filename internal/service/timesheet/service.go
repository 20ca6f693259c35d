package timesheet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/equipment"
	domain "github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	repo domain.Repository
	equipment.EquipmentRepository
	sessions *Manager
}

func NewTimesheetService(repo domain.Repository, equipmentRepo equipment.EquipmentRepository) domain.Service {
	return &TimesheetServiceImpl{
		repo:                repo,
		EquipmentRepository: equipmentRepo,
		sessions:            NewManager(),
	}
}

// OpenSession implements timesheet.Service.
func (t *TimesheetServiceImpl) OpenSession(ctx context.Context, equipmentID string, req domain.OpenSessionRequest) (domain.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.SessionResponse{}, err
	}

	if _, err := t.EquipmentRepository.GetByID(ctx, equipmentID); err != nil {
		return domain.SessionResponse{}, err
	}

	session := NewSession(t.repo, equipmentID, req.Year)
	if err := session.Load(ctx); err != nil {
		return domain.SessionResponse{}, fmt.Errorf("failed to load timesheet matrix: %w", err)
	}
	t.sessions.Put(session)

	return domain.SessionResponse{
		SessionID:   session.ID,
		EquipmentID: equipmentID,
		Year:        req.Year,
		WorkTypes:   toWorkTypeResponses(session.WorkTypes()),
	}, nil
}

// GetView implements timesheet.Service.
func (t *TimesheetServiceImpl) GetView(ctx context.Context, sessionID string, q domain.ViewQuery) (domain.ViewResponse, error) {
	if err := q.Validate(); err != nil {
		return domain.ViewResponse{}, err
	}

	session, err := t.sessions.Get(sessionID)
	if err != nil {
		return domain.ViewResponse{}, err
	}

	mode, err := ParseViewMode(q.Mode)
	if err != nil {
		return domain.ViewResponse{}, err
	}
	window, err := NewWindow(mode, session.Year(), time.Month(q.Month), q.Segment)
	if err != nil {
		return domain.ViewResponse{}, err
	}

	return toViewResponse(session.Project(window)), nil
}

// EditCell implements timesheet.Service.
func (t *TimesheetServiceImpl) EditCell(ctx context.Context, sessionID string, req domain.EditCellRequest) (domain.CellResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.CellResponse{}, err
	}

	session, err := t.sessions.Get(sessionID)
	if err != nil {
		return domain.CellResponse{}, err
	}

	if err := session.Edit(req.DateKey, req.WorkTypeID, ParseHours(req.Hours), req.AssigneeID); err != nil {
		return domain.CellResponse{}, err
	}

	return t.cellResponse(session, req.DateKey, req.WorkTypeID), nil
}

// ClearCell implements timesheet.Service.
func (t *TimesheetServiceImpl) ClearCell(ctx context.Context, sessionID string, req domain.ClearCellRequest) (domain.CellResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.CellResponse{}, err
	}

	session, err := t.sessions.Get(sessionID)
	if err != nil {
		return domain.CellResponse{}, err
	}

	if err := session.ClearCell(req.DateKey, req.WorkTypeID); err != nil {
		return domain.CellResponse{}, err
	}

	return t.cellResponse(session, req.DateKey, req.WorkTypeID), nil
}

// AddWorkType implements timesheet.Service.
func (t *TimesheetServiceImpl) AddWorkType(ctx context.Context, sessionID string, req domain.AddWorkTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	session, err := t.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	return session.AddWorkType(domain.WorkType{ID: req.WorkTypeID, Name: req.Name}, req.DefaultAssigneeID)
}

// Save implements timesheet.Service.
func (t *TimesheetServiceImpl) Save(ctx context.Context, sessionID string) (domain.SaveResponse, error) {
	session, err := t.sessions.Get(sessionID)
	if err != nil {
		return domain.SaveResponse{}, err
	}

	report, err := session.Save(ctx)
	if err != nil {
		if err == domain.ErrNothingToSave {
			return domain.SaveResponse{Message: "nothing to save"}, nil
		}
		return domain.SaveResponse{}, err
	}

	return toSaveResponse(report), nil
}

// CloseSession implements timesheet.Service.
func (t *TimesheetServiceImpl) CloseSession(ctx context.Context, sessionID string) error {
	if _, err := t.sessions.Get(sessionID); err != nil {
		return err
	}
	t.sessions.Delete(sessionID)
	return nil
}

func (t *TimesheetServiceImpl) cellResponse(session *Session, dateKey, workTypeID string) domain.CellResponse {
	cell := session.Get(dateKey, workTypeID)
	return domain.CellResponse{
		DateKey:    dateKey,
		WorkTypeID: workTypeID,
		Hours:      cell.Hours,
		AssigneeID: cell.AssigneeID,
		Persisted:  cell.Persisted,
		Dirty:      cell.Dirty(),
		DayTotal:   session.DayTotal(dateKey),
	}
}

func toWorkTypeResponses(workTypes []domain.WorkType) []domain.WorkTypeResponse {
	out := make([]domain.WorkTypeResponse, 0, len(workTypes))
	for _, wt := range workTypes {
		out = append(out, domain.WorkTypeResponse{ID: wt.ID, Name: wt.Name})
	}
	return out
}

func toViewResponse(p Projection) domain.ViewResponse {
	resp := domain.ViewResponse{
		StartDate:    p.Window.StartKey(),
		EndDate:      p.Window.EndKey(),
		DayTotals:    p.DayTotals,
		ColumnTotals: p.ColumnTotals,
		GrandTotal:   p.GrandTotal,
	}
	for _, dateKey := range p.Window.DateKeys() {
		row, ok := p.Cells[dateKey]
		if !ok {
			continue
		}
		wtIDs := make([]string, 0, len(row))
		for wtID := range row {
			wtIDs = append(wtIDs, wtID)
		}
		sort.Strings(wtIDs)
		for _, wtID := range wtIDs {
			cell := row[wtID]
			resp.Cells = append(resp.Cells, domain.CellResponse{
				DateKey:    dateKey,
				WorkTypeID: wtID,
				Hours:      cell.Hours,
				AssigneeID: cell.AssigneeID,
				Persisted:  cell.Persisted,
				Dirty:      cell.Dirty(),
				DayTotal:   p.DayTotals[dateKey],
			})
		}
	}
	return resp
}

func toSaveResponse(report domain.SaveReport) domain.SaveResponse {
	resp := domain.SaveResponse{
		Attempted: report.Attempted,
		Succeeded: report.Succeeded,
		Refreshed: report.Refreshed,
	}
	switch {
	case len(report.Failures) == 0:
		resp.Message = "all changes saved"
	case report.Succeeded == 0:
		resp.Message = "save failed, no changes were applied"
	default:
		resp.Message = "saved with failures, the reported cells were not applied"
	}
	for _, f := range report.Failures {
		resp.Failed = append(resp.Failed, domain.FailedOperationResponse{
			Kind:       string(f.Operation.Kind),
			DateKey:    f.Operation.DateKey,
			WorkTypeID: f.Operation.WorkTypeID,
			RecordID:   f.Operation.RecordID,
			Error:      f.Err.Error(),
		})
	}
	return resp
}
