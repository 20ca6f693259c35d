package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/equipment"
	"github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/fleetworks/timesheet-backend-go/internal/handler/http/response"
	timesheetService "github.com/fleetworks/timesheet-backend-go/internal/service/timesheet"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkEntryRepository struct {
	workTypes []timesheet.WorkType
	entries   []timesheet.WorkEntry
	nextID    int
}

func (s *stubWorkEntryRepository) ListForYear(ctx context.Context, equipmentID string, year int) ([]timesheet.WorkEntry, error) {
	return s.entries, nil
}

func (s *stubWorkEntryRepository) ListWorkTypes(ctx context.Context, equipmentID string) ([]timesheet.WorkType, error) {
	return s.workTypes, nil
}

func (s *stubWorkEntryRepository) CreateEntry(ctx context.Context, entry timesheet.NewWorkEntry) (string, error) {
	s.nextID++
	id := fmt.Sprintf("rec-%d", s.nextID)
	date, _ := time.Parse("2006-01-02", entry.DateKey)
	s.entries = append(s.entries, timesheet.WorkEntry{
		ID: id, EquipmentID: entry.EquipmentID, Date: date,
		WorkTypeID: entry.WorkTypeID, Hours: entry.Hours, AssigneeID: entry.AssigneeID,
	})
	return id, nil
}

func (s *stubWorkEntryRepository) UpdateEntry(ctx context.Context, recordID string, hours float64, assigneeID string) error {
	return nil
}

func (s *stubWorkEntryRepository) DeleteEntry(ctx context.Context, recordID string) error {
	return nil
}

func (s *stubWorkEntryRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubEquipmentRepository struct{}

func (s *stubEquipmentRepository) GetByID(ctx context.Context, id string) (equipment.Equipment, error) {
	if id != "eq-1" {
		return equipment.Equipment{}, equipment.ErrEquipmentNotFound
	}
	return equipment.Equipment{ID: "eq-1", Code: "EXC-01", Name: "Excavator 01", Active: true}, nil
}

func (s *stubEquipmentRepository) List(ctx context.Context) ([]equipment.Equipment, error) {
	return nil, nil
}

func newTimesheetTestRouter(t *testing.T) (*chi.Mux, string) {
	t.Helper()

	svc := timesheetService.NewTimesheetService(
		&stubWorkEntryRepository{workTypes: []timesheet.WorkType{
			{ID: "wt-drilling", Name: "Drilling"},
			{ID: "wt-transport", Name: "Transport"},
		}},
		&stubEquipmentRepository{},
	)
	handler := NewTimesheetHandler(svc)

	r := chi.NewRouter()
	r.Route("/api/v1/timesheet-sessions/{sessionID}", func(r chi.Router) {
		r.Get("/view", handler.GetView)
		r.Put("/cells", handler.EditCell)
		r.Post("/save", handler.Save)
	})

	session, err := svc.OpenSession(context.Background(), "eq-1", timesheet.OpenSessionRequest{Year: 2025})
	require.NoError(t, err)
	return r, session.SessionID
}

func editCellRequest(sessionID string, body map[string]interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/timesheet-sessions/"+sessionID+"/cells", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTimesheetHandler_EditCell(t *testing.T) {
	t.Parallel()

	router, sessionID := newTimesheetTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, editCellRequest(sessionID, map[string]interface{}{
		"date":         "2025-06-10",
		"work_type_id": "wt-drilling",
		"hours":        "6.5",
		"assignee_id":  "D1",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)

	cell := resp.Data.(map[string]interface{})
	assert.Equal(t, 6.5, cell["hours"])
	assert.Equal(t, true, cell["dirty"])
}

func TestTimesheetHandler_EditCell_DayCeilingPayload(t *testing.T) {
	t.Parallel()

	router, sessionID := newTimesheetTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, editCellRequest(sessionID, map[string]interface{}{
		"date":         "2025-06-10",
		"work_type_id": "wt-drilling",
		"hours":        "20",
		"assignee_id":  "D1",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, editCellRequest(sessionID, map[string]interface{}{
		"date":         "2025-06-10",
		"work_type_id": "wt-transport",
		"hours":        "5",
		"assignee_id":  "D2",
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DAY_CEILING_EXCEEDED", resp.Error.Code)
	assert.Equal(t, "2025-06-10", resp.Error.Details["date"])
	assert.Equal(t, "20.00", resp.Error.Details["current_total"])
	assert.Equal(t, "5.00", resp.Error.Details["attempted"])
	assert.Equal(t, "24.00", resp.Error.Details["limit"])
}

func TestTimesheetHandler_EditCell_SessionNotFound(t *testing.T) {
	t.Parallel()

	router, _ := newTimesheetTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, editCellRequest("no-such-session", map[string]interface{}{
		"date":         "2025-06-10",
		"work_type_id": "wt-drilling",
		"hours":        "1",
	}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTimesheetHandler_Save_NothingToSave(t *testing.T) {
	t.Parallel()

	router, sessionID := newTimesheetTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/timesheet-sessions/"+sessionID+"/save", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "nothing to save", resp.Message)
}
