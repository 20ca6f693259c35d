package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/fleetworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler struct {
	service timesheet.Service
}

func NewTimesheetHandler(service timesheet.Service) TimesheetHandler {
	return TimesheetHandler{service: service}
}

// OpenSession loads the full-year matrix for one equipment unit and opens
// an editing session over it.
func (h *TimesheetHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "equipmentID")

	var req timesheet.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.OpenSession(r.Context(), equipmentID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet session opened", resp)
}

// GetView projects the session's matrix onto the requested window.
func (h *TimesheetHandler) GetView(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	segment, _ := strconv.Atoi(r.URL.Query().Get("segment"))
	q := timesheet.ViewQuery{
		Mode:    r.URL.Query().Get("mode"),
		Month:   month,
		Segment: segment,
	}

	resp, err := h.service.GetView(r.Context(), sessionID, q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EditCell applies one cell edit; a day-ceiling violation comes back as a
// 422 carrying the current total and the attempted delta.
func (h *TimesheetHandler) EditCell(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req timesheet.EditCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.EditCell(r.Context(), sessionID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ClearCell zeroes a cell and queues its backing record for deletion.
func (h *TimesheetHandler) ClearCell(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req timesheet.ClearCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.ClearCell(r.Context(), sessionID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AddWorkType attaches a new work-type column to the session's matrix.
func (h *TimesheetHandler) AddWorkType(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req timesheet.AddWorkTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddWorkType(r.Context(), sessionID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work type added", nil)
}

// Save runs the batch-save engine for the session.
func (h *TimesheetHandler) Save(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	resp, err := h.service.Save(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, resp.Message, resp)
}

// CloseSession discards the session with its unsaved edits.
func (h *TimesheetHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.service.CloseSession(r.Context(), sessionID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet session closed", nil)
}
