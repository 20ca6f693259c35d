package http

import (
	"net/http"

	"github.com/fleetworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/fleetworks/timesheet-backend-go/internal/service/equipment"
)

type EquipmentHandler struct {
	service equipment.EquipmentService
}

func NewEquipmentHandler(service equipment.EquipmentService) EquipmentHandler {
	return EquipmentHandler{service: service}
}

// List returns the equipment units a timesheet can be opened for.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
