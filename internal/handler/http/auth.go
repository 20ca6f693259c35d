package http

import (
	"encoding/json"
	"net/http"

	domainAuth "github.com/fleetworks/timesheet-backend-go/internal/domain/auth"
	"github.com/fleetworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/fleetworks/timesheet-backend-go/internal/service/auth"
)

type AuthHandler struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domainAuth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
