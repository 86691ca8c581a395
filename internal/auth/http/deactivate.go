package http

import (
	"encoding/json"
	"net/http"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/service"
	"github.com/faganglass/inventory-auth/pkg/httpx"
	"github.com/faganglass/inventory-auth/pkg/slogx"
)

type DeactivateRequest struct {
	AdminUsername string `json:"admin_username"`
}

type DeactivateHandler struct {
	AccountService *service.AccountService
}

func (h *DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := r.PathValue("id")

	var req DeactivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, domain.Failure("Invalid request body"))
		return
	}

	resp, err := h.AccountService.DeactivateSecretary(ctx, userID, req.AdminUsername)
	if err != nil {
		log.Error("deactivate secretary failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, domain.Failure("Internal server error"))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
