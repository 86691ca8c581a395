package http

import (
	"encoding/json"
	"net/http"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/service"
	"github.com/faganglass/inventory-auth/pkg/httpx"
	"github.com/faganglass/inventory-auth/pkg/slogx"
)

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordHandler struct {
	AccountService *service.AccountService
}

func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := r.PathValue("id")

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, domain.Failure("Invalid request body"))
		return
	}

	resp, err := h.AccountService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)
	if err != nil {
		log.Error("change password failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, domain.Failure("Internal server error"))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
