package http

import (
	"encoding/json"
	"net/http"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/service"
	"github.com/faganglass/inventory-auth/pkg/httpx"
	"github.com/faganglass/inventory-auth/pkg/slogx"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles the login endpoint. Business failures (unknown user,
// wrong password) still come back as 200 with success=false; only
// infrastructure failures map to 500.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, domain.Failure("Invalid request body"))
		return
	}

	resp, err := h.AccountService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Error("login failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, domain.Failure("Internal server error"))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
