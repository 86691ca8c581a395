package http

import (
	"encoding/json"
	"net/http"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/service"
	"github.com/faganglass/inventory-auth/pkg/httpx"
	"github.com/faganglass/inventory-auth/pkg/slogx"
)

type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	CreatorUsername string `json:"creator_username"`
}

type ListUsersResponse struct {
	Users []domain.UserSummary `json:"users"`
}

type UsersHandler struct {
	AccountService *service.AccountService
}

// HandleCreate handles secretary account creation. The service decides
// whether the creator is allowed to do this; the handler only shuttles
// the request through.
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, domain.Failure("Invalid request body"))
		return
	}

	resp, err := h.AccountService.CreateSecretary(ctx, req.Username, req.Password, req.CreatorUsername)
	if err != nil {
		log.Error("create secretary failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, domain.Failure("Internal server error"))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleList returns every account's public view in role/username order.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.AccountService.ListUsers(ctx)
	if err != nil {
		log.Error("list users failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, domain.Failure("Internal server error"))
		return
	}

	if users == nil {
		users = []domain.UserSummary{}
	}
	httpx.WriteJSON(w, http.StatusOK, ListUsersResponse{Users: users})
}
