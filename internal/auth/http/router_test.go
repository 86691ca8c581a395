package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/service"
	"github.com/faganglass/inventory-auth/internal/auth/store"
	"github.com/faganglass/inventory-auth/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	bootstrap := &service.BootstrapService{
		Store: st,
		Admins: []service.ReservedAdmin{
			{Username: "fagan@admin_1", Password: "fagan_glass"},
			{Username: "fagan@admin_2", Password: "fagan_aluminum"},
		},
	}
	require.NoError(t, bootstrap.EnsureReservedAdmins(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter("test", st, logger)
	router.AccountService = &service.AccountService{Store: st}
	router.ApplyRoutes()

	return router, st
}

func doJSON(t *testing.T, router *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeAuthResponse(t *testing.T, rec *httptest.ResponseRecorder) domain.AuthResponse {
	t.Helper()

	var resp domain.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/login", LoginRequest{
			Username: "fagan@admin_1",
			Password: "fagan_glass",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeAuthResponse(t, rec)
		require.True(t, resp.Success)
		require.Equal(t, domain.RoleAdmin, resp.User.Role)
	})

	t.Run("bad credentials still 200", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/login", LoginRequest{
			Username: "fagan@admin_1",
			Password: "wrong",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeAuthResponse(t, rec)
		require.False(t, resp.Success)
		require.Equal(t, "Invalid credentials", resp.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("response never carries a password field", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/login", LoginRequest{
			Username: "fagan@admin_1",
			Password: "fagan_glass",
		})
		require.NotContains(t, rec.Body.String(), "password")
	})
}

func TestUsersEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	// Create a secretary as an admin.
	rec := doJSON(t, router, http.MethodPost, "/v1/users", CreateUserRequest{
		Username:        "alice",
		Password:        "pw1",
		CreatorUsername: "fagan@admin_1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeAuthResponse(t, rec)
	require.True(t, created.Success)
	require.Equal(t, domain.RoleSecretary, created.User.Role)

	// Listing includes the two reserved admins plus alice, in order.
	rec = doJSON(t, router, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list ListUsersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Users, 3)
	require.Equal(t, "fagan@admin_1", list.Users[0].Username)
	require.Equal(t, "fagan@admin_2", list.Users[1].Username)
	require.Equal(t, "alice", list.Users[2].Username)

	// Rotate alice's password.
	rec = doJSON(t, router, http.MethodPost, "/v1/users/"+created.User.ID+"/password",
		ChangePasswordRequest{OldPassword: "pw1", NewPassword: "pw2"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeAuthResponse(t, rec).Success)

	// Deactivate her account.
	rec = doJSON(t, router, http.MethodPost, "/v1/users/"+created.User.ID+"/deactivate",
		DeactivateRequest{AdminUsername: "fagan@admin_2"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeAuthResponse(t, rec).Success)

	// Login is now rejected.
	rec = doJSON(t, router, http.MethodPost, "/v1/login", LoginRequest{
		Username: "alice",
		Password: "pw2",
	})
	resp := decodeAuthResponse(t, rec)
	require.False(t, resp.Success)
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Database)
}
