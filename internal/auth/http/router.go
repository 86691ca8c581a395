package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/faganglass/inventory-auth/internal/auth/service"
	"github.com/faganglass/inventory-auth/internal/auth/store"
	"github.com/faganglass/inventory-auth/pkg/httpx"
	"github.com/faganglass/inventory-auth/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers. It is the
// command-dispatch boundary between the desktop shell and the core: it
// decodes requests into the service's input types and serializes its
// responses, nothing more.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	login := &LoginHandler{AccountService: r.AccountService}
	users := &UsersHandler{AccountService: r.AccountService}
	password := &ChangePasswordHandler{AccountService: r.AccountService}
	deactivate := &DeactivateHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /v1/login", login)
	r.Mux.Handle("POST /v1/users", http.HandlerFunc(users.HandleCreate))
	r.Mux.Handle("GET /v1/users", http.HandlerFunc(users.HandleList))
	r.Mux.Handle("POST /v1/users/{id}/password", password)
	r.Mux.Handle("POST /v1/users/{id}/deactivate", deactivate)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
