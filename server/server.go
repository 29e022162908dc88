// Package server is the dashboard HTTP API. Routes are guarded by the resolved auth state:
// a request waits while the state is resolving, then is allowed, sent to sign-in or forbidden.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/postgen/pkg/admin"
	"github.com/umputun/postgen/pkg/auth"
	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/feed"
	"github.com/umputun/postgen/pkg/identity"
	"github.com/umputun/postgen/pkg/ingest"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/identity.go -pkg mocks -skip-ensure -fmt goimports . Identity
//go:generate moq -out mocks/auth_state.go -pkg mocks -skip-ensure -fmt goimports . AuthState
//go:generate moq -out mocks/coordinator.go -pkg mocks -skip-ensure -fmt goimports . Coordinator
//go:generate moq -out mocks/admin_panel.go -pkg mocks -skip-ensure -fmt goimports . AdminPanel
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// fallback routes of the dashboard client
const (
	loginRoute     = "/login"
	dashboardRoute = "/dashboard"
)

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	identity    Identity
	auth        AuthState
	coordinator Coordinator
	admin       AdminPanel
	store       Store
	generator   *feed.Generator
	version     string
	debug       bool

	resolveTimeout time.Duration
	ingestTimeout  time.Duration

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	baseCtx    context.Context
	loaded     bool // dashboard load started for this process
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Identity is the identity provider used by the auth endpoints
type Identity interface {
	SignUp(ctx context.Context, email, password, confirm string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	SignOut(ctx context.Context) error
	Refresh(ctx context.Context) (domain.Session, error)
}

// AuthState gives the resolved auth state
type AuthState interface {
	State() domain.AuthState
	Wait(ctx context.Context) (domain.AuthState, error)
	Changes() <-chan struct{}
}

// Coordinator is the ingestion workflow behind the dashboard
type Coordinator interface {
	Load(ctx context.Context) error
	ListFeeds(ctx context.Context) ([]domain.Feed, error)
	AddFeed(ctx context.Context, feedURL string) (*domain.Feed, error)
	RemoveFeed(ctx context.Context, id int64) error
	CheckScanStatus(ctx context.Context) (bool, error)
	RunIngestion(ctx context.Context) (*domain.IngestionRun, error)
	SaveContext(ctx context.Context, value string) error
	Context(ctx context.Context) (string, error)
	RefreshPosts(ctx context.Context) ([]domain.Post, error)
	Snapshot(ctx context.Context) (ingest.Snapshot, error)
}

// AdminPanel is the admin workflow
type AdminPanel interface {
	LoadUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ReloadArticles(ctx context.Context) error
	Snapshot(ctx context.Context) (admin.Snapshot, error)
}

// Store is the data store health check
type Store interface {
	Ping(ctx context.Context) error
}

// Deps are the components the server works with
type Deps struct {
	Identity       Identity
	Auth           AuthState
	Coordinator    Coordinator
	Admin          AdminPanel
	Store          Store
	Generator      *feed.Generator
	ResolveTimeout time.Duration // how long a request waits for auth resolution, 10s if not set
	IngestTimeout  time.Duration // deadline of requests waiting for an ingestion run, 5m if not set
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	if deps.ResolveTimeout <= 0 {
		deps.ResolveTimeout = 10 * time.Second
	}
	if deps.IngestTimeout <= 0 {
		deps.IngestTimeout = 5 * time.Minute
	}
	s := &Server{
		config:         cfg,
		identity:       deps.Identity,
		auth:           deps.Auth,
		coordinator:    deps.Coordinator,
		admin:          deps.Admin,
		store:          deps.Store,
		generator:      deps.Generator,
		resolveTimeout: deps.ResolveTimeout,
		ingestTimeout:  deps.IngestTimeout,
		version:        version,
		debug:          debug,
		router:         routegroup.New(http.NewServeMux()),
		baseCtx:        context.Background(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.baseCtx = ctx
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("postgen", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /auth/signup", s.signUpHandler)
		r.HandleFunc("POST /auth/signin", s.signInHandler)
		r.HandleFunc("GET /auth/state", s.authStateHandler)

		r.Group().Route(func(user *routegroup.Bundle) {
			user.Use(s.guard(domain.RequireAuthenticated))
			user.HandleFunc("POST /auth/signout", s.signOutHandler)
			user.HandleFunc("POST /auth/refresh", s.refreshHandler)
			user.HandleFunc("GET /dashboard", s.dashboardHandler)
			user.HandleFunc("GET /feeds", s.listFeedsHandler)
			user.HandleFunc("POST /feeds", s.addFeedHandler)
			user.HandleFunc("DELETE /feeds/{id}", s.removeFeedHandler)
			user.HandleFunc("GET /feeds/opml", s.opmlHandler)
			user.HandleFunc("GET /scan", s.scanStatusHandler)
			user.HandleFunc("POST /scan", s.runIngestionHandler)
			user.HandleFunc("GET /context", s.getContextHandler)
			user.HandleFunc("PUT /context", s.saveContextHandler)
			user.HandleFunc("POST /posts/refresh", s.refreshPostsHandler)
		})

		r.Group().Route(func(adm *routegroup.Bundle) {
			adm.Use(s.guard(domain.RequireAdmin))
			adm.HandleFunc("GET /admin", s.adminSnapshotHandler)
			adm.HandleFunc("GET /admin/users", s.listUsersHandler)
			adm.HandleFunc("DELETE /admin/users/{id}", s.deleteUserHandler)
			adm.HandleFunc("POST /admin/reload", s.reloadArticlesHandler)
		})
	})

	s.router.Group().Route(func(r *routegroup.Bundle) {
		r.Use(s.guard(domain.RequireAuthenticated))
		r.HandleFunc("GET /rss/posts", s.rssHandler)
	})
}

// guard is the access middleware. It waits for auth resolution and responds with 401 or 403
// and the fallback route if the requirement isn't met. Only the request holding the session
// token gets the session's access.
func (s *Server) guard(req domain.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), s.resolveTimeout)
			defer cancel()
			st, err := s.auth.Wait(ctx)
			if err != nil {
				lgr.Printf("[WARN] auth state not resolved for %s: %v", r.URL.Path, err)
				renderError(w, r, errors.New("authentication state is not resolved yet"), http.StatusServiceUnavailable)
				return
			}

			if view := stateFor(r, st); view != st {
				lgr.Printf("[DEBUG] request to %s without the session token", r.URL.Path)
				st = view
			}

			switch auth.Decide(st, req) {
			case domain.DecisionUnauthenticated:
				renderJSON(w, r, http.StatusUnauthorized, map[string]string{"error": "not authenticated", "redirect": loginRoute})
				return
			case domain.DecisionForbidden:
				lgr.Printf("[INFO] access to %s denied for %s, role %s", r.URL.Path, st.Session.Email, st.Role)
				renderJSON(w, r, http.StatusForbidden, map[string]string{"error": "forbidden", "redirect": dashboardRoute})
				return
			case domain.DecisionPending:
				renderError(w, r, errors.New("authentication state is not resolved yet"), http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusHandler returns server status, 503 if the data store doesn't respond
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	code := http.StatusOK
	if s.store != nil {
		status["db"] = "ok"
		if err := s.store.Ping(r.Context()); err != nil {
			lgr.Printf("[WARN] data store ping failed: %v", err)
			status["status"], status["db"] = "degraded", err.Error()
			code = http.StatusServiceUnavailable
		}
	}
	renderJSON(w, r, code, status)
}

// extendDeadlines lets a request waiting for an ingestion run outlive the server timeouts.
// The read deadline matters too, once it passes the request context is canceled.
func (s *Server) extendDeadlines(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	deadline := time.Now().Add(s.ingestTimeout)
	if err := rc.SetReadDeadline(deadline); err != nil {
		lgr.Printf("[DEBUG] can't extend read deadline for %s: %v", r.URL.Path, err)
	}
	if err := rc.SetWriteDeadline(deadline); err != nil {
		lgr.Printf("[DEBUG] can't extend write deadline for %s: %v", r.URL.Path, err)
	}
}

// errorCode maps the error taxonomy to http status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, identity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrLookupAbsent):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidationRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransport):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrProvider):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a JSON request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
