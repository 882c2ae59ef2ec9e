package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openplay/courtqueue/internal/api/handler"
	"github.com/openplay/courtqueue/internal/api/middleware"
	"github.com/openplay/courtqueue/internal/services/auth"
	"github.com/openplay/courtqueue/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SessionController *session.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	rosterHandler := handler.NewRosterHandler(cfg.SessionController)

	// Create middleware
	pinMiddleware := middleware.PIN(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session view
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)

	// Player routes
	api.HandleFunc("/session/players", sessionHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/session/players/{id}", sessionHandler.DeletePlayer).Methods(http.MethodDelete)
	api.HandleFunc("/session/players/{id}/pause", sessionHandler.PausePlayer).Methods(http.MethodPost)
	api.HandleFunc("/session/players/{id}/resume", sessionHandler.ResumePlayer).Methods(http.MethodPost)

	// Court routes. The reorder route registers before the numbered routes
	// so "reorder" never parses as a court number.
	api.HandleFunc("/session/courts/reorder", sessionHandler.ReorderCourts).Methods(http.MethodPost)
	api.HandleFunc("/session/courts", sessionHandler.AddCourt).Methods(http.MethodPost)
	api.HandleFunc("/session/courts/{number:[0-9]+}", sessionHandler.RemoveCourt).Methods(http.MethodDelete)
	api.HandleFunc("/session/courts/{number:[0-9]+}/complete", sessionHandler.CompleteGame).Methods(http.MethodPost)

	// Drag swap
	api.HandleFunc("/session/swap", sessionHandler.Swap).Methods(http.MethodPost)

	// Roster upload
	api.HandleFunc("/session/roster", rosterHandler.Upload).Methods(http.MethodPost)

	// PIN-gated routes
	gated := api.NewRoute().Subrouter()
	gated.Use(pinMiddleware)
	gated.HandleFunc("/session/export", rosterHandler.Export).Methods(http.MethodGet)
	gated.HandleFunc("/session", sessionHandler.Terminate).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
