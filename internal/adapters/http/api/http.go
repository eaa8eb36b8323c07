// Package api declares the JSON API contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ListPlayers(ctx context.Context, search string, sort types.Sort) (service.PlayerList, error)
	Profile(ctx context.Context, id int) (service.PlayerProfile, error)
	Compare(ctx context.Context, first, second int) (scouting.Comparison, error)
	Squad(ctx context.Context, q types.Query) (service.SquadView, error)
	Matches(ctx context.Context) ([]model.Match, error)
	Match(ctx context.Context, id int, tab types.EventTab) (service.MatchView, error)
}

// Server wires HTTP routes for the JSON API and the ops endpoints.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	playersHandler    *PlayersHandler
	squadHandler      *SquadHandler
	comparisonHandler *ComparisonHandler
	matchesHandler    *MatchesHandler

	allowedOrigins []string
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithAllowedOrigins sets the origins allowed to call /api from a browser.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		playersHandler:    NewPlayersHandler(deps),
		squadHandler:      NewSquadHandler(deps),
		comparisonHandler: NewComparisonHandler(deps),
		matchesHandler:    NewMatchesHandler(deps),
		allowedOrigins:    []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches the ops endpoints and the /api subtree to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
		}).Handler)

		r.Get("/players", MetricsMiddleware(s.playersHandler.HandleList, "api_players"))
		r.Get("/players/{id}", MetricsMiddleware(s.playersHandler.HandleGet, "api_player"))
		r.Get("/squad", MetricsMiddleware(s.squadHandler.HandleSquad, "api_squad"))
		r.Get("/comparison", MetricsMiddleware(s.comparisonHandler.HandleCompare, "api_comparison"))
		r.Get("/matches", MetricsMiddleware(s.matchesHandler.HandleList, "api_matches"))
		r.Get("/matches/{id}", MetricsMiddleware(s.matchesHandler.HandleGet, "api_match"))

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not_found", nil)
		})
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure translates an upstream error into a JSON error response.
func writeFailure(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeError(w, status, code, err)
}

// parseID reads a positive integer from a path or query value.
func parseID(op, name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewKind(op, ErrBadRequest, "missing %s", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, NewKind(op, ErrBadRequest, "%s must be a positive integer", name)
	}
	return id, nil
}
