package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/types"
)

// MatchesDependencies defines the interface for match reads.
type MatchesDependencies interface {
	Matches(ctx context.Context) ([]model.Match, error)
	Match(ctx context.Context, id int, tab types.EventTab) (service.MatchView, error)
}

// MatchesHandler handles match requests.
type MatchesHandler struct {
	deps MatchesDependencies
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchesDependencies) *MatchesHandler {
	return &MatchesHandler{deps: deps}
}

// HandleList handles GET /api/matches requests.
func (h *MatchesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_matches"
	matches, err := h.deps.Matches(r.Context())
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// HandleGet handles GET /api/matches/{id}?tab= requests.
func (h *MatchesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_match"
	id, err := parseID(op, "id", chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	tab, ok := types.ParseEventTab(r.URL.Query().Get("tab"))
	if !ok {
		writeFailure(w, NewKind(op, ErrBadRequest, "unknown tab %q", r.URL.Query().Get("tab")))
		return
	}

	v, err := h.deps.Match(r.Context(), id, tab)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, v)
}
