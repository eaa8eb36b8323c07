package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/types"
)

// PlayersDependencies defines the interface for player reads.
type PlayersDependencies interface {
	ListPlayers(ctx context.Context, search string, sort types.Sort) (service.PlayerList, error)
	Profile(ctx context.Context, id int) (service.PlayerProfile, error)
}

// PlayersHandler handles player list and profile requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleList handles GET /api/players?q=&sort=&dir= requests.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	q := r.URL.Query()

	sort, ok := types.ParseSort(q.Get("sort"), q.Get("dir"))
	if !ok {
		writeFailure(w, NewKind(op, ErrBadRequest, "unknown sort %q/%q", q.Get("sort"), q.Get("dir")))
		return
	}

	list, err := h.deps.ListPlayers(r.Context(), q.Get("q"), sort)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleGet handles GET /api/players/{id} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	id, err := parseID(op, "id", chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, err)
		return
	}

	p, err := h.deps.Profile(r.Context(), id)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}
