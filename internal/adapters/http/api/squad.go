package api

import (
	"context"
	"net/http"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/types"
)

// SquadDependencies defines the interface for squad reads.
type SquadDependencies interface {
	Squad(ctx context.Context, q types.Query) (service.SquadView, error)
}

// SquadHandler handles squad table requests.
type SquadHandler struct {
	deps SquadDependencies
}

// NewSquadHandler creates a new squad handler.
func NewSquadHandler(deps SquadDependencies) *SquadHandler {
	return &SquadHandler{deps: deps}
}

// HandleSquad handles GET /api/squad?q=&position=&value= requests.
// Unlike the HTML view, unknown filter values are rejected.
func (h *SquadHandler) HandleSquad(w http.ResponseWriter, r *http.Request) {
	const op = "api.squad"
	values := r.URL.Query()

	position, ok := types.ParsePositionFilter(values.Get("position"))
	if !ok {
		writeFailure(w, NewKind(op, ErrBadRequest, "unknown position %q", values.Get("position")))
		return
	}
	bucket, ok := types.ParseValueBucket(values.Get("value"))
	if !ok {
		writeFailure(w, NewKind(op, ErrBadRequest, "unknown value bucket %q", values.Get("value")))
		return
	}

	view, err := h.deps.Squad(r.Context(), types.Query{
		Search:   values.Get("q"),
		Position: position,
		Value:    bucket,
	})
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, view)
}
