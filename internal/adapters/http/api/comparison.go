package api

import (
	"context"
	"net/http"

	"github.com/okian/scoutboard/internal/domain/scouting"
)

// ComparisonDependencies defines the interface for player comparison.
type ComparisonDependencies interface {
	Compare(ctx context.Context, first, second int) (scouting.Comparison, error)
}

// ComparisonHandler handles comparison requests.
type ComparisonHandler struct {
	deps ComparisonDependencies
}

// NewComparisonHandler creates a new comparison handler.
func NewComparisonHandler(deps ComparisonDependencies) *ComparisonHandler {
	return &ComparisonHandler{deps: deps}
}

// HandleCompare handles GET /api/comparison?player1=&player2= requests.
func (h *ComparisonHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	q := r.URL.Query()

	first, err := parseID(op, "player1", q.Get("player1"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	second, err := parseID(op, "player2", q.Get("player2"))
	if err != nil {
		writeFailure(w, err)
		return
	}

	c, err := h.deps.Compare(r.Context(), first, second)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, c)
}
