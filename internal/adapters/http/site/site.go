// Package site serves the embedded stylesheet and images.
package site

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/scoutboard/internal/adapters/http/api"
)

const cacheControl = "public, max-age=3600"

// Register mounts the embedded assets under /static/ on r.
func Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}
	h := NewAssetsHandler()
	r.Get("/static/*", api.MetricsMiddleware(h.HandleAsset, "static"))
}

// AssetsHandler serves files from the embedded static directory.
type AssetsHandler struct {
	files http.Handler
}

// NewAssetsHandler creates a new assets handler.
func NewAssetsHandler() *AssetsHandler {
	return &AssetsHandler{files: http.StripPrefix("/static/", http.FileServer(FS()))}
}

// HandleAsset handles GET /static/* requests.
func (h *AssetsHandler) HandleAsset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", cacheControl)
	h.files.ServeHTTP(w, r)
}
