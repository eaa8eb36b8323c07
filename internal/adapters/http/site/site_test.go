package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given the static site", t, func() {
		ctx := context.Background()
		r := chi.NewRouter()
		Register(ctx, r)

		Convey("When the stylesheet is requested", func() {
			req := httptest.NewRequest(http.MethodGet, "/static/app.css", http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			Convey("Then it should be served with a cache header", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
				So(w.Header().Get("Cache-Control"), ShouldEqual, cacheControl)
				So(w.Body.String(), ShouldContainSubstring, "--team-primary")
			})
		})

		Convey("When the placeholder photo is requested", func() {
			req := httptest.NewRequest(http.MethodGet, "/static/placeholder.svg", http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			Convey("Then it should be served as SVG", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "image/svg+xml")
			})
		})

		Convey("When a missing asset is requested", func() {
			req := httptest.NewRequest(http.MethodGet, "/static/missing.png", http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestSiteHandlerWithNilRouter(t *testing.T) {
	Convey("Given a nil router", t, func() {
		Convey("Then Register should panic", func() {
			So(func() { Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
