package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	repository "github.com/okian/scoutboard/internal/adapters/repository"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/types"
	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

const (
	colorFirst  = "#1A365D"
	colorSecond = "#38B2AC"
)

type views struct {
	scout  Scout
	render *render.Render
	log    logger.Logger
}

func (v *views) html(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	metrics.RecordPageRender(name, status)
	if err := v.render.HTML(w, status, name, data); err != nil {
		v.log.Error(r.Context(), "render failed", logger.String("view", name), logger.Error(err))
	}
}

// fail renders the 404 page for lookups that missed and the 500 page otherwise.
func (v *views) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrPlayerNotFound) || errors.Is(err, repository.ErrMatchNotFound) {
		v.html(w, r, http.StatusNotFound, "404", pageNotFound())
		return
	}
	v.log.Error(r.Context(), "view failed", logger.String("path", r.URL.Path), logger.Error(err))
	v.html(w, r, http.StatusInternalServerError, "500", serverErrorMessage)
}

// degraded logs a query value the view ignored.
func (v *views) degraded(r *http.Request, param, value string) {
	v.log.Debug(r.Context(), "ignoring query value",
		logger.String("path", r.URL.Path),
		logger.String("param", param),
		logger.String("value", value),
	)
}

func (v *views) notFound(w http.ResponseWriter, r *http.Request) {
	v.html(w, r, http.StatusNotFound, "404", pageNotFound())
}

func (v *views) playerList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sort, ok := types.ParseSort(q.Get("sort"), q.Get("dir"))
	if !ok {
		v.degraded(r, "sort", q.Get("sort")+"/"+q.Get("dir"))
	}

	list, err := v.scout.ListPlayers(r.Context(), q.Get("q"), sort)
	if err != nil {
		v.fail(w, r, err)
		return
	}
	v.html(w, r, http.StatusOK, "player_list", newListPage(list))
}

func (v *views) playerProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		v.html(w, r, http.StatusNotFound, "404", playerNotFound())
		return
	}

	p, err := v.scout.Profile(r.Context(), id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		v.html(w, r, http.StatusNotFound, "404", playerNotFound())
		return
	}
	if err != nil {
		v.fail(w, r, err)
		return
	}

	v.html(w, r, http.StatusOK, "player", profilePage{
		PlayerProfile: p,
		Radar:         newRadar(p.Stats, colorSecond),
		Form:          newFormChart(p.Form),
	})
}

func (v *views) comparison(w http.ResponseWriter, r *http.Request) {
	players, err := v.scout.Players(r.Context())
	if err != nil {
		v.fail(w, r, err)
		return
	}

	page := comparisonPage{Players: players}
	page.First = v.selected(r, "player1", players)
	page.Second = v.selected(r, "player2", players)
	if page.Second != 0 && page.Second == page.First {
		v.degraded(r, "player2", strconv.Itoa(page.Second))
		page.Second = 0
	}

	if page.First != 0 && page.Second != 0 {
		c, err := v.scout.Compare(r.Context(), page.First, page.Second)
		if err != nil {
			v.fail(w, r, err)
			return
		}
		page.Comparison = &c
		page.RadarA = newRadar(c.A.Stats, colorFirst)
		page.RadarB = newRadar(c.B.Stats, colorSecond)
		page.Report = scoutReport(c)
	}
	v.html(w, r, http.StatusOK, "comparison", page)
}

// selected returns the player id named by a query parameter, or 0 when it
// is absent or names nobody.
func (v *views) selected(r *http.Request, param string, players []model.Player) int {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return 0
	}
	id, err := strconv.Atoi(raw)
	if err == nil {
		for _, p := range players {
			if p.ID == id {
				return id
			}
		}
	}
	v.degraded(r, param, raw)
	return 0
}

func (v *views) matchTracker(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	matches, err := v.scout.Matches(r.Context())
	if err != nil {
		v.fail(w, r, err)
		return
	}
	if len(matches) == 0 {
		v.html(w, r, http.StatusNotFound, "404", pageNotFound())
		return
	}

	id := matches[0].ID
	if raw := q.Get("match"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil || !hasMatch(matches, n):
			v.degraded(r, "match", raw)
		default:
			id = n
		}
	}
	tab, ok := types.ParseEventTab(q.Get("tab"))
	if !ok {
		v.degraded(r, "tab", q.Get("tab"))
	}

	m, err := v.scout.Match(r.Context(), id, tab)
	if err != nil {
		v.fail(w, r, err)
		return
	}
	v.html(w, r, http.StatusOK, "match_tracker", newMatchPage(matches, m))
}

func hasMatch(matches []model.Match, id int) bool {
	for _, m := range matches {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (v *views) squad(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := types.Query{Search: q.Get("q")}

	var ok bool
	if query.Position, ok = types.ParsePositionFilter(q.Get("position")); !ok {
		v.degraded(r, "position", q.Get("position"))
	}
	if query.Value, ok = types.ParseValueBucket(q.Get("value")); !ok {
		v.degraded(r, "value", q.Get("value"))
	}

	sv, err := v.scout.Squad(r.Context(), query)
	if err != nil {
		v.fail(w, r, err)
		return
	}
	v.html(w, r, http.StatusOK, "squad", newSquadPage(sv))
}

// link builds a relative URL with the non-empty params set.
func link(path string, params ...string) string {
	values := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		if params[i+1] != "" {
			values.Set(params[i], params[i+1])
		}
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
