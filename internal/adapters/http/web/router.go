// Package web serves the server-rendered scouting views.
package web

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/okian/scoutboard/internal/adapters/http/api"
	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
	"github.com/okian/scoutboard/pkg/logger"
)

// Scout is the read side the views are built from.
type Scout interface {
	Players(ctx context.Context) ([]model.Player, error)
	ListPlayers(ctx context.Context, search string, sort types.Sort) (service.PlayerList, error)
	Profile(ctx context.Context, id int) (service.PlayerProfile, error)
	Compare(ctx context.Context, first, second int) (scouting.Comparison, error)
	Squad(ctx context.Context, q types.Query) (service.SquadView, error)
	Matches(ctx context.Context) ([]model.Match, error)
	Match(ctx context.Context, id int, tab types.EventTab) (service.MatchView, error)
}

// Register attaches the HTML views and the catch-all not-found page to r.
func Register(r chi.Router, scout Scout, rnd *render.Render, log logger.Logger) {
	if r == nil {
		panic("router is nil")
	}
	if log == nil {
		log = logger.Named("web")
	}
	v := &views{scout: scout, render: rnd, log: log}

	r.With(api.Instrument("player_list")).Get("/", v.playerList)
	r.With(api.Instrument("player_profile")).Get("/player/{id}", v.playerProfile)
	r.With(api.Instrument("comparison")).Get("/comparison", v.comparison)
	r.With(api.Instrument("match_tracker")).Get("/match-tracker", v.matchTracker)
	r.With(api.Instrument("squad")).Get("/squad", v.squad)

	r.NotFound(v.notFound)
}
