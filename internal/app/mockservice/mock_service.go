// Package mockservice provides a testify mock of the scouting service for
// handler tests.
package mockservice

import (
	"context"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
	"github.com/stretchr/testify/mock"
)

type S struct {
	mock.Mock
}

func (s *S) Players(ctx context.Context) ([]model.Player, error) {
	args := s.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (s *S) ListPlayers(ctx context.Context, search string, sort types.Sort) (service.PlayerList, error) {
	args := s.Called(ctx, search, sort)
	return args.Get(0).(service.PlayerList), args.Error(1)
}

func (s *S) Profile(ctx context.Context, id int) (service.PlayerProfile, error) {
	args := s.Called(ctx, id)
	return args.Get(0).(service.PlayerProfile), args.Error(1)
}

func (s *S) Compare(ctx context.Context, first, second int) (scouting.Comparison, error) {
	args := s.Called(ctx, first, second)
	return args.Get(0).(scouting.Comparison), args.Error(1)
}

func (s *S) Squad(ctx context.Context, q types.Query) (service.SquadView, error) {
	args := s.Called(ctx, q)
	return args.Get(0).(service.SquadView), args.Error(1)
}

func (s *S) Matches(ctx context.Context) ([]model.Match, error) {
	args := s.Called(ctx)

	var res []model.Match
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Match)
	}

	return res, args.Error(1)
}

func (s *S) Match(ctx context.Context, id int, tab types.EventTab) (service.MatchView, error) {
	args := s.Called(ctx, id, tab)
	return args.Get(0).(service.MatchView), args.Error(1)
}

func (s *S) GetStats() map[string]interface{} {
	args := s.Called()

	var res map[string]interface{}
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]interface{})
	}

	return res
}
