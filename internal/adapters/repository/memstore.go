package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/pkg/metrics"
)

// MemStore is an immutable, in-memory Store built once at startup.
type MemStore struct {
	players []model.Player
	matches []model.Match

	playerIdx map[int]int
	matchIdx  map[int]int
}

// Compile-time check.
var _ Store = (*MemStore)(nil)

// NewMemStore validates and indexes the catalog. Without options it holds
// the seed data.
func NewMemStore(opts ...Option) (*MemStore, error) {
	s := &MemStore{
		players: SeedPlayers(),
		matches: SeedMatches(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.players = clonePlayers(s.players)
	s.matches = cloneMatches(s.matches)
	slices.SortFunc(s.players, func(a, b model.Player) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(s.matches, func(a, b model.Match) int { return cmp.Compare(a.ID, b.ID) })

	s.playerIdx = make(map[int]int, len(s.players))
	for i, p := range s.players {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.playerIdx[p.ID]; dup {
			return nil, fmt.Errorf("%w: player %d", ErrDuplicateID, p.ID)
		}
		s.playerIdx[p.ID] = i
	}

	s.matchIdx = make(map[int]int, len(s.matches))
	for i, m := range s.matches {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.matchIdx[m.ID]; dup {
			return nil, fmt.Errorf("%w: match %d", ErrDuplicateID, m.ID)
		}
		s.matchIdx[m.ID] = i
	}

	metrics.UpdateCatalogSize(len(s.players), len(s.matches))
	return s, nil
}

// Players returns a copy of every player.
func (s *MemStore) Players(_ context.Context) ([]model.Player, error) {
	return clonePlayers(s.players), nil
}

// Player returns a copy of one player.
func (s *MemStore) Player(_ context.Context, id int) (model.Player, error) {
	i, ok := s.playerIdx[id]
	if !ok {
		metrics.RecordLookupMiss("player")
		return model.Player{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return s.players[i].Clone(), nil
}

// Matches returns a copy of every match.
func (s *MemStore) Matches(_ context.Context) ([]model.Match, error) {
	return cloneMatches(s.matches), nil
}

// Match returns a copy of one match.
func (s *MemStore) Match(_ context.Context, id int) (model.Match, error) {
	i, ok := s.matchIdx[id]
	if !ok {
		metrics.RecordLookupMiss("match")
		return model.Match{}, fmt.Errorf("%w: %d", ErrMatchNotFound, id)
	}
	return s.matches[i].Clone(), nil
}

// Count returns the catalog size.
func (s *MemStore) Count(_ context.Context) (players, matches int) {
	return len(s.players), len(s.matches)
}

func clonePlayers(in []model.Player) []model.Player {
	out := make([]model.Player, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneMatches(in []model.Match) []model.Match {
	out := make([]model.Match, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}
