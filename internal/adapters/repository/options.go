package repository

import "github.com/okian/scoutboard/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithPlayers replaces the seeded players.
func WithPlayers(players []model.Player) Option {
	return func(s *MemStore) {
		s.players = players
	}
}

// WithMatches replaces the seeded matches.
func WithMatches(matches []model.Match) Option {
	return func(s *MemStore) {
		s.matches = matches
	}
}
