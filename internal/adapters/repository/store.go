// Package repository defines the read-only catalog of players and matches.
package repository

import (
	"context"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Store provides read access to the scouting catalog. Implementations hand
// out copies; nothing a caller does to a returned value reaches the store.
type Store interface {
	// Players returns every player ordered by ID.
	Players(ctx context.Context) ([]model.Player, error)

	// Player returns one player or ErrPlayerNotFound.
	Player(ctx context.Context, id int) (model.Player, error)

	// Matches returns every match ordered by ID.
	Matches(ctx context.Context) ([]model.Match, error)

	// Match returns one match or ErrMatchNotFound.
	Match(ctx context.Context, id int) (model.Match, error)

	// Count returns the number of players and matches held.
	Count(ctx context.Context) (players, matches int)
}
