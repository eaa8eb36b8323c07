// Package squad filters and orders player lists for the list and squad views.
package squad

import (
	"cmp"
	"slices"
	"strings"

	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
)

// Matches reports whether the search text hits the player's name, club or
// nationality. Blank search matches everyone.
func Matches(p model.Player, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Club), search) ||
		strings.Contains(strings.ToLower(p.Nationality), search)
}

// Filter returns the players that pass every part of q, in input order.
func Filter(players []model.Player, q types.Query) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if !Matches(p, q.Search) || !q.Position.Matches(p.Position) || !q.Value.Contains(p.MarketValue) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a sorted copy. Equal keys are ordered by ID so that a
// descending sort is the exact reverse of the ascending one.
func Sort(players []model.Player, s types.Sort) []model.Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b model.Player) int {
		c := compareBy(a, b, s.Key)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if s.Dir == types.Desc {
			return -c
		}
		return c
	})
	return out
}

func compareBy(a, b model.Player, key types.SortKey) int {
	switch key {
	case types.SortName:
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case types.SortForm:
		return cmp.Compare(scouting.AverageForm(a.Form), scouting.AverageForm(b.Form))
	case types.SortAge:
		return cmp.Compare(a.Age, b.Age)
	default:
		return cmp.Compare(a.MarketValue, b.MarketValue)
	}
}
