package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/squad"
	"github.com/okian/scoutboard/internal/domain/types"
	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

// PlayerCard is a player plus the derived form numbers every view shows.
type PlayerCard struct {
	model.Player
	AverageForm float64        `json:"average_form"`
	Trend       scouting.Trend `json:"trend"`
}

// PlayerList is the home page read model.
type PlayerList struct {
	Search  string       `json:"search"`
	Sort    types.Sort   `json:"sort"`
	Players []PlayerCard `json:"players"`
}

// PlayerProfile is the profile page read model.
type PlayerProfile struct {
	PlayerCard
	ContractYearsRemaining int `json:"contract_years_remaining"`
}

// SquadView is the squad page read model.
type SquadView struct {
	Query   types.Query      `json:"query"`
	Total   int              `json:"total"`
	Players []PlayerCard     `json:"players"`
	Alerts  []scouting.Alert `json:"alerts"`
}

// EventRow is a match event with the name of the player involved.
type EventRow struct {
	model.MatchEvent
	PlayerName string `json:"player_name"`
}

// MatchView is the match tracker read model.
type MatchView struct {
	model.Match
	Minute   int                 `json:"minute"`
	Accuracy model.Pair[float64] `json:"shot_accuracy"`
	Tab      types.EventTab      `json:"tab"`
	Feed     []EventRow          `json:"feed"`
	Focus    []PlayerCard        `json:"focus"`

	// Highlight is set only for live matches with at least one goal.
	Highlight *Highlight `json:"highlight,omitempty"`
}

// Highlight is the scout alert for the leading scorer of a live match.
type Highlight struct {
	Player PlayerCard `json:"player"`
	Goals  int        `json:"goals"`
}

func card(p model.Player) PlayerCard {
	return PlayerCard{
		Player:      p,
		AverageForm: scouting.AverageForm(p.Form),
		Trend:       scouting.FormTrend(p.Form),
	}
}

func cards(players []model.Player) []PlayerCard {
	out := make([]PlayerCard, len(players))
	for i, p := range players {
		out[i] = card(p)
	}
	return out
}

// Players returns every player ordered by ID.
func (s *Service) Players(ctx context.Context) ([]model.Player, error) {
	store, _, err := s.components()
	if err != nil {
		return nil, err
	}
	return store.Players(ctx)
}

// ListPlayers searches and sorts the catalog for the home page.
func (s *Service) ListPlayers(ctx context.Context, search string, sort types.Sort) (PlayerList, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return PlayerList{}, err
	}

	players = squad.Sort(squad.Filter(players, types.Query{Search: search}), sort)
	metrics.RecordFilterResult("player_list", len(players))

	return PlayerList{Search: search, Sort: sort, Players: cards(players)}, nil
}

// Profile returns one player with contract details.
func (s *Service) Profile(ctx context.Context, id int) (PlayerProfile, error) {
	store, _, err := s.components()
	if err != nil {
		return PlayerProfile{}, err
	}
	p, err := store.Player(ctx, id)
	if err != nil {
		return PlayerProfile{}, err
	}
	return PlayerProfile{
		PlayerCard:             card(p),
		ContractYearsRemaining: scouting.ContractYearsRemaining(p, s.Now()),
	}, nil
}

// Compare compares two players by ID.
func (s *Service) Compare(ctx context.Context, first, second int) (scouting.Comparison, error) {
	store, _, err := s.components()
	if err != nil {
		return scouting.Comparison{}, err
	}
	a, err := store.Player(ctx, first)
	if err != nil {
		return scouting.Comparison{}, err
	}
	b, err := store.Player(ctx, second)
	if err != nil {
		return scouting.Comparison{}, err
	}

	c := scouting.Compare(a, b)
	outcome := "advantage"
	if c.Tie() {
		outcome = "tie"
	}
	metrics.RecordComparison(outcome)
	s.logger.Debug(ctx, "players compared",
		logger.Int("first", first),
		logger.Int("second", second),
		logger.String("recommended", c.Recommended.String()),
	)
	return c, nil
}

// Squad filters the catalog and collects squad alerts. Alerts always cover
// the whole catalog, not only the filtered rows.
func (s *Service) Squad(ctx context.Context, q types.Query) (SquadView, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return SquadView{}, err
	}

	rows := squad.Filter(players, q)
	metrics.RecordFilterResult("squad", len(rows))

	return SquadView{
		Query:   q,
		Total:   len(players),
		Players: cards(rows),
		Alerts:  scouting.Alerts(players, s.Now()),
	}, nil
}

// Matches returns every match ordered by ID.
func (s *Service) Matches(ctx context.Context) ([]model.Match, error) {
	store, _, err := s.components()
	if err != nil {
		return nil, err
	}
	return store.Matches(ctx)
}

// Minute returns the running minute of a live match, 0 for any other.
func (s *Service) Minute(matchID int) int {
	_, tracker, err := s.components()
	if err != nil {
		return 0
	}
	return tracker.Minute(matchID)
}

// Match builds the tracker view of one match. The feed is newest first and
// limited to the tab; the focus list covers every event of the match.
func (s *Service) Match(ctx context.Context, id int, tab types.EventTab) (MatchView, error) {
	store, tracker, err := s.components()
	if err != nil {
		return MatchView{}, err
	}
	m, err := store.Match(ctx, id)
	if err != nil {
		return MatchView{}, err
	}

	v := MatchView{
		Match:    m,
		Accuracy: scouting.MatchAccuracy(m),
		Tab:      tab,
		Feed:     []EventRow{},
		Focus:    []PlayerCard{},
	}
	if m.Status == model.StatusLive {
		v.Minute = tracker.Minute(m.ID)
	}

	seen := make(map[int]int) // player id -> index in Focus
	goals := make([]int, 0, len(m.Events))
	for _, e := range m.Events {
		p, err := store.Player(ctx, e.PlayerID)
		name := p.Name
		if err != nil {
			name = "Unknown Player"
		} else {
			i, ok := seen[p.ID]
			if !ok {
				i = len(v.Focus)
				seen[p.ID] = i
				v.Focus = append(v.Focus, card(p))
				goals = append(goals, 0)
			}
			if e.Type == model.EventGoal {
				goals[i]++
			}
		}
		if tab.Includes(e.Type) {
			v.Feed = append(v.Feed, EventRow{MatchEvent: e, PlayerName: name})
		}
	}
	slices.SortStableFunc(v.Feed, func(a, b EventRow) int {
		if c := cmp.Compare(b.Minute, a.Minute); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if m.Status == model.StatusLive {
		best := -1
		for i, g := range goals {
			if g > 0 && (best < 0 || g > goals[best]) {
				best = i
			}
		}
		if best >= 0 {
			v.Highlight = &Highlight{Player: v.Focus[best], Goals: goals[best]}
		}
	}

	// Focus follows catalogue order, not the order players appear in the feed.
	slices.SortFunc(v.Focus, func(a, b PlayerCard) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return v, nil
}
