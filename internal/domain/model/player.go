// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Position is a player's primary position on the pitch.
type Position string

// Positions, goalkeeper first, forwards last.
const (
	PositionGK  Position = "GK"
	PositionCB  Position = "CB"
	PositionLB  Position = "LB"
	PositionRB  Position = "RB"
	PositionCDM Position = "CDM"
	PositionCM  Position = "CM"
	PositionCAM Position = "CAM"
	PositionLW  Position = "LW"
	PositionRW  Position = "RW"
	PositionST  Position = "ST"
)

// Positions lists every valid position in display order.
func Positions() []Position {
	return []Position{
		PositionGK, PositionCB, PositionLB, PositionRB, PositionCDM,
		PositionCM, PositionCAM, PositionLW, PositionRW, PositionST,
	}
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	for _, known := range Positions() {
		if p == known {
			return true
		}
	}
	return false
}

func (p Position) String() string { return string(p) }

// ParsePosition accepts a position code in any letter case.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return p, nil
}

// Stats holds the 0-100 attribute ratings.
type Stats struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`

	// Secondary ratings, shown on the profile but not radar-charted.
	Technique int `json:"technique"`
	Tactical  int `json:"tactical"`
	Mental    int `json:"mental"`
}

// Attribute is one named rating.
type Attribute struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Skills returns the six skill ratings in radar order.
func (s Stats) Skills() []Attribute {
	return []Attribute{
		{Name: "Pace", Value: s.Pace},
		{Name: "Shooting", Value: s.Shooting},
		{Name: "Passing", Value: s.Passing},
		{Name: "Dribbling", Value: s.Dribbling},
		{Name: "Defending", Value: s.Defending},
		{Name: "Physical", Value: s.Physical},
	}
}

// Secondary returns the technique, tactical and mental ratings.
func (s Stats) Secondary() []Attribute {
	return []Attribute{
		{Name: "Technique", Value: s.Technique},
		{Name: "Tactical", Value: s.Tactical},
		{Name: "Mental", Value: s.Mental},
	}
}

// Contract describes the player's current deal.
type Contract struct {
	Until  time.Time `json:"until"`
	Salary int       `json:"salary"` // weekly, in thousands
}

// Performance summarises the last five matches.
type Performance struct {
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	MinutesPlayed   int     `json:"minutes_played"`
	PassAccuracy    float64 `json:"pass_accuracy"`
	DistanceCovered float64 `json:"distance_covered"` // km
	Rating          float64 `json:"rating"`
}

// Player is a scouted player. Players are immutable once seeded.
type Player struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	Age               int         `json:"age"`
	Nationality       string      `json:"nationality"`
	Position          Position    `json:"position"`
	Club              string      `json:"club"`
	MarketValue       float64     `json:"market_value"` // millions
	Photo             string      `json:"photo"`
	Stats             Stats       `json:"stats"`
	Form              []float64   `json:"form"` // oldest first, 1-10
	Fitness           int         `json:"fitness"`
	Contract          Contract    `json:"contract"`
	RecentPerformance Performance `json:"recent_performance"`
}

// Initials returns the first letter of every word in the name.
func (p Player) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

// Clone returns a deep copy so callers cannot alias the form slice.
func (p Player) Clone() Player {
	c := p
	c.Form = append([]float64(nil), p.Form...)
	return c
}

// Validate checks the invariants of a seeded player.
func (p Player) Validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidPlayer)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: player %d has no name", ErrInvalidPlayer, p.ID)
	case !p.Position.Valid():
		return fmt.Errorf("%w: player %d: %w: %q", ErrInvalidPlayer, p.ID, ErrUnknownPosition, p.Position)
	case len(p.Form) == 0:
		return fmt.Errorf("%w: player %d has an empty form sequence", ErrInvalidPlayer, p.ID)
	case !percentage(float64(p.Fitness)):
		return fmt.Errorf("%w: player %d fitness %d outside [0,100]", ErrInvalidPlayer, p.ID, p.Fitness)
	case !percentage(p.RecentPerformance.PassAccuracy):
		return fmt.Errorf("%w: player %d pass accuracy outside [0,100]", ErrInvalidPlayer, p.ID)
	}
	for _, a := range append(p.Stats.Skills(), p.Stats.Secondary()...) {
		if !percentage(float64(a.Value)) {
			return fmt.Errorf("%w: player %d %s %d outside [0,100]", ErrInvalidPlayer, p.ID, a.Name, a.Value)
		}
	}
	for i, r := range p.Form {
		if r < 1 || r > 10 {
			return fmt.Errorf("%w: player %d form[%d]=%.1f outside [1,10]", ErrInvalidPlayer, p.ID, i, r)
		}
	}
	return nil
}

func percentage(v float64) bool {
	return v >= 0 && v <= 100
}
