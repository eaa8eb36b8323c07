package scouting

import (
	"math"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Side identifies one of the two compared players.
type Side int

const (
	Neither Side = iota
	First
	Second
)

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "tie"
	}
}

// Row is one compared attribute.
type Row struct {
	Label  string  `json:"label"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Winner Side    `json:"winner"`
}

// Comparison is the outcome of Compare.
type Comparison struct {
	A    model.Player `json:"a"`
	B    model.Player `json:"b"`
	Rows []Row        `json:"rows"`

	WinsA int `json:"wins_a"`
	WinsB int `json:"wins_b"`

	// Recommended is First on equal win counts.
	Recommended Side `json:"recommended"`

	ValueDifference float64  `json:"value_difference"`
	Advantages      []string `json:"advantages"`
	BetterValue     bool     `json:"better_value"`
	PositiveTrend   bool     `json:"positive_trend"`
}

// Tie reports whether both players won the same number of attributes.
func (c Comparison) Tie() bool { return c.WinsA == c.WinsB }

// RecommendedPlayer returns the player Recommended points at.
func (c Comparison) RecommendedPlayer() model.Player {
	if c.Recommended == Second {
		return c.B
	}
	return c.A
}

// OtherPlayer returns the player that was not recommended.
func (c Comparison) OtherPlayer() model.Player {
	if c.Recommended == Second {
		return c.A
	}
	return c.B
}

// Compare counts strict wins over the six skill ratings, average form and
// fitness.
func Compare(a, b model.Player) Comparison {
	c := Comparison{A: a, B: b}

	add := func(label string, va, vb float64) {
		r := Row{Label: label, A: va, B: vb}
		switch {
		case va > vb:
			r.Winner = First
			c.WinsA++
		case vb > va:
			r.Winner = Second
			c.WinsB++
		}
		c.Rows = append(c.Rows, r)
	}

	as, bs := a.Stats.Skills(), b.Stats.Skills()
	for i := range as {
		add(as[i].Name, float64(as[i].Value), float64(bs[i].Value))
	}
	add("Form", AverageForm(a.Form), AverageForm(b.Form))
	add("Fitness", float64(a.Fitness), float64(b.Fitness))

	c.Recommended = First
	if c.WinsB > c.WinsA {
		c.Recommended = Second
	}

	rec, other := c.RecommendedPlayer(), c.OtherPlayer()
	c.ValueDifference = math.Abs(a.MarketValue - b.MarketValue)
	c.BetterValue = rec.MarketValue < other.MarketValue
	c.PositiveTrend = FormDelta(rec.Form) > 0

	headline := []struct {
		name string
		rec  int
		oth  int
	}{
		{"pace", rec.Stats.Pace, other.Stats.Pace},
		{"shooting", rec.Stats.Shooting, other.Stats.Shooting},
		{"passing", rec.Stats.Passing, other.Stats.Passing},
	}
	for _, h := range headline {
		if h.rec > h.oth {
			c.Advantages = append(c.Advantages, h.name)
		}
	}
	return c
}
