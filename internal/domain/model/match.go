package model

import (
	"fmt"
	"strings"
	"time"
)

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

// Valid reports whether s is a known status.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return true
	}
	return false
}

func (s MatchStatus) String() string { return string(s) }

// EventType classifies a match event.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventAssist       EventType = "assist"
	EventShot         EventType = "shot"
	EventSave         EventType = "save"
	EventTackle       EventType = "tackle"
	EventFoul         EventType = "foul"
	EventYellow       EventType = "yellow"
	EventRed          EventType = "red"
	EventSubstitution EventType = "substitution"
	EventInjury       EventType = "injury"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventGoal, EventAssist, EventShot, EventSave, EventTackle,
		EventFoul, EventYellow, EventRed, EventSubstitution, EventInjury:
		return true
	}
	return false
}

func (t EventType) String() string { return string(t) }

// Key reports whether the event belongs on the "key events" tab.
func (t EventType) Key() bool {
	switch t {
	case EventGoal, EventAssist, EventRed, EventInjury:
		return true
	}
	return false
}

// Label is the human readable event name.
func (t EventType) Label() string {
	switch t {
	case EventYellow:
		return "Yellow Card"
	case EventRed:
		return "Red Card"
	case "":
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Impact is the scouting weight of an event.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// Valid reports whether i is a known impact.
func (i Impact) Valid() bool {
	switch i {
	case ImpactPositive, ImpactNeutral, ImpactNegative:
		return true
	}
	return false
}

func (i Impact) String() string { return string(i) }

// MatchEvent is a single entry in a match feed.
type MatchEvent struct {
	ID          int       `json:"id"`
	Minute      int       `json:"minute"`
	Type        EventType `json:"type"`
	PlayerID    int       `json:"player_id"`
	Description string    `json:"description"`
	Impact      Impact    `json:"impact"`
}

// Pair holds a home and away value.
type Pair[T int | float64] struct {
	Home T `json:"home"`
	Away T `json:"away"`
}

// MatchStats are the aggregate team numbers of a match.
type MatchStats struct {
	Possession    Pair[int] `json:"possession"`
	Shots         Pair[int] `json:"shots"`
	ShotsOnTarget Pair[int] `json:"shots_on_target"`
	Corners       Pair[int] `json:"corners"`
	Fouls         Pair[int] `json:"fouls"`
}

// Match is a fixture with its event feed.
type Match struct {
	ID       int          `json:"id"`
	HomeTeam string       `json:"home_team"`
	AwayTeam string       `json:"away_team"`
	Date     time.Time    `json:"date"`
	Score    Pair[int]    `json:"score"`
	Status   MatchStatus  `json:"status"`
	Events   []MatchEvent `json:"events"`
	Stats    MatchStats   `json:"stats"`
}

// Title renders "Home vs Away".
func (m Match) Title() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

// Clone returns a deep copy of the match.
func (m Match) Clone() Match {
	c := m
	c.Events = append([]MatchEvent(nil), m.Events...)
	return c
}

// Validate checks the invariants of a seeded match.
func (m Match) Validate() error {
	switch {
	case m.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidMatch)
	case m.HomeTeam == "" || m.AwayTeam == "":
		return fmt.Errorf("%w: match %d is missing a team", ErrInvalidMatch, m.ID)
	case !m.Status.Valid():
		return fmt.Errorf("%w: match %d has status %q", ErrInvalidMatch, m.ID, m.Status)
	case m.Stats.Possession.Home+m.Stats.Possession.Away != 100 && m.Status != StatusUpcoming:
		return fmt.Errorf("%w: match %d possession does not add up to 100", ErrInvalidMatch, m.ID)
	}
	for _, e := range m.Events {
		switch {
		case e.Minute < 0:
			return fmt.Errorf("%w: match %d event %d has negative minute", ErrInvalidMatch, m.ID, e.ID)
		case !e.Type.Valid():
			return fmt.Errorf("%w: match %d event %d has type %q", ErrInvalidMatch, m.ID, e.ID, e.Type)
		case !e.Impact.Valid():
			return fmt.Errorf("%w: match %d event %d has impact %q", ErrInvalidMatch, m.ID, e.ID, e.Impact)
		}
	}
	return nil
}
