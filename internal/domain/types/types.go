// Package types contains the view-state value types shared by the squad
// filters, the HTML views and the JSON API.
package types

import (
	"strings"

	"github.com/okian/scoutboard/internal/domain/model"
)

// ValueBucket is a market value range, in millions.
type ValueBucket string

const (
	ValueAny     ValueBucket = "any"
	ValueUnder20 ValueBucket = "under20"
	Value20To40  ValueBucket = "20to40"
	ValueOver40  ValueBucket = "over40"
)

// ValueBuckets lists every bucket in display order.
func ValueBuckets() []ValueBucket {
	return []ValueBucket{ValueAny, ValueUnder20, Value20To40, ValueOver40}
}

// Contains reports whether a market value falls inside the bucket.
func (b ValueBucket) Contains(value float64) bool {
	switch b {
	case ValueUnder20:
		return value < 20
	case Value20To40:
		return value >= 20 && value <= 40
	case ValueOver40:
		return value > 40
	default:
		return true
	}
}

// Label is the text shown in the value select.
func (b ValueBucket) Label() string {
	switch b {
	case ValueUnder20:
		return "Under €20M"
	case Value20To40:
		return "€20M - €40M"
	case ValueOver40:
		return "Over €40M"
	default:
		return "Any Value"
	}
}

// ParseValueBucket returns ValueAny and false for unknown input.
func ParseValueBucket(s string) (ValueBucket, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ValueAny, true
	}
	for _, b := range ValueBuckets() {
		if string(b) == s {
			return b, true
		}
	}
	return ValueAny, false
}

// PositionFilter is "all" or a single position code.
type PositionFilter string

// PositionAll disables position filtering.
const PositionAll PositionFilter = "all"

// Matches reports whether a player at position p passes the filter.
func (f PositionFilter) Matches(p model.Position) bool {
	return f == PositionAll || f == "" || model.Position(f) == p
}

// ParsePositionFilter returns PositionAll and false for unknown input.
func ParsePositionFilter(s string) (PositionFilter, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(PositionAll)) {
		return PositionAll, true
	}
	p, err := model.ParsePosition(s)
	if err != nil {
		return PositionAll, false
	}
	return PositionFilter(p), true
}

// Query is the squad filter state.
type Query struct {
	Search   string         `json:"search"`
	Position PositionFilter `json:"position"`
	Value    ValueBucket    `json:"value"`
}

// DefaultQuery matches every player.
func DefaultQuery() Query {
	return Query{Position: PositionAll, Value: ValueAny}
}

// SortKey selects the column a player list is ordered by.
type SortKey string

const (
	SortName  SortKey = "name"
	SortValue SortKey = "value"
	SortForm  SortKey = "form"
	SortAge   SortKey = "age"
)

// SortKeys lists the keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortName, SortValue, SortForm, SortAge}
}

// Direction is ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Sort is a key plus a direction.
type Sort struct {
	Key SortKey   `json:"key"`
	Dir Direction `json:"dir"`
}

// DefaultSort orders by market value, most expensive first.
func DefaultSort() Sort {
	return Sort{Key: SortValue, Dir: Desc}
}

// Toggle applies a click on a sort column: the active key flips direction,
// any other key starts descending.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key {
		return Sort{Key: key, Dir: s.Dir.Flip()}
	}
	return Sort{Key: key, Dir: Desc}
}

// ParseSort reads a sort from query values. Unknown parts fall back to the
// default and ok is false.
func ParseSort(key, dir string) (s Sort, ok bool) {
	s, ok = DefaultSort(), true

	key = strings.ToLower(strings.TrimSpace(key))
	if key != "" {
		found := false
		for _, k := range SortKeys() {
			if string(k) == key {
				s.Key, found = k, true
			}
		}
		ok = ok && found
	}

	switch Direction(strings.ToLower(strings.TrimSpace(dir))) {
	case "":
	case Asc:
		s.Dir = Asc
	case Desc:
		s.Dir = Desc
	default:
		ok = false
	}
	return s, ok
}

// EventTab selects which match events the tracker lists.
type EventTab string

const (
	TabAll   EventTab = "all"
	TabGoals EventTab = "goals"
	TabKey   EventTab = "key"
)

// EventTabs lists the tabs in display order.
func EventTabs() []EventTab {
	return []EventTab{TabAll, TabGoals, TabKey}
}

// Label is the tab caption.
func (t EventTab) Label() string {
	switch t {
	case TabGoals:
		return "Goals"
	case TabKey:
		return "Key Events"
	default:
		return "All Events"
	}
}

// Includes reports whether an event of type et is listed on the tab.
func (t EventTab) Includes(et model.EventType) bool {
	switch t {
	case TabGoals:
		return et == model.EventGoal
	case TabKey:
		return et.Key()
	default:
		return true
	}
}

// ParseEventTab returns TabAll and false for unknown input.
func ParseEventTab(s string) (EventTab, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TabAll, true
	}
	for _, t := range EventTabs() {
		if string(t) == s {
			return t, true
		}
	}
	return TabAll, false
}
