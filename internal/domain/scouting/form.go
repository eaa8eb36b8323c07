// Package scouting derives the numbers a scout reads off the raw player and
// match records. Every function is pure.
package scouting

import (
	"github.com/okian/scoutboard/internal/domain/model"
)

// trendThreshold is the change between the last two form ratings that
// counts as a movement rather than noise.
const trendThreshold = 0.5

// floatTolerance absorbs subtraction error such as 8.4-7.9 != 0.5.
const floatTolerance = 1e-9

// Trend describes the direction of a player's most recent form.
type Trend string

const (
	Improving Trend = "improving"
	Declining Trend = "declining"
	Stable    Trend = "stable"
)

// AverageForm is the arithmetic mean of the form ratings, 0 when empty.
func AverageForm(form []float64) float64 {
	if len(form) == 0 {
		return 0
	}
	var sum float64
	for _, r := range form {
		sum += r
	}
	return sum / float64(len(form))
}

// FormDelta is the last rating minus the one before it.
func FormDelta(form []float64) float64 {
	if len(form) < 2 {
		return 0
	}
	return form[len(form)-1] - form[len(form)-2]
}

// FormTrend classifies the last two ratings. A change of exactly the
// threshold is still stable.
func FormTrend(form []float64) Trend {
	d := FormDelta(form)
	switch {
	case d > trendThreshold+floatTolerance:
		return Improving
	case d < -trendThreshold-floatTolerance:
		return Declining
	default:
		return Stable
	}
}

// ShotAccuracy is the percentage of shots on target, 0 when no shots.
func ShotAccuracy(onTarget, shots int) float64 {
	if shots <= 0 {
		return 0
	}
	return float64(onTarget) / float64(shots) * 100
}

// MatchAccuracy applies ShotAccuracy to both sides of a match.
func MatchAccuracy(m model.Match) model.Pair[float64] {
	return model.Pair[float64]{
		Home: ShotAccuracy(m.Stats.ShotsOnTarget.Home, m.Stats.Shots.Home),
		Away: ShotAccuracy(m.Stats.ShotsOnTarget.Away, m.Stats.Shots.Away),
	}
}
