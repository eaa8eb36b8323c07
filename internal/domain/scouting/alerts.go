package scouting

import (
	"fmt"
	"time"

	"github.com/okian/scoutboard/internal/domain/model"
)

const (
	fitnessConcern  = 90
	contractHorizon = 12 // months
)

// AlertKind classifies a squad alert.
type AlertKind string

const (
	AlertFitness  AlertKind = "fitness"
	AlertContract AlertKind = "contract"
	AlertForm     AlertKind = "form"
)

// Alert is a squad warning about one player.
type Alert struct {
	Kind     AlertKind `json:"kind"`
	PlayerID int       `json:"player_id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
}

// Alerts inspects the squad for low fitness, contracts that end within a
// year of now, and form dips. Alerts are grouped by kind, players in input
// order within a kind.
func Alerts(players []model.Player, now time.Time) []Alert {
	var fitness, contract, form []Alert
	horizon := now.AddDate(0, contractHorizon, 0)

	for _, p := range players {
		if p.Fitness < fitnessConcern {
			fitness = append(fitness, Alert{
				Kind:     AlertFitness,
				PlayerID: p.ID,
				Title:    "Fitness Concern",
				Message:  fmt.Sprintf("%s's fitness level is %d%%, below the %d%% match threshold", p.Name, p.Fitness, fitnessConcern),
			})
		}
		if until := p.Contract.Until; !until.IsZero() && !until.After(horizon) {
			msg := fmt.Sprintf("%s's contract expires %s", p.Name, until.Format("January 2006"))
			if until.Before(now) {
				msg = fmt.Sprintf("%s's contract expired %s", p.Name, until.Format("January 2006"))
			}
			contract = append(contract, Alert{
				Kind:     AlertContract,
				PlayerID: p.ID,
				Title:    "Contract Expiring",
				Message:  msg,
			})
		}
		if FormTrend(p.Form) == Declining {
			form = append(form, Alert{
				Kind:     AlertForm,
				PlayerID: p.ID,
				Title:    "Form Dip",
				Message:  fmt.Sprintf("%s's rating dropped by %.1f in the last match", p.Name, -FormDelta(p.Form)),
			})
		}
	}

	out := make([]Alert, 0, len(fitness)+len(contract)+len(form))
	out = append(out, fitness...)
	out = append(out, contract...)
	return append(out, form...)
}

// ContractYearsRemaining is the contract end year minus the current year.
func ContractYearsRemaining(p model.Player, now time.Time) int {
	return p.Contract.Until.Year() - now.Year()
}
