package web

import (
	"time"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
)

func marcus() model.Player {
	return model.Player{
		ID: 1, Name: "Marcus Johnson", Age: 23, Nationality: "England", Club: "Manchester City",
		Position: model.PositionST, MarketValue: 45.5, Photo: "/static/placeholder.svg",
		Stats: model.Stats{
			Pace: 88, Shooting: 85, Passing: 76, Dribbling: 84, Defending: 42, Physical: 78,
			Technique: 83, Tactical: 75, Mental: 80,
		},
		Form:     []float64{7.8, 8.2, 7.5, 8.9, 8.5},
		Fitness:  95,
		Contract: model.Contract{Until: time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC), Salary: 150},
		RecentPerformance: model.Performance{
			Goals: 12, Assists: 7, MinutesPlayed: 1560, PassAccuracy: 82.5, DistanceCovered: 10.2, Rating: 8.2,
		},
	}
}

func carlos() model.Player {
	return model.Player{
		ID: 2, Name: "Carlos Mendes", Age: 26, Nationality: "Portugal", Club: "Benfica",
		Position: model.PositionCB, MarketValue: 28.5, Photo: "/static/placeholder.svg",
		Stats: model.Stats{
			Pace: 75, Shooting: 60, Passing: 78, Dribbling: 70, Defending: 88, Physical: 85,
			Technique: 72, Tactical: 86, Mental: 84,
		},
		Form:     []float64{7.5, 7.8, 8.0, 7.9, 8.1},
		Fitness:  88,
		Contract: model.Contract{Until: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), Salary: 90},
		RecentPerformance: model.Performance{
			Goals: 2, Assists: 3, MinutesPlayed: 1820, PassAccuracy: 88.1, DistanceCovered: 9.6, Rating: 7.8,
		},
	}
}

func cardOf(p model.Player) service.PlayerCard {
	return service.PlayerCard{Player: p, AverageForm: scouting.AverageForm(p.Form), Trend: scouting.FormTrend(p.Form)}
}

func liveMatch() model.Match {
	return model.Match{
		ID: 1, HomeTeam: "Manchester City", AwayTeam: "Liverpool",
		Date:   time.Date(2025, time.April, 27, 15, 0, 0, 0, time.UTC),
		Score:  model.Pair[int]{Home: 2, Away: 1},
		Status: model.StatusLive,
		Events: []model.MatchEvent{
			{ID: 1, Minute: 23, Type: model.EventGoal, PlayerID: 1, Description: "Header from a corner", Impact: model.ImpactPositive},
			{ID: 2, Minute: 41, Type: model.EventTackle, PlayerID: 2, Description: "Clean tackle on the edge of the box", Impact: model.ImpactPositive},
			{ID: 3, Minute: 56, Type: model.EventGoal, PlayerID: 1, Description: "Finish into the bottom corner", Impact: model.ImpactPositive},
		},
		Stats: model.MatchStats{
			Possession:    model.Pair[int]{Home: 55, Away: 45},
			Shots:         model.Pair[int]{Home: 14, Away: 9},
			ShotsOnTarget: model.Pair[int]{Home: 6, Away: 3},
			Corners:       model.Pair[int]{Home: 7, Away: 4},
			Fouls:         model.Pair[int]{Home: 8, Away: 11},
		},
	}
}

func upcomingMatch() model.Match {
	return model.Match{
		ID: 2, HomeTeam: "Benfica", AwayTeam: "Porto",
		Date:   time.Date(2025, time.May, 3, 19, 0, 0, 0, time.UTC),
		Status: model.StatusUpcoming,
	}
}
