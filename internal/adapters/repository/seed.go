package repository

import (
	"time"

	m "github.com/okian/scoutboard/internal/domain/model"
)

const placeholderPhoto = "/static/placeholder.svg"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func stats(pace, shooting, passing, dribbling, defending, physical, technique, tactical, mental int) m.Stats {
	return m.Stats{
		Pace: pace, Shooting: shooting, Passing: passing, Dribbling: dribbling,
		Defending: defending, Physical: physical,
		Technique: technique, Tactical: tactical, Mental: mental,
	}
}

func perf(goals, assists, minutes int, passAccuracy, distance, rating float64) m.Performance {
	return m.Performance{
		Goals: goals, Assists: assists, MinutesPlayed: minutes,
		PassAccuracy: passAccuracy, DistanceCovered: distance, Rating: rating,
	}
}

// SeedPlayers returns a fresh copy of the bundled scouting list.
func SeedPlayers() []m.Player {
	return []m.Player{
		{
			ID: 1, Name: "Marcus Johnson", Age: 24, Nationality: "England", Position: m.PositionST,
			Club: "Arsenal FC", MarketValue: 35.5, Photo: placeholderPhoto,
			Stats:             stats(88, 85, 78, 86, 45, 76, 84, 79, 82),
			Form:              []float64{8.2, 7.5, 8.8, 7.9, 8.4},
			Fitness:           95,
			Contract:          m.Contract{Until: day(2026, time.June, 30), Salary: 120},
			RecentPerformance: perf(4, 2, 450, 78, 34.2, 8.4),
		},
		{
			ID: 2, Name: "Thomas Mueller", Age: 22, Nationality: "Germany", Position: m.PositionCAM,
			Club: "Bayern Munich", MarketValue: 28.7, Photo: placeholderPhoto,
			Stats:             stats(79, 82, 89, 87, 52, 72, 88, 86, 84),
			Form:              []float64{7.8, 8.5, 7.6, 9.1, 8.2},
			Fitness:           92,
			Contract:          m.Contract{Until: day(2025, time.June, 30), Salary: 95},
			RecentPerformance: perf(2, 5, 450, 91, 36.8, 8.3),
		},
		{
			ID: 3, Name: "Carlos Mendes", Age: 21, Nationality: "Portugal", Position: m.PositionLW,
			Club: "Sporting CP", MarketValue: 18.2, Photo: placeholderPhoto,
			Stats:             stats(92, 79, 81, 90, 41, 68, 86, 75, 78),
			Form:              []float64{7.2, 8.1, 7.5, 8.3, 7.9},
			Fitness:           88,
			Contract:          m.Contract{Until: day(2026, time.June, 30), Salary: 45},
			RecentPerformance: perf(1, 3, 420, 83, 33.6, 7.9),
		},
		{
			ID: 4, Name: "Jean Dubois", Age: 28, Nationality: "France", Position: m.PositionCB,
			Club: "Paris Saint-Germain", MarketValue: 42.0, Photo: placeholderPhoto,
			Stats:             stats(76, 55, 78, 72, 91, 89, 75, 88, 86),
			Form:              []float64{8.5, 8.2, 8.7, 8.3, 8.9},
			Fitness:           96,
			Contract:          m.Contract{Until: day(2024, time.June, 30), Salary: 135},
			RecentPerformance: perf(0, 1, 450, 92, 31.4, 8.7),
		},
		{
			ID: 5, Name: "Kevin De Silva", Age: 25, Nationality: "Belgium", Position: m.PositionCM,
			Club: "Manchester City", MarketValue: 65.0, Photo: placeholderPhoto,
			Stats:             stats(75, 86, 93, 88, 72, 78, 91, 90, 88),
			Form:              []float64{9.2, 8.7, 8.5, 9.0, 8.8},
			Fitness:           94,
			Contract:          m.Contract{Until: day(2027, time.June, 30), Salary: 280},
			RecentPerformance: perf(2, 6, 450, 94, 37.2, 9.1),
		},
		{
			ID: 6, Name: "Alberto Moreno", Age: 20, Nationality: "Spain", Position: m.PositionRB,
			Club: "FC Barcelona", MarketValue: 22.5, Photo: placeholderPhoto,
			Stats:             stats(85, 64, 78, 82, 80, 76, 79, 81, 75),
			Form:              []float64{7.4, 7.8, 8.2, 7.5, 7.9},
			Fitness:           90,
			Contract:          m.Contract{Until: day(2026, time.June, 30), Salary: 65},
			RecentPerformance: perf(0, 2, 430, 85, 38.5, 7.8),
		},
		{
			ID: 7, Name: "Marco Rossi", Age: 23, Nationality: "Italy", Position: m.PositionST,
			Club: "Inter Milan", MarketValue: 29.8, Photo: placeholderPhoto,
			Stats:             stats(86, 87, 72, 83, 42, 80, 83, 77, 81),
			Form:              []float64{7.8, 8.3, 7.5, 8.2, 8.6},
			Fitness:           92,
			Contract:          m.Contract{Until: day(2025, time.June, 30), Salary: 90},
			RecentPerformance: perf(3, 1, 440, 75, 32.8, 8.1),
		},
		{
			ID: 8, Name: "Jamal Wilson", Age: 19, Nationality: "USA", Position: m.PositionCM,
			Club: "Chelsea FC", MarketValue: 15.2, Photo: placeholderPhoto,
			Stats:             stats(82, 74, 85, 84, 68, 73, 82, 76, 79),
			Form:              []float64{7.1, 7.5, 7.8, 7.3, 7.6},
			Fitness:           89,
			Contract:          m.Contract{Until: day(2027, time.June, 30), Salary: 45},
			RecentPerformance: perf(1, 2, 380, 87, 35.4, 7.5),
		},
	}
}

func pair(home, away int) m.Pair[int] { return m.Pair[int]{Home: home, Away: away} }

// SeedMatches returns a fresh copy of the bundled fixtures.
func SeedMatches() []m.Match {
	return []m.Match{
		{
			ID: 1, HomeTeam: "Manchester United", AwayTeam: "Liverpool",
			Date: day(2025, time.April, 27), Score: pair(2, 1), Status: m.StatusLive,
			Events: []m.MatchEvent{
				{ID: 1, Minute: 12, Type: m.EventGoal, PlayerID: 1, Description: "Great finish from inside the box after a cross from the right wing", Impact: m.ImpactPositive},
				{ID: 2, Minute: 34, Type: m.EventYellow, PlayerID: 4, Description: "Tactical foul to stop a counter attack", Impact: m.ImpactNegative},
				{ID: 3, Minute: 41, Type: m.EventGoal, PlayerID: 7, Description: "Headed goal from a corner", Impact: m.ImpactPositive},
				{ID: 4, Minute: 58, Type: m.EventAssist, PlayerID: 5, Description: "Brilliant through ball to set up the goal", Impact: m.ImpactPositive},
				{ID: 5, Minute: 59, Type: m.EventGoal, PlayerID: 1, Description: "Clinical finish one-on-one with the goalkeeper", Impact: m.ImpactPositive},
				{ID: 6, Minute: 72, Type: m.EventSubstitution, PlayerID: 8, Description: "Tactical substitution to strengthen midfield", Impact: m.ImpactNeutral},
			},
			Stats: m.MatchStats{
				Possession: pair(54, 46), Shots: pair(14, 10), ShotsOnTarget: pair(6, 3),
				Corners: pair(6, 4), Fouls: pair(8, 12),
			},
		},
		{
			ID: 2, HomeTeam: "Arsenal FC", AwayTeam: "Manchester City",
			Date: day(2025, time.April, 30), Score: pair(0, 0), Status: m.StatusUpcoming,
		},
		{
			ID: 3, HomeTeam: "Bayern Munich", AwayTeam: "Borussia Dortmund",
			Date: day(2025, time.April, 25), Score: pair(3, 2), Status: m.StatusCompleted,
			Events: []m.MatchEvent{
				{ID: 7, Minute: 8, Type: m.EventGoal, PlayerID: 2, Description: "First-time volley from the edge of the box", Impact: m.ImpactPositive},
				{ID: 8, Minute: 23, Type: m.EventGoal, PlayerID: 3, Description: "Counter-attack goal after a defensive error", Impact: m.ImpactPositive},
				{ID: 9, Minute: 37, Type: m.EventAssist, PlayerID: 2, Description: "Perfect cross for the header", Impact: m.ImpactPositive},
				{ID: 10, Minute: 52, Type: m.EventGoal, PlayerID: 6, Description: "Long-range shot into the top corner", Impact: m.ImpactPositive},
				{ID: 11, Minute: 68, Type: m.EventInjury, PlayerID: 7, Description: "Pulled hamstring, forced to leave the pitch", Impact: m.ImpactNegative},
				{ID: 12, Minute: 75, Type: m.EventRed, PlayerID: 4, Description: "Second yellow card for a late challenge", Impact: m.ImpactNegative},
			},
			Stats: m.MatchStats{
				Possession: pair(58, 42), Shots: pair(18, 9), ShotsOnTarget: pair(8, 4),
				Corners: pair(7, 3), Fouls: pair(10, 14),
			},
		},
	}
}
