package model_test

import (
	"errors"
	"testing"
	"time"

	model "github.com/okian/scoutboard/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func validPlayer() model.Player {
	return model.Player{
		ID:          1,
		Name:        "Marcus Johnson",
		Age:         24,
		Nationality: "England",
		Position:    model.PositionST,
		Club:        "Arsenal FC",
		MarketValue: 35.5,
		Stats: model.Stats{
			Pace: 88, Shooting: 85, Passing: 78, Dribbling: 86, Defending: 45, Physical: 76,
			Technique: 84, Tactical: 79, Mental: 82,
		},
		Form:    []float64{8.2, 7.5, 8.8, 7.9, 8.4},
		Fitness: 95,
		Contract: model.Contract{
			Until:  time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			Salary: 120,
		},
		RecentPerformance: model.Performance{PassAccuracy: 78, Rating: 8.4},
	}
}

func TestPosition(t *testing.T) {
	convey.Convey("Given the position enumeration", t, func() {
		convey.Convey("Then it should hold ten positions", func() {
			convey.So(model.Positions(), convey.ShouldHaveLength, 10)
			for _, p := range model.Positions() {
				convey.So(p.Valid(), convey.ShouldBeTrue)
			}
		})

		convey.Convey("When parsing input in any case", func() {
			p, err := model.ParsePosition(" cam ")

			convey.Convey("Then the canonical code should be returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p, convey.ShouldEqual, model.PositionCAM)
				convey.So(p.String(), convey.ShouldEqual, "CAM")
			})
		})

		convey.Convey("When parsing an unknown code", func() {
			_, err := model.ParsePosition("SW")

			convey.Convey("Then ErrUnknownPosition should be returned", func() {
				convey.So(errors.Is(err, model.ErrUnknownPosition), convey.ShouldBeTrue)
			})
		})
	})
}

func TestPlayerValidate(t *testing.T) {
	convey.Convey("Given a player", t, func() {
		convey.Convey("When every field is in range", func() {
			convey.So(validPlayer().Validate(), convey.ShouldBeNil)
		})

		cases := map[string]func(p *model.Player){
			"empty form":             func(p *model.Player) { p.Form = nil },
			"fitness above 100":      func(p *model.Player) { p.Fitness = 101 },
			"negative skill":         func(p *model.Player) { p.Stats.Defending = -1 },
			"secondary above 100":    func(p *model.Player) { p.Stats.Mental = 120 },
			"form rating of zero":    func(p *model.Player) { p.Form[2] = 0 },
			"unknown position":       func(p *model.Player) { p.Position = "XX" },
			"blank name":             func(p *model.Player) { p.Name = "  " },
			"pass accuracy over 100": func(p *model.Player) { p.RecentPerformance.PassAccuracy = 100.5 },
		}
		for name, mutate := range cases {
			convey.Convey("When it has "+name, func() {
				p := validPlayer()
				mutate(&p)

				convey.Convey("Then ErrInvalidPlayer should be returned", func() {
					convey.So(errors.Is(p.Validate(), model.ErrInvalidPlayer), convey.ShouldBeTrue)
				})
			})
		}
	})
}

func TestPlayerHelpers(t *testing.T) {
	convey.Convey("Given a player", t, func() {
		p := validPlayer()

		convey.Convey("Then initials come from every word of the name", func() {
			convey.So(p.Initials(), convey.ShouldEqual, "MJ")
		})

		convey.Convey("Then skills are returned in radar order", func() {
			skills := p.Stats.Skills()
			convey.So(skills, convey.ShouldHaveLength, 6)
			convey.So(skills[0], convey.ShouldResemble, model.Attribute{Name: "Pace", Value: 88})
			convey.So(skills[5], convey.ShouldResemble, model.Attribute{Name: "Physical", Value: 76})
			convey.So(p.Stats.Secondary(), convey.ShouldHaveLength, 3)
		})

		convey.Convey("When the clone's form is modified", func() {
			c := p.Clone()
			c.Form[0] = 1

			convey.Convey("Then the original should be untouched", func() {
				convey.So(p.Form[0], convey.ShouldEqual, 8.2)
			})
		})
	})
}

func TestMatch(t *testing.T) {
	convey.Convey("Given a match", t, func() {
		m := model.Match{
			ID:       1,
			HomeTeam: "Manchester United",
			AwayTeam: "Liverpool",
			Status:   model.StatusLive,
			Events: []model.MatchEvent{
				{ID: 1, Minute: 12, Type: model.EventGoal, PlayerID: 1, Impact: model.ImpactPositive},
			},
			Stats: model.MatchStats{Possession: model.Pair[int]{Home: 54, Away: 46}},
		}

		convey.Convey("Then it should validate", func() {
			convey.So(m.Validate(), convey.ShouldBeNil)
			convey.So(m.Title(), convey.ShouldEqual, "Manchester United vs Liverpool")
		})

		convey.Convey("When an event has an unknown type", func() {
			m.Events[0].Type = "offside"
			convey.So(errors.Is(m.Validate(), model.ErrInvalidMatch), convey.ShouldBeTrue)
		})

		convey.Convey("When the status is unknown", func() {
			m.Status = "postponed"
			convey.So(errors.Is(m.Validate(), model.ErrInvalidMatch), convey.ShouldBeTrue)
		})

		convey.Convey("When possession does not add up for a played match", func() {
			m.Stats.Possession.Away = 40
			convey.So(errors.Is(m.Validate(), model.ErrInvalidMatch), convey.ShouldBeTrue)
		})

		convey.Convey("When the clone's events are modified", func() {
			c := m.Clone()
			c.Events[0].Minute = 80
			convey.So(m.Events[0].Minute, convey.ShouldEqual, 12)
		})
	})
}

func TestEventType(t *testing.T) {
	convey.Convey("Given event types", t, func() {
		convey.Convey("Then key events are goals, assists, red cards and injuries", func() {
			convey.So(model.EventGoal.Key(), convey.ShouldBeTrue)
			convey.So(model.EventAssist.Key(), convey.ShouldBeTrue)
			convey.So(model.EventRed.Key(), convey.ShouldBeTrue)
			convey.So(model.EventInjury.Key(), convey.ShouldBeTrue)
			convey.So(model.EventYellow.Key(), convey.ShouldBeFalse)
			convey.So(model.EventSubstitution.Key(), convey.ShouldBeFalse)
		})

		convey.Convey("Then labels are human readable", func() {
			convey.So(model.EventYellow.Label(), convey.ShouldEqual, "Yellow Card")
			convey.So(model.EventSubstitution.Label(), convey.ShouldEqual, "Substitution")
		})

		convey.Convey("Then impacts validate", func() {
			convey.So(model.ImpactNeutral.Valid(), convey.ShouldBeTrue)
			convey.So(model.Impact("mixed").Valid(), convey.ShouldBeFalse)
		})
	})
}
