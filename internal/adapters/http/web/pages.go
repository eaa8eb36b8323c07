package web

import (
	"fmt"
	"strconv"
	"strings"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
)

// serverErrorMessage is shown on the 500 page; the cause only goes to the log.
const serverErrorMessage = "The page could not be loaded. Please try again in a moment."

type notFoundPage struct {
	Title   string
	Message string
	Back    string
}

func pageNotFound() notFoundPage {
	return notFoundPage{Title: "404", Message: "Oops! Page not found", Back: "Return to Home"}
}

func playerNotFound() notFoundPage {
	return notFoundPage{
		Title:   "Player Not Found",
		Message: "The requested player could not be found.",
		Back:    "Back to Players",
	}
}

var sortLabels = map[types.SortKey]string{
	types.SortName:  "Name",
	types.SortValue: "Market Value",
	types.SortForm:  "Form",
	types.SortAge:   "Age",
}

type sortLink struct {
	Label  string
	Href   string
	Active bool
	Dir    types.Direction
}

type listPage struct {
	service.PlayerList
	SortLinks []sortLink
}

// newListPage attaches one link per sort key carrying the toggled sort.
func newListPage(list service.PlayerList) listPage {
	page := listPage{PlayerList: list}
	for _, key := range types.SortKeys() {
		next := list.Sort.Toggle(key)
		page.SortLinks = append(page.SortLinks, sortLink{
			Label:  sortLabels[key],
			Href:   link("/", "q", list.Search, "sort", string(next.Key), "dir", string(next.Dir)),
			Active: list.Sort.Key == key,
			Dir:    list.Sort.Dir,
		})
	}
	return page
}

type profilePage struct {
	service.PlayerProfile
	Radar radarChart
	Form  formChart
}

type comparisonPage struct {
	Players []model.Player
	First   int
	Second  int

	Comparison *scouting.Comparison
	RadarA     radarChart
	RadarB     radarChart
	Report     []string
}

// scoutReport writes the recommendation paragraphs for a comparison.
func scoutReport(c scouting.Comparison) []string {
	rec := c.RecommendedPlayer()
	wins := c.WinsA
	if c.Recommended == scouting.Second {
		wins = c.WinsB
	}

	strengths := fmt.Sprintf("%s shows superior performance in %d key performance metrics", rec.Name, wins)
	if len(c.Advantages) > 0 {
		strengths += ", with notable advantages in " + strings.Join(c.Advantages, ", ")
	}

	price := "a premium price reflecting their quality"
	if c.BetterValue {
		price = "better value for money"
	}
	trend := "consistent performance"
	if c.PositiveTrend {
		trend = "a positive trend"
	}

	return []string{
		fmt.Sprintf("Based on our detailed comparison between %s and %s, we recommend %s as the better recruitment option at this time.",
			c.A.Name, c.B.Name, rec.Name),
		strengths + ".",
		fmt.Sprintf("Their market value of %s represents %s.", moneyFormatter(rec.MarketValue), price),
		fmt.Sprintf("Recent form indicates %s with a rating of %s over the last %d matches.",
			trend, ratingFormatter(rec.RecentPerformance.Rating), len(rec.Form)),
	}
}

type matchOption struct {
	ID       int
	Title    string
	Href     string
	Selected bool
}

type tabLink struct {
	Label  string
	Href   string
	Active bool
}

type statLine struct {
	Label string
	Home  string
	Away  string
	// HomeShare is the home side's share of the bar, 0-100.
	HomeShare int
}

type matchPage struct {
	service.MatchView
	Matches   []matchOption
	Tabs      []tabLink
	StatLines []statLine
	Alert     string
}

func newMatchPage(matches []model.Match, v service.MatchView) matchPage {
	page := matchPage{MatchView: v}
	for _, m := range matches {
		page.Matches = append(page.Matches, matchOption{
			ID:       m.ID,
			Title:    m.Title(),
			Href:     link("/match-tracker", "match", strconv.Itoa(m.ID)),
			Selected: m.ID == v.ID,
		})
	}
	for _, t := range types.EventTabs() {
		page.Tabs = append(page.Tabs, tabLink{
			Label:  t.Label(),
			Href:   link("/match-tracker", "match", strconv.Itoa(v.ID), "tab", string(t)),
			Active: t == v.Tab,
		})
	}

	s := v.Stats
	page.StatLines = []statLine{
		pairLine("Possession", s.Possession, "%"),
		pairLine("Shots", s.Shots, ""),
		pairLine("On Target", s.ShotsOnTarget, ""),
		{
			Label:     "Accuracy",
			Home:      percentFormatter(v.Accuracy.Home),
			Away:      percentFormatter(v.Accuracy.Away),
			HomeShare: share(v.Accuracy.Home, v.Accuracy.Away),
		},
		pairLine("Corners", s.Corners, ""),
		pairLine("Fouls", s.Fouls, ""),
	}

	if h := v.Highlight; h != nil {
		page.Alert = scoutAlert(*h)
	}
	return page
}

func pairLine(label string, p model.Pair[int], suffix string) statLine {
	return statLine{
		Label:     label,
		Home:      strconv.Itoa(p.Home) + suffix,
		Away:      strconv.Itoa(p.Away) + suffix,
		HomeShare: share(float64(p.Home), float64(p.Away)),
	}
}

// share is home's percentage of the total, an even split when both are zero.
func share(home, away float64) int {
	if home+away == 0 {
		return 50
	}
	return int(home / (home + away) * 100)
}

func scoutAlert(h service.Highlight) string {
	p := h.Player
	goals := "a goal"
	if h.Goals > 1 {
		goals = strconv.Itoa(h.Goals) + " goals"
	}
	return fmt.Sprintf("%s has scored %s in this match, bringing the season total to %d. Their market value stands at %s with an average form of %s.",
		p.Name, goals, p.RecentPerformance.Goals, moneyFormatter(p.MarketValue), ratingFormatter(p.AverageForm))
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type squadPage struct {
	service.SquadView
	Positions []option
	Values    []option
}

func newSquadPage(v service.SquadView) squadPage {
	page := squadPage{SquadView: v}

	page.Positions = append(page.Positions, option{
		Value:    string(types.PositionAll),
		Label:    "All Positions",
		Selected: v.Query.Position == types.PositionAll || v.Query.Position == "",
	})
	for _, p := range model.Positions() {
		page.Positions = append(page.Positions, option{
			Value:    string(p),
			Label:    string(p),
			Selected: string(v.Query.Position) == string(p),
		})
	}
	for _, b := range types.ValueBuckets() {
		page.Values = append(page.Values, option{
			Value:    string(b),
			Label:    b.Label(),
			Selected: v.Query.Value == b || (v.Query.Value == "" && b == types.ValueAny),
		})
	}
	return page
}
