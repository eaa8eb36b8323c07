package web

import (
	"testing"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
)

func TestScoutReport(t *testing.T) {
	want := []string{
		"Based on our detailed comparison between Marcus Johnson and Carlos Mendes, we recommend Marcus Johnson as the better recruitment option at this time.",
		"Marcus Johnson shows superior performance in 5 key performance metrics, with notable advantages in pace, shooting.",
		"Their market value of €45.5M represents a premium price reflecting their quality.",
		"Recent form indicates consistent performance with a rating of 8.2 over the last 5 matches.",
	}

	got := scoutReport(scouting.Compare(marcus(), carlos()))
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph %d\nexpected: '%v'\ngot:      '%v'", i, want[i], got[i])
		}
	}
}

func TestScoutReportCheaperPick(t *testing.T) {
	got := scoutReport(scouting.Compare(carlos(), marcus()))
	if got[0] != "Based on our detailed comparison between Carlos Mendes and Marcus Johnson, we recommend Marcus Johnson as the better recruitment option at this time." {
		t.Errorf("unexpected opening: %v", got[0])
	}

	cheap := marcus()
	cheap.MarketValue = 20
	cheap.Form = []float64{7, 7, 7, 7, 8}
	got = scoutReport(scouting.Compare(cheap, carlos()))
	if got[2] != "Their market value of €20M represents better value for money." {
		t.Errorf("unexpected value paragraph: %v", got[2])
	}
	if got[3] != "Recent form indicates a positive trend with a rating of 8.2 over the last 5 matches." {
		t.Errorf("unexpected form paragraph: %v", got[3])
	}
}

func TestNewListPage(t *testing.T) {
	tests := []struct {
		name   string
		list   service.PlayerList
		hrefs  []string
		active int
	}{
		{
			name:   "default sort",
			list:   service.PlayerList{Sort: types.DefaultSort()},
			hrefs:  []string{"/?dir=desc&sort=name", "/?dir=asc&sort=value", "/?dir=desc&sort=form", "/?dir=desc&sort=age"},
			active: 1,
		},
		{
			name:   "age ascending with search",
			list:   service.PlayerList{Search: "fc", Sort: types.Sort{Key: types.SortAge, Dir: types.Asc}},
			hrefs:  []string{"/?dir=desc&q=fc&sort=name", "/?dir=desc&q=fc&sort=value", "/?dir=desc&q=fc&sort=form", "/?dir=desc&q=fc&sort=age"},
			active: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := newListPage(tc.list)
			for i, l := range page.SortLinks {
				if l.Href != tc.hrefs[i] {
					t.Errorf("link %d: expected '%v', got '%v'", i, tc.hrefs[i], l.Href)
				}
				if l.Active != (i == tc.active) {
					t.Errorf("link %d: unexpected active=%v", i, l.Active)
				}
			}
		})
	}
}

func TestShare(t *testing.T) {
	tests := []struct {
		home, away float64
		want       int
	}{
		{home: 0, away: 0, want: 50},
		{home: 55, away: 45, want: 55},
		{home: 3, away: 0, want: 100},
		{home: 0, away: 7, want: 0},
	}
	for _, tc := range tests {
		if got := share(tc.home, tc.away); got != tc.want {
			t.Errorf("share(%v, %v): expected %d, got %d", tc.home, tc.away, tc.want, got)
		}
	}
}

func TestScoutAlert(t *testing.T) {
	got := scoutAlert(service.Highlight{Player: cardOf(marcus()), Goals: 2})
	want := "Marcus Johnson has scored 2 goals in this match, bringing the season total to 12. Their market value stands at €45.5M with an average form of 8.2."
	if got != want {
		t.Errorf("expected: '%v', got: '%v'", want, got)
	}

	got = scoutAlert(service.Highlight{Player: cardOf(carlos()), Goals: 1})
	if want := "Carlos Mendes has scored a goal in this match"; got[:len(want)] != want {
		t.Errorf("unexpected alert: %v", got)
	}
}

func TestNewSquadPage(t *testing.T) {
	page := newSquadPage(service.SquadView{Query: types.Query{Position: "ST", Value: types.ValueOver40}})
	if len(page.Positions) != 11 {
		t.Fatalf("expected 11 position options, got %d", len(page.Positions))
	}
	for _, o := range page.Positions {
		if o.Selected != (o.Value == "ST") {
			t.Errorf("option %s: unexpected selected=%v", o.Value, o.Selected)
		}
	}
	for _, o := range page.Values {
		if o.Selected != (o.Value == "over40") {
			t.Errorf("option %s: unexpected selected=%v", o.Value, o.Selected)
		}
	}
}
