package engine

import (
	"strings"
	"testing"

	"github.com/jwebster45206/courtside/pkg/nba"
)

var formatLine = nba.SeasonStatLine{
	Season:   "2019-20",
	Team:     "LAL",
	Points:   25.3,
	Assists:  10.25, // rounds to one decimal
	Rebounds: 7.8,
	Games:    67,
	FGPct:    0.493,
}

func TestRender_SeasonStat(t *testing.T) {
	tests := []struct {
		field StatField
		want  string
	}{
		{FieldPoints, "LeBron James scored 25.3 PPG in the 2019-20 season."},
		{FieldAssists, "LeBron James made 10.2 APG in the 2019-20 season."},
		{FieldRebounds, "LeBron James got 7.8 RPG in the 2019-20 season."},
		{FieldTeam, "LeBron James played for LAL in the 2019-20 season."},
		{FieldFGPct, "LeBron James's FG% in the 2019-20 season was 49.3%."},
	}
	for _, tt := range tests {
		got := Render(SeasonStatResult{Player: "LeBron James", Field: tt.field, Line: formatLine})
		if got != tt.want {
			t.Errorf("Render(%v) = %q; want %q", tt.field, got, tt.want)
		}
	}
}

func TestRender_SeasonStatSummary(t *testing.T) {
	got := Render(SeasonStatResult{Player: "LeBron James", Field: FieldSummary, Line: formatLine})
	for _, want := range []string{
		"LeBron James in the 2019-20 season (with LAL):",
		"Games: 67",
		"PPG: 25.3",
		"APG: 10.2",
		"RPG: 7.8",
		"FG%: 49.3%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in %q", want, got)
		}
	}
}

func TestRender_Career(t *testing.T) {
	got := Render(CareerResult{Player: "LeBron James", Line: formatLine})
	if !strings.Contains(got, "Career Averages for LeBron James") {
		t.Errorf("unexpected career rendering: %q", got)
	}
	if !strings.Contains(got, "FG%: 49.3%") {
		t.Errorf("career FG%% should be fraction*100 with one decimal: %q", got)
	}
}

func TestRender_TopScorers(t *testing.T) {
	got := Render(TopScorersResult{
		Season: "2021-22",
		Stat:   "PTS",
		Rows: []nba.LeaderRow{
			{PlayerName: "Joel Embiid", Team: "PHI", Value: 30.6},
			{PlayerName: "LeBron James", Team: "LAL", Value: 30.3},
		},
	})
	if !strings.Contains(got, "Top 2 players by PTS in 2021-22") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "| 1 | Joel Embiid | PHI | 30.6 |") {
		t.Errorf("missing ranked row: %q", got)
	}
	if !strings.Contains(got, "| 2 | LeBron James | LAL | 30.3 |") {
		t.Errorf("missing second row: %q", got)
	}
}

func TestRender_Compare(t *testing.T) {
	line2 := formatLine
	line2.Team = "GSW"
	line2.FGPct = 0.402
	got := Render(CompareResult{
		Player1: "LeBron James",
		Player2: "Stephen Curry",
		Line1:   formatLine,
		Line2:   line2,
	})
	if !strings.Contains(got, "**LeBron James vs Stephen Curry** in 2019-20") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "| FG%      | 49.3% | 40.2% |") {
		t.Errorf("missing FG row: %q", got)
	}
}

func TestRender_Failures(t *testing.T) {
	tests := []struct {
		name string
		f    Failure
		want string
	}{
		{
			name: "missing season prompt",
			f:    Failure{Kind: FailMissingEntity, Query: "season"},
			want: "Please specify a year, like 'Top scorers 2022'.",
		},
		{
			name: "missing player prompt",
			f:    Failure{Kind: FailMissingEntity},
			want: "I couldn't recognize any player. Try again with a name like 'LeBron James'.",
		},
		{
			name: "player not found",
			f:    Failure{Kind: FailPlayerNotFound, Players: []string{"LeBron James"}},
			want: "Player LeBron James not found.",
		},
		{
			name: "compare players not found",
			f:    Failure{Kind: FailPlayerNotFound, Players: []string{"LeBron James", "Stephen Curry"}, Compare: true},
			want: "Could not find both players: LeBron James and Stephen Curry.",
		},
		{
			name: "season miss names the exact label",
			f:    Failure{Kind: FailStatsUnavailable, Players: []string{"Stephen Curry"}, Season: "2009-10"},
			want: "❌ Stephen Curry did not play in the 2009-10 season.",
		},
		{
			name: "no stats at all",
			f:    Failure{Kind: FailStatsUnavailable, Players: []string{"Stephen Curry"}},
			want: "❌ No stats found for Stephen Curry.",
		},
		{
			name: "compare season miss names both players",
			f: Failure{Kind: FailStatsUnavailable, Compare: true, Season: "2018-19",
				Players: []string{"LeBron James", "Kevin Durant"}},
			want: "❌ Stats not available for one or both players (LeBron James and Kevin Durant) in 2018-19.",
		},
		{
			name: "backend failure",
			f:    Failure{Kind: FailBackend, Query: "top PTS leaders for 2021-22"},
			want: "Couldn't fetch top PTS leaders for 2021-22. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.f); got != tt.want {
				t.Errorf("Render() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestSafeField(t *testing.T) {
	fields := map[string]string{"POSITION": "Forward", "COUNTRY": ""}
	if got := safeField(fields, "POSITION"); got != "Forward" {
		t.Errorf("safeField(POSITION) = %q", got)
	}
	if got := safeField(fields, "COUNTRY"); got != naToken {
		t.Errorf("empty field should render %q, got %q", naToken, got)
	}
	if got := safeField(fields, "HEIGHT"); got != naToken {
		t.Errorf("missing field should render %q, got %q", naToken, got)
	}
}
