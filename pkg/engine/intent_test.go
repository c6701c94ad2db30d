package engine

import "testing"

func TestRoute_Precedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		rc   RouteContext
		want Intent
	}{
		{
			name: "top scorers needs no player",
			text: "top scorers 2022",
			rc:   RouteContext{},
			want: IntentTopScorers,
		},
		{
			name: "top points phrasing",
			text: "who had the top points in 2020",
			rc:   RouteContext{PlayerResolved: true},
			want: IntentTopScorers,
		},
		{
			name: "career beats compare",
			text: "career stats for lebron james and stephen curry",
			rc:   RouteContext{PlayerResolved: true, PairResolved: true},
			want: IntentCareer,
		},
		{
			name: "all time phrasing",
			text: "lebron james all time numbers",
			rc:   RouteContext{PlayerResolved: true},
			want: IntentCareer,
		},
		{
			name: "bio beats compare",
			text: "info on lebron james and stephen curry",
			rc:   RouteContext{PlayerResolved: true, PairResolved: true},
			want: IntentBio,
		},
		{
			name: "compare with pair",
			text: "lebron james vs stephen curry 2021",
			rc:   RouteContext{PlayerResolved: true, PairResolved: true},
			want: IntentCompare,
		},
		{
			name: "compare without separately resolved player",
			text: "lebron james or stephen curry",
			rc:   RouteContext{PairResolved: true},
			want: IntentCompare,
		},
		{
			name: "season stat fallback",
			text: "lebron james rebounds 2020",
			rc:   RouteContext{PlayerResolved: true},
			want: IntentSeasonStat,
		},
		{
			name: "career keyword without player is not career",
			text: "career stats",
			rc:   RouteContext{},
			want: IntentUnknown,
		},
		{
			name: "nothing matches",
			text: "hello there",
			rc:   RouteContext{},
			want: IntentUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Route(tt.text, tt.rc); got != tt.want {
				t.Errorf("Route(%q, %+v) = %v; want %v", tt.text, tt.rc, got, tt.want)
			}
		})
	}
}

func TestSeasonStatField(t *testing.T) {
	tests := []struct {
		text string
		want StatField
	}{
		{"lebron points 2020", FieldPoints},
		{"his ppg last year", FieldPoints},
		{"assists for curry", FieldAssists},
		{"apg in 2021", FieldAssists},
		{"rebounds please", FieldRebounds},
		{"rpg 2019", FieldRebounds},
		{"what team did he play for", FieldTeam},
		{"fg percentage", FieldFGPct},
		{"field goal numbers", FieldFGPct},
		{"how did curry do in 2021", FieldSummary},
	}
	for _, tt := range tests {
		if got := SeasonStatField(tt.text); got != tt.want {
			t.Errorf("SeasonStatField(%q) = %v; want %v", tt.text, got, tt.want)
		}
	}
}

func TestRoute_FirstRuleWins(t *testing.T) {
	// "top" + "points" routes to top scorers even with a career keyword
	// later in the utterance.
	text := "top points of his career"
	got := Route(text, RouteContext{PlayerResolved: true})
	if got != IntentTopScorers {
		t.Errorf("Route(%q) = %v; want %v", text, got, IntentTopScorers)
	}
}
