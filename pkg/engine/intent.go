package engine

import "strings"

// Intent is the single query category chosen for a turn.
type Intent string

const (
	IntentTopScorers Intent = "top_scorers"
	IntentCareer     Intent = "career"
	IntentBio        Intent = "bio"
	IntentCompare    Intent = "compare"
	IntentSeasonStat Intent = "season_stat"
	IntentUnknown    Intent = "unknown"
)

// StatField is the sub-intent of a single-season stat query.
type StatField string

const (
	FieldPoints   StatField = "points"
	FieldAssists  StatField = "assists"
	FieldRebounds StatField = "rebounds"
	FieldTeam     StatField = "team"
	FieldFGPct    StatField = "fg_pct"
	FieldSummary  StatField = "summary"
)

// RouteContext carries the entity-resolution outcome the router needs:
// whether a single player was resolved (from the utterance or by
// fallback to dialogue state) and whether exactly two roster names
// appeared verbatim in the utterance.
type RouteContext struct {
	PlayerResolved bool
	PairResolved   bool
}

type routeRule struct {
	intent Intent
	match  func(text string, rc RouteContext) bool
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// routeRules is evaluated top to bottom; the first match wins. The order
// is load-bearing: top-scorers needs no player and must not be masked by
// a failed player resolution, and career/bio/compare must pre-empt the
// generic single-stat fallback.
var routeRules = []routeRule{
	{IntentTopScorers, func(text string, _ RouteContext) bool {
		return strings.Contains(text, "top") && containsAny(text, "scorers", "points", "ppg")
	}},
	{IntentCareer, func(text string, rc RouteContext) bool {
		return rc.PlayerResolved && containsAny(text, "career", "all-time", "all time")
	}},
	{IntentBio, func(text string, rc RouteContext) bool {
		return rc.PlayerResolved && containsAny(text, "bio", "info")
	}},
	{IntentCompare, func(_ string, rc RouteContext) bool {
		return rc.PairResolved
	}},
	{IntentSeasonStat, func(_ string, rc RouteContext) bool {
		return rc.PlayerResolved
	}},
}

// Route selects exactly one intent for the lower-cased utterance.
func Route(text string, rc RouteContext) Intent {
	for _, rule := range routeRules {
		if rule.match(text, rc) {
			return rule.intent
		}
	}
	return IntentUnknown
}

// statFieldRules is a second ordered keyword scan used only within the
// season-stat intent.
var statFieldRules = []struct {
	field    StatField
	keywords []string
}{
	{FieldPoints, []string{"points", "ppg"}},
	{FieldAssists, []string{"assists", "apg"}},
	{FieldRebounds, []string{"rebounds", "rpg"}},
	{FieldTeam, []string{"team"}},
	{FieldFGPct, []string{"fg", "field goal"}},
}

// SeasonStatField picks the stat sub-intent for the lower-cased
// utterance, defaulting to a full-line summary.
func SeasonStatField(text string) StatField {
	for _, rule := range statFieldRules {
		if containsAny(text, rule.keywords...) {
			return rule.field
		}
	}
	return FieldSummary
}
