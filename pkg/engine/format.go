package engine

import (
	"fmt"
	"strings"
)

// naToken is the literal rendered for missing or empty bio fields.
const naToken = "N/A"

func safeField(fields map[string]string, key string) string {
	v, ok := fields[key]
	if !ok || v == "" {
		return naToken
	}
	return v
}

// pct renders a 0..1 fraction as a percentage with one decimal place.
func pct(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// Render turns a query result into display text. Per-game stats use one
// decimal place; shooting percentages are fraction*100 with one decimal.
// No logic beyond interpolation lives here.
func Render(res Result) string {
	switch r := res.(type) {
	case TopScorersResult:
		var b strings.Builder
		fmt.Fprintf(&b, "🏀 Top %d players by %s in %s:\n\n", len(r.Rows), r.Stat, r.Season)
		fmt.Fprintf(&b, "| Rank | Player | Team | %s |\n|------|--------|------|------|\n", r.Stat)
		for i, row := range r.Rows {
			fmt.Fprintf(&b, "| %d | %s | %s | %.1f |\n", i+1, row.PlayerName, row.Team, row.Value)
		}
		return b.String()

	case CareerResult:
		return fmt.Sprintf("📈 Career Averages for %s:\n"+
			"- Games: %d\n- PPG: %.1f\n- APG: %.1f\n- RPG: %.1f\n- FG%%: %s",
			r.Player, r.Line.Games, r.Line.Points, r.Line.Assists, r.Line.Rebounds, pct(r.Line.FGPct))

	case BioResult:
		active := "❌ No"
		if r.Active {
			active = "✅ Yes"
		}
		return fmt.Sprintf("🧬 **%s**\n\n"+
			"**Position:** %s\n\n"+
			"**Team:** %s (%s)\n\n"+
			"**Height:** %s  |  **Weight:** %s lbs\n\n"+
			"**Birth Date:** %s\n\n"+
			"**Country:** %s\n\n"+
			"**Draft Info:** %s Round %s, Pick %s\n\n"+
			"**Years Pro:** %s\n\n"+
			"**Is Active:** %s",
			r.Name, r.Position, r.TeamName, r.TeamAbbr, r.Height, r.Weight,
			r.BirthDate, r.Country, r.DraftYear, r.DraftRound, r.DraftNumber,
			r.YearsPro, active)

	case CompareResult:
		return fmt.Sprintf("📊 **%s vs %s** in %s:\n\n"+
			"| Stat     | %s | %s |\n"+
			"|----------|---------|---------|\n"+
			"| Team     | %s | %s |\n"+
			"| Games    | %d | %d |\n"+
			"| PPG      | %.1f | %.1f |\n"+
			"| APG      | %.1f | %.1f |\n"+
			"| RPG      | %.1f | %.1f |\n"+
			"| FG%%      | %s | %s |\n",
			r.Player1, r.Player2, r.Line1.Season,
			r.Player1, r.Player2,
			r.Line1.Team, r.Line2.Team,
			r.Line1.Games, r.Line2.Games,
			r.Line1.Points, r.Line2.Points,
			r.Line1.Assists, r.Line2.Assists,
			r.Line1.Rebounds, r.Line2.Rebounds,
			pct(r.Line1.FGPct), pct(r.Line2.FGPct))

	case SeasonStatResult:
		switch r.Field {
		case FieldPoints:
			return fmt.Sprintf("%s scored %.1f PPG in the %s season.", r.Player, r.Line.Points, r.Line.Season)
		case FieldAssists:
			return fmt.Sprintf("%s made %.1f APG in the %s season.", r.Player, r.Line.Assists, r.Line.Season)
		case FieldRebounds:
			return fmt.Sprintf("%s got %.1f RPG in the %s season.", r.Player, r.Line.Rebounds, r.Line.Season)
		case FieldTeam:
			return fmt.Sprintf("%s played for %s in the %s season.", r.Player, r.Line.Team, r.Line.Season)
		case FieldFGPct:
			return fmt.Sprintf("%s's FG%% in the %s season was %s.", r.Player, r.Line.Season, pct(r.Line.FGPct))
		default:
			return fmt.Sprintf("%s in the %s season (with %s):\n"+
				"Games: %d, PPG: %.1f, APG: %.1f, RPG: %.1f, FG%%: %s",
				r.Player, r.Line.Season, r.Line.Team,
				r.Line.Games, r.Line.Points, r.Line.Assists, r.Line.Rebounds, pct(r.Line.FGPct))
		}

	case Failure:
		return renderFailure(r)
	}
	return "Sorry, something went wrong answering that."
}

func renderFailure(f Failure) string {
	switch f.Kind {
	case FailMissingEntity:
		if f.Query == "season" {
			return "Please specify a year, like 'Top scorers 2022'."
		}
		return "I couldn't recognize any player. Try again with a name like 'LeBron James'."

	case FailPlayerNotFound:
		if f.Compare && len(f.Players) == 2 {
			return fmt.Sprintf("Could not find both players: %s and %s.", f.Players[0], f.Players[1])
		}
		return fmt.Sprintf("Player %s not found.", strings.Join(f.Players, ", "))

	case FailStatsUnavailable:
		if f.Compare {
			season := f.Season
			if season == "" {
				season = "the requested season"
			}
			return fmt.Sprintf("❌ Stats not available for one or both players (%s) in %s.",
				strings.Join(f.Players, " and "), season)
		}
		if f.Season != "" {
			return fmt.Sprintf("❌ %s did not play in the %s season.", f.Players[0], f.Season)
		}
		return fmt.Sprintf("❌ No stats found for %s.", f.Players[0])

	case FailBackend:
		return fmt.Sprintf("Couldn't fetch %s. Please try again.", f.Query)
	}
	return "Sorry, something went wrong answering that."
}
