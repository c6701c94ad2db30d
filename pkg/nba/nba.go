package nba

// PlayerRef is one entry in the league roster. The roster is loaded once
// at startup and treated as read-only for the life of the process.
type PlayerRef struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

// SeasonStatLine is a player's per-game line for one season. Lines are
// produced per query and never stored.
type SeasonStatLine struct {
	Season   string  `json:"season"` // season label, e.g. "2021-22"
	Team     string  `json:"team"`
	Points   float64 `json:"points"`
	Assists  float64 `json:"assists"`
	Rebounds float64 `json:"rebounds"`
	Games    int     `json:"games"`
	FGPct    float64 `json:"fg_pct"` // fraction in [0,1]
}

// LeaderRow is one row of a league-leaders table, ranked descending by
// the requested stat.
type LeaderRow struct {
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Value      float64 `json:"value"`
}

// Bio field names as returned by the stats backend. Values may be absent
// or empty; readers must treat both as unknown.
const (
	BioName        = "DISPLAY_FIRST_LAST"
	BioPosition    = "POSITION"
	BioTeamName    = "TEAM_NAME"
	BioTeamAbbr    = "TEAM_ABBREVIATION"
	BioHeight      = "HEIGHT"
	BioWeight      = "WEIGHT"
	BioBirthDate   = "BIRTHDATE"
	BioCountry     = "COUNTRY"
	BioDraftYear   = "DRAFT_YEAR"
	BioDraftRound  = "DRAFT_ROUND"
	BioDraftNumber = "DRAFT_NUMBER"
	BioSeasonExp   = "SEASON_EXP"
)

// StatPoints is the stat category used for league-leader queries.
const StatPoints = "PTS"
