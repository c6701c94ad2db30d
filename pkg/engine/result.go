package engine

import "github.com/jwebster45206/courtside/pkg/nba"

// Result is a typed query outcome, success or failure. Every result
// renders to user-facing text; nothing in the engine is fatal.
type Result interface {
	result()
}

// FailureKind classifies the ways a query can fail.
type FailureKind string

const (
	// FailPlayerNotFound means a referenced player is not in the roster.
	FailPlayerNotFound FailureKind = "player_not_found"
	// FailStatsUnavailable means the player exists but has no row for
	// the requested season.
	FailStatsUnavailable FailureKind = "stats_unavailable"
	// FailBackend means the stats backend call errored.
	FailBackend FailureKind = "backend_error"
	// FailMissingEntity means a required entity (season or player) could
	// not be resolved from the utterance or dialogue state.
	FailMissingEntity FailureKind = "missing_entity"
)

// Failure is a typed query failure. Which fields are set depends on the
// kind and the query that produced it.
type Failure struct {
	Kind    FailureKind
	Players []string // players involved, when known
	Season  string   // season label checked, when one was resolved
	Query   string   // short description of the attempted backend query
	Compare bool     // failure arose from a two-player comparison
}

func (Failure) result() {}

// TopScorersResult is the top of a league-leaders table for one season.
type TopScorersResult struct {
	Season string // season label
	Stat   string
	Rows   []nba.LeaderRow
}

func (TopScorersResult) result() {}

// CareerResult is a player's career summary line.
type CareerResult struct {
	Player string
	Line   nba.SeasonStatLine
}

func (CareerResult) result() {}

// BioResult is a player's biographical record. Absent or empty backend
// values arrive as "N/A".
type BioResult struct {
	Name        string
	Position    string
	TeamName    string
	TeamAbbr    string
	Height      string
	Weight      string
	BirthDate   string
	Country     string
	DraftYear   string
	DraftRound  string
	DraftNumber string
	YearsPro    string
	Active      bool
}

func (BioResult) result() {}

// CompareResult is a side-by-side of two players for one season. The
// displayed season comes from the first player's resolved row.
type CompareResult struct {
	Player1, Player2 string
	Line1, Line2     nba.SeasonStatLine
}

func (CompareResult) result() {}

// SeasonStatResult is one player's line for one season, scoped to a
// single stat or the full summary.
type SeasonStatResult struct {
	Player string
	Field  StatField
	Line   nba.SeasonStatLine
}

func (SeasonStatResult) result() {}
