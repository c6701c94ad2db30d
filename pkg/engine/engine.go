package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jwebster45206/courtside/pkg/nba"
	"github.com/jwebster45206/courtside/pkg/session"
)

// StatsBackend is the stats collaborator the engine queries. Every call
// may fail for transport or schema reasons; the engine converts such
// errors into renderable backend failures and never lets them escape.
type StatsBackend interface {
	// ListPlayers returns the full roster in a stable order.
	ListPlayers(ctx context.Context) ([]nba.PlayerRef, error)

	// CareerTable returns a player's per-season lines, oldest first.
	CareerTable(ctx context.Context, playerID string) ([]nba.SeasonStatLine, error)

	// LeagueLeaders returns the leaders table for a season label, ranked
	// descending by the given stat.
	LeagueLeaders(ctx context.Context, seasonLabel, stat string) ([]nba.LeaderRow, error)

	// PlayerBio returns a player's biographical record as raw fields.
	PlayerBio(ctx context.Context, playerID string) (map[string]string, error)
}

const topScorersCount = 5

// Engine answers free-text questions about basketball statistics. It
// owns the roster and the intent-resolution logic; dialogue state is
// passed in per turn and owned by the caller.
type Engine struct {
	backend StatsBackend
	roster  *Roster
	logger  *slog.Logger
}

// New loads the roster from the backend and returns a ready engine.
func New(ctx context.Context, backend StatsBackend, logger *slog.Logger) (*Engine, error) {
	players, err := backend.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("backend returned an empty roster")
	}
	logger.Info("Roster loaded", "players", len(players))
	return &Engine{
		backend: backend,
		roster:  NewRoster(players),
		logger:  logger,
	}, nil
}

// Roster exposes the loaded lookup table, mainly for tests.
func (e *Engine) Roster() *Roster { return e.roster }

// turn is the entity-resolution outcome for one utterance.
type turn struct {
	text       string // lower-cased utterance
	player     string // canonical roster name, or ""
	seasonYear int
	hasSeason  bool
	pair       [2]string
	hasPair    bool
}

// resolve extracts entities from the utterance, falling back to dialogue
// state, and commits anything newly resolved back to the state. The
// commit happens here, before dispatch, so a failed query about a real
// player still remembers that player for the next turn.
func (e *Engine) resolve(utterance string, s *session.Session) turn {
	t := turn{text: strings.ToLower(utterance)}

	if year, ok := ExtractYear(t.text); ok {
		t.seasonYear = year
		t.hasSeason = true
		s.LastSeason = strconv.Itoa(year)
	} else if s.LastSeason != "" {
		if year, err := strconv.Atoi(s.LastSeason); err == nil {
			t.seasonYear = year
			t.hasSeason = true
		}
	}

	if name, ok := e.roster.FindClosestPlayer(utterance); ok {
		t.player = name
		s.LastPlayer = name
	} else {
		t.player = s.LastPlayer
	}

	if p1, p2, ok := e.roster.FindTwoPlayers(utterance); ok {
		t.pair = [2]string{p1, p2}
		t.hasPair = true
	}
	return t
}

// HandleTurn fully resolves and answers one utterance against the given
// session, mutating its remembered player and season, and returns the
// rendered reply.
func (e *Engine) HandleTurn(ctx context.Context, utterance string, s *session.Session) string {
	t := e.resolve(utterance, s)
	intent := Route(t.text, RouteContext{
		PlayerResolved: t.player != "",
		PairResolved:   t.hasPair,
	})
	e.logger.Debug("Turn routed",
		"intent", intent,
		"player", t.player,
		"season", t.seasonYear,
		"pair", t.hasPair)

	var res Result
	switch intent {
	case IntentTopScorers:
		res = e.topScorers(ctx, t)
	case IntentCareer:
		res = e.careerAverages(ctx, t)
	case IntentBio:
		res = e.bio(ctx, t)
	case IntentCompare:
		res = e.compare(ctx, t)
	case IntentSeasonStat:
		res = e.seasonStat(ctx, t)
	default:
		res = Failure{Kind: FailMissingEntity}
	}
	return Render(res)
}

func (e *Engine) topScorers(ctx context.Context, t turn) Result {
	if !t.hasSeason {
		return Failure{Kind: FailMissingEntity, Query: "season"}
	}
	label := SeasonLabel(t.seasonYear)
	rows, err := e.backend.LeagueLeaders(ctx, label, nba.StatPoints)
	if err != nil {
		e.logger.Warn("League leaders lookup failed", "season", label, "error", err)
		return Failure{Kind: FailBackend, Season: label,
			Query: fmt.Sprintf("top %s leaders for %s", nba.StatPoints, label)}
	}
	if len(rows) > topScorersCount {
		rows = rows[:topScorersCount]
	}
	return TopScorersResult{Season: label, Stat: nba.StatPoints, Rows: rows}
}

func (e *Engine) careerAverages(ctx context.Context, t turn) Result {
	ref, ok := e.roster.Lookup(t.player)
	if !ok {
		return Failure{Kind: FailPlayerNotFound, Players: []string{t.player}}
	}
	table, err := e.backend.CareerTable(ctx, ref.ID)
	if err != nil {
		e.logger.Warn("Career table lookup failed", "player", t.player, "error", err)
		return Failure{Kind: FailBackend, Players: []string{t.player},
			Query: "career stats for " + t.player}
	}
	if len(table) == 0 {
		return Failure{Kind: FailStatsUnavailable, Players: []string{t.player}}
	}
	// The "career summary" is the last chronological row, i.e. the most
	// recent season. Kept as-is to match the shipped chatbot's answers.
	return CareerResult{Player: t.player, Line: table[len(table)-1]}
}

func (e *Engine) bio(ctx context.Context, t turn) Result {
	ref, ok := e.roster.Lookup(t.player)
	if !ok {
		return Failure{Kind: FailPlayerNotFound, Players: []string{t.player}}
	}
	fields, err := e.backend.PlayerBio(ctx, ref.ID)
	if err != nil {
		e.logger.Warn("Bio lookup failed", "player", t.player, "error", err)
		return Failure{Kind: FailBackend, Players: []string{t.player},
			Query: "detailed bio for " + t.player}
	}
	birthDate := safeField(fields, nba.BioBirthDate)
	if birthDate != naToken && len(birthDate) > 10 {
		birthDate = birthDate[:10] // calendar-date portion of a timestamp
	}
	return BioResult{
		Name:        safeField(fields, nba.BioName),
		Position:    safeField(fields, nba.BioPosition),
		TeamName:    safeField(fields, nba.BioTeamName),
		TeamAbbr:    safeField(fields, nba.BioTeamAbbr),
		Height:      safeField(fields, nba.BioHeight),
		Weight:      safeField(fields, nba.BioWeight),
		BirthDate:   birthDate,
		Country:     safeField(fields, nba.BioCountry),
		DraftYear:   safeField(fields, nba.BioDraftYear),
		DraftRound:  safeField(fields, nba.BioDraftRound),
		DraftNumber: safeField(fields, nba.BioDraftNumber),
		YearsPro:    safeField(fields, nba.BioSeasonExp),
		Active:      ref.IsActive,
	}
}

func (e *Engine) compare(ctx context.Context, t turn) Result {
	name1, name2 := t.pair[0], t.pair[1]
	ref1, ok1 := e.roster.Lookup(name1)
	ref2, ok2 := e.roster.Lookup(name2)
	if !ok1 || !ok2 {
		return Failure{Kind: FailPlayerNotFound, Players: []string{name1, name2}, Compare: true}
	}

	line1, err := e.statForSeason(ctx, ref1.ID, t)
	if err != nil {
		e.logger.Warn("Compare lookup failed", "player", name1, "error", err)
		return Failure{Kind: FailBackend, Players: []string{name1, name2}, Compare: true,
			Query: fmt.Sprintf("stats for %s and %s", name1, name2)}
	}
	line2, err := e.statForSeason(ctx, ref2.ID, t)
	if err != nil {
		e.logger.Warn("Compare lookup failed", "player", name2, "error", err)
		return Failure{Kind: FailBackend, Players: []string{name1, name2}, Compare: true,
			Query: fmt.Sprintf("stats for %s and %s", name1, name2)}
	}
	if line1 == nil || line2 == nil {
		f := Failure{Kind: FailStatsUnavailable, Players: []string{name1, name2}, Compare: true}
		if t.hasSeason {
			f.Season = SeasonLabel(t.seasonYear)
		}
		return f
	}
	return CompareResult{Player1: name1, Player2: name2, Line1: *line1, Line2: *line2}
}

func (e *Engine) seasonStat(ctx context.Context, t turn) Result {
	ref, ok := e.roster.Lookup(t.player)
	if !ok {
		return Failure{Kind: FailPlayerNotFound, Players: []string{t.player}}
	}
	line, err := e.statForSeason(ctx, ref.ID, t)
	if err != nil {
		e.logger.Warn("Season stat lookup failed", "player", t.player, "error", err)
		return Failure{Kind: FailBackend, Players: []string{t.player},
			Query: "stats for " + t.player}
	}
	if line == nil {
		f := Failure{Kind: FailStatsUnavailable, Players: []string{t.player}}
		if t.hasSeason {
			f.Season = SeasonLabel(t.seasonYear)
		}
		return f
	}
	return SeasonStatResult{Player: t.player, Field: SeasonStatField(t.text), Line: *line}
}

// statForSeason returns the player's row for the turn's season, matched
// exactly on the season label with no nearest-season fallback, or the
// most recent row when no season was resolved. A nil line with nil error
// is an exact-label miss (or an empty career).
func (e *Engine) statForSeason(ctx context.Context, playerID string, t turn) (*nba.SeasonStatLine, error) {
	table, err := e.backend.CareerTable(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !t.hasSeason {
		if len(table) == 0 {
			return nil, nil
		}
		line := table[len(table)-1]
		return &line, nil
	}
	label := SeasonLabel(t.seasonYear)
	for _, line := range table {
		if line.Season == label {
			return &line, nil
		}
	}
	return nil, nil
}
