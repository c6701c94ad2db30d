package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jwebster45206/courtside/pkg/engine"
	"github.com/jwebster45206/courtside/pkg/nba"
)

const (
	defaultNBABaseURL = "https://stats.nba.com/stats"

	// stats.nba.com rejects requests without browser-like headers.
	nbaUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	nbaReferer   = "https://www.nba.com/"
)

// NBAService implements StatsService against the stats.nba.com JSON API,
// the same endpoints the league's own site uses. Responses arrive as
// tabular resultSets: a list of column headers plus untyped rows.
type NBAService struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ StatsService = (*NBAService)(nil)

func NewNBAService(baseURL string, logger *slog.Logger) *NBAService {
	if baseURL == "" {
		baseURL = defaultNBABaseURL
	}
	return &NBAService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// statsResponse is the envelope for every stats.nba.com endpoint. Most
// endpoints return resultSets; leagueleaders returns the singular form.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// first returns the primary result set regardless of envelope form.
func (sr *statsResponse) first() (*resultSet, error) {
	if len(sr.ResultSets) > 0 {
		return &sr.ResultSets[0], nil
	}
	if sr.ResultSet != nil {
		return sr.ResultSet, nil
	}
	return nil, fmt.Errorf("%s response contains no result sets", sr.Resource)
}

func (rs *resultSet) columnIndex() map[string]int {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return idx
}

// cell readers tolerate the API's loose typing: numbers arrive as JSON
// numbers or strings, and absent values as null.

func cellString(row []interface{}, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellFloat(row []interface{}, idx map[string]int, col string) float64 {
	i, ok := idx[col]
	if !ok || i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func cellInt(row []interface{}, idx map[string]int, col string) int {
	return int(cellFloat(row, idx, col))
}

func (s *NBAService) get(ctx context.Context, endpoint string, params url.Values) (*resultSet, error) {
	reqURL := s.baseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", nbaUserAgent)
	req.Header.Set("Referer", nbaReferer)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("Failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	var sr statsResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	rs, err := sr.first()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s response shape: %w", endpoint, err)
	}
	return rs, nil
}

// ListPlayers returns the full historical roster in the API's order.
func (s *NBAService) ListPlayers(ctx context.Context) ([]nba.PlayerRef, error) {
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", currentSeasonLabel(time.Now()))
	params.Set("IsOnlyCurrentSeason", "0")

	rs, err := s.get(ctx, "commonallplayers", params)
	if err != nil {
		return nil, err
	}
	idx := rs.columnIndex()
	players := make([]nba.PlayerRef, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		players = append(players, nba.PlayerRef{
			ID:       cellString(row, idx, "PERSON_ID"),
			FullName: cellString(row, idx, "DISPLAY_FIRST_LAST"),
			IsActive: cellInt(row, idx, "ROSTERSTATUS") == 1,
		})
	}
	return players, nil
}

// CareerTable returns the player's regular-season per-game lines,
// oldest first, as the API orders them.
func (s *NBAService) CareerTable(ctx context.Context, playerID string) ([]nba.SeasonStatLine, error) {
	params := url.Values{}
	params.Set("PlayerID", playerID)
	params.Set("PerMode", "PerGame")

	rs, err := s.get(ctx, "playercareerstats", params)
	if err != nil {
		return nil, err
	}
	idx := rs.columnIndex()
	table := make([]nba.SeasonStatLine, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		table = append(table, nba.SeasonStatLine{
			Season:   cellString(row, idx, "SEASON_ID"),
			Team:     cellString(row, idx, "TEAM_ABBREVIATION"),
			Points:   cellFloat(row, idx, "PTS"),
			Assists:  cellFloat(row, idx, "AST"),
			Rebounds: cellFloat(row, idx, "REB"),
			Games:    cellInt(row, idx, "GP"),
			FGPct:    cellFloat(row, idx, "FG_PCT"),
		})
	}
	return table, nil
}

// LeagueLeaders returns the per-game leaders for a season, ranked
// descending by the requested stat category.
func (s *NBAService) LeagueLeaders(ctx context.Context, seasonLabel, stat string) ([]nba.LeaderRow, error) {
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("PerMode", "PerGame")
	params.Set("Scope", "S")
	params.Set("Season", seasonLabel)
	params.Set("SeasonType", "Regular Season")
	params.Set("StatCategory", stat)

	rs, err := s.get(ctx, "leagueleaders", params)
	if err != nil {
		return nil, err
	}
	idx := rs.columnIndex()
	rows := make([]nba.LeaderRow, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		rows = append(rows, nba.LeaderRow{
			PlayerName: cellString(row, idx, "PLAYER"),
			Team:       cellString(row, idx, "TEAM"),
			Value:      cellFloat(row, idx, stat),
		})
	}
	return rows, nil
}

// PlayerBio returns the raw biographical record, one value per column.
// Values are stringified; absent columns are simply missing keys.
func (s *NBAService) PlayerBio(ctx context.Context, playerID string) (map[string]string, error) {
	params := url.Values{}
	params.Set("PlayerID", playerID)

	rs, err := s.get(ctx, "commonplayerinfo", params)
	if err != nil {
		return nil, err
	}
	if len(rs.RowSet) == 0 {
		return nil, fmt.Errorf("no bio record for player %s", playerID)
	}
	row := rs.RowSet[0]
	idx := rs.columnIndex()
	fields := make(map[string]string, len(rs.Headers))
	for _, h := range rs.Headers {
		if v := cellString(row, idx, h); v != "" {
			fields[h] = v
		}
	}
	return fields, nil
}

// Ping checks that the stats host is reachable. Any HTTP response
// counts; the API answers probe paths with errors but only when up.
func (s *NBAService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}
	req.Header.Set("User-Agent", nbaUserAgent)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stats host unreachable: %w", err)
	}
	return resp.Body.Close()
}

func (s *NBAService) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}

// currentSeasonLabel picks the season in progress at the given time.
// New seasons tip off in October.
func currentSeasonLabel(now time.Time) string {
	year := now.Year()
	if now.Month() >= time.October {
		year++
	}
	return engine.SeasonLabel(year)
}
