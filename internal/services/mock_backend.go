package services

import (
	"context"
	"fmt"

	"github.com/jwebster45206/courtside/pkg/nba"
)

// MockStatsService is an in-memory stats backend used in tests and for
// offline development runs (STATS_PROVIDER=mock). Error fields let tests
// exercise the backend-failure paths per call.
type MockStatsService struct {
	Players map[string][]nba.SeasonStatLine // player ID -> career table
	Bios    map[string]map[string]string    // player ID -> bio fields
	Leaders map[string][]nba.LeaderRow      // season label -> ranked rows
	Roster  []nba.PlayerRef

	ListError    error
	CareerError  error
	LeadersError error
	BioError     error
	PingError    error
}

var _ StatsService = (*MockStatsService)(nil)

// NewMockStatsService returns a mock pre-loaded with a small fixture
// roster and enough stat history to answer every query shape.
func NewMockStatsService() *MockStatsService {
	m := &MockStatsService{
		Players: make(map[string][]nba.SeasonStatLine),
		Bios:    make(map[string]map[string]string),
		Leaders: make(map[string][]nba.LeaderRow),
	}
	m.seed()
	return m
}

func (m *MockStatsService) seed() {
	m.Roster = []nba.PlayerRef{
		{ID: "2544", FullName: "LeBron James", IsActive: true},
		{ID: "201939", FullName: "Stephen Curry", IsActive: true},
		{ID: "201142", FullName: "Kevin Durant", IsActive: true},
		{ID: "203999", FullName: "Nikola Jokić", IsActive: true},
		{ID: "203507", FullName: "Giannis Antetokounmpo", IsActive: true},
		{ID: "893", FullName: "Michael Jordan", IsActive: false},
	}

	m.Players["2544"] = []nba.SeasonStatLine{
		{Season: "2018-19", Team: "LAL", Points: 27.4, Assists: 8.3, Rebounds: 8.5, Games: 55, FGPct: 0.51},
		{Season: "2019-20", Team: "LAL", Points: 25.3, Assists: 10.2, Rebounds: 7.8, Games: 67, FGPct: 0.493},
		{Season: "2020-21", Team: "LAL", Points: 25.0, Assists: 7.8, Rebounds: 7.7, Games: 45, FGPct: 0.513},
		{Season: "2021-22", Team: "LAL", Points: 30.3, Assists: 6.2, Rebounds: 8.2, Games: 56, FGPct: 0.524},
	}
	m.Players["201939"] = []nba.SeasonStatLine{
		{Season: "2019-20", Team: "GSW", Points: 20.8, Assists: 6.6, Rebounds: 5.2, Games: 5, FGPct: 0.402},
		{Season: "2020-21", Team: "GSW", Points: 32.0, Assists: 5.8, Rebounds: 5.5, Games: 63, FGPct: 0.482},
		{Season: "2021-22", Team: "GSW", Points: 25.5, Assists: 6.3, Rebounds: 5.2, Games: 64, FGPct: 0.437},
	}
	m.Players["201142"] = []nba.SeasonStatLine{
		{Season: "2020-21", Team: "BKN", Points: 26.9, Assists: 5.6, Rebounds: 7.1, Games: 35, FGPct: 0.537},
		{Season: "2021-22", Team: "BKN", Points: 29.9, Assists: 6.4, Rebounds: 7.4, Games: 55, FGPct: 0.518},
	}
	m.Players["203999"] = []nba.SeasonStatLine{
		{Season: "2020-21", Team: "DEN", Points: 26.4, Assists: 8.3, Rebounds: 10.8, Games: 72, FGPct: 0.566},
		{Season: "2021-22", Team: "DEN", Points: 27.1, Assists: 7.9, Rebounds: 13.8, Games: 74, FGPct: 0.583},
	}
	m.Players["203507"] = []nba.SeasonStatLine{
		{Season: "2020-21", Team: "MIL", Points: 28.1, Assists: 5.9, Rebounds: 11.0, Games: 61, FGPct: 0.569},
		{Season: "2021-22", Team: "MIL", Points: 29.9, Assists: 5.8, Rebounds: 11.6, Games: 67, FGPct: 0.553},
	}
	m.Players["893"] = []nba.SeasonStatLine{
		{Season: "2001-02", Team: "WAS", Points: 22.9, Assists: 5.2, Rebounds: 5.7, Games: 60, FGPct: 0.416},
		{Season: "2002-03", Team: "WAS", Points: 20.0, Assists: 3.8, Rebounds: 6.1, Games: 82, FGPct: 0.445},
	}

	m.Leaders["2021-22"] = []nba.LeaderRow{
		{PlayerName: "Joel Embiid", Team: "PHI", Value: 30.6},
		{PlayerName: "LeBron James", Team: "LAL", Value: 30.3},
		{PlayerName: "Giannis Antetokounmpo", Team: "MIL", Value: 29.9},
		{PlayerName: "Kevin Durant", Team: "BKN", Value: 29.9},
		{PlayerName: "Luka Dončić", Team: "DAL", Value: 28.4},
		{PlayerName: "Trae Young", Team: "ATL", Value: 28.4},
	}
	m.Leaders["2019-20"] = []nba.LeaderRow{
		{PlayerName: "James Harden", Team: "HOU", Value: 34.3},
		{PlayerName: "Bradley Beal", Team: "WAS", Value: 30.5},
		{PlayerName: "Damian Lillard", Team: "POR", Value: 30.0},
		{PlayerName: "Trae Young", Team: "ATL", Value: 29.6},
		{PlayerName: "Giannis Antetokounmpo", Team: "MIL", Value: 29.5},
	}

	m.Bios["2544"] = map[string]string{
		nba.BioName:        "LeBron James",
		nba.BioPosition:    "Forward",
		nba.BioTeamName:    "Los Angeles Lakers",
		nba.BioTeamAbbr:    "LAL",
		nba.BioHeight:      "6-9",
		nba.BioWeight:      "250",
		nba.BioBirthDate:   "1984-12-30T00:00:00",
		nba.BioCountry:     "USA",
		nba.BioDraftYear:   "2003",
		nba.BioDraftRound:  "1",
		nba.BioDraftNumber: "1",
		nba.BioSeasonExp:   "21",
	}
	m.Bios["201939"] = map[string]string{
		nba.BioName:        "Stephen Curry",
		nba.BioPosition:    "Guard",
		nba.BioTeamName:    "Golden State Warriors",
		nba.BioTeamAbbr:    "GSW",
		nba.BioHeight:      "6-2",
		nba.BioWeight:      "185",
		nba.BioBirthDate:   "1988-03-14T00:00:00",
		nba.BioCountry:     "USA",
		nba.BioDraftYear:   "2009",
		nba.BioDraftRound:  "1",
		nba.BioDraftNumber: "7",
		nba.BioSeasonExp:   "15",
	}
}

func (m *MockStatsService) ListPlayers(ctx context.Context) ([]nba.PlayerRef, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Roster, nil
}

func (m *MockStatsService) CareerTable(ctx context.Context, playerID string) ([]nba.SeasonStatLine, error) {
	if m.CareerError != nil {
		return nil, m.CareerError
	}
	return m.Players[playerID], nil
}

func (m *MockStatsService) LeagueLeaders(ctx context.Context, seasonLabel, stat string) ([]nba.LeaderRow, error) {
	if m.LeadersError != nil {
		return nil, m.LeadersError
	}
	rows, ok := m.Leaders[seasonLabel]
	if !ok {
		return nil, fmt.Errorf("no leaders table for season %s", seasonLabel)
	}
	return rows, nil
}

func (m *MockStatsService) PlayerBio(ctx context.Context, playerID string) (map[string]string, error) {
	if m.BioError != nil {
		return nil, m.BioError
	}
	bio, ok := m.Bios[playerID]
	if !ok {
		return nil, fmt.Errorf("no bio record for player %s", playerID)
	}
	return bio, nil
}

func (m *MockStatsService) Ping(ctx context.Context) error {
	return m.PingError
}

func (m *MockStatsService) Close() error {
	return nil
}
