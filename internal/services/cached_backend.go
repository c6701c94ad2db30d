package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jwebster45206/courtside/pkg/nba"
)

// DefaultStatsTTL bounds how stale cached stat tables may get. Career
// tables and leader boards change at most nightly during a season.
const DefaultStatsTTL = time.Hour

// CachedStatsService decorates a StatsService with a read-through cache.
// Cache failures are logged and bypassed; they never fail a query.
type CachedStatsService struct {
	inner  StatsService
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

var _ StatsService = (*CachedStatsService)(nil)

func NewCachedStatsService(inner StatsService, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedStatsService {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &CachedStatsService{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// lookup reads key from the cache into dest, returning true on a hit.
func (c *CachedStatsService) lookup(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed", "key", key, "error", err)
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.Warn("Cache entry corrupt, discarding", "key", key, "error", err)
		if err := c.cache.Del(ctx, key); err != nil {
			c.logger.Warn("Cache delete failed", "key", key, "error", err)
		}
		return false
	}
	return true
}

func (c *CachedStatsService) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		c.logger.Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *CachedStatsService) ListPlayers(ctx context.Context) ([]nba.PlayerRef, error) {
	const key = "stats:roster"
	var players []nba.PlayerRef
	if c.lookup(ctx, key, &players) {
		return players, nil
	}
	players, err := c.inner.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, players)
	return players, nil
}

func (c *CachedStatsService) CareerTable(ctx context.Context, playerID string) ([]nba.SeasonStatLine, error) {
	key := "stats:career:" + playerID
	var table []nba.SeasonStatLine
	if c.lookup(ctx, key, &table) {
		return table, nil
	}
	table, err := c.inner.CareerTable(ctx, playerID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, table)
	return table, nil
}

func (c *CachedStatsService) LeagueLeaders(ctx context.Context, seasonLabel, stat string) ([]nba.LeaderRow, error) {
	key := "stats:leaders:" + seasonLabel + ":" + stat
	var rows []nba.LeaderRow
	if c.lookup(ctx, key, &rows) {
		return rows, nil
	}
	rows, err := c.inner.LeagueLeaders(ctx, seasonLabel, stat)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, rows)
	return rows, nil
}

func (c *CachedStatsService) PlayerBio(ctx context.Context, playerID string) (map[string]string, error) {
	key := "stats:bio:" + playerID
	var fields map[string]string
	if c.lookup(ctx, key, &fields) {
		return fields, nil
	}
	fields, err := c.inner.PlayerBio(ctx, playerID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fields)
	return fields, nil
}

func (c *CachedStatsService) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

func (c *CachedStatsService) Close() error {
	return c.inner.Close()
}
