package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = time.Minute
)

type statsService struct {
	statsRepo storage.StatsRepository
	cache     *redis.Client
	logger    *zap.Logger
}

// NewStatsService creates a new instance of StatsService. A nil cache client
// disables caching.
func NewStatsService(statsRepo storage.StatsRepository, cache *redis.Client, logger *zap.Logger) StatsService {
	return &statsService{statsRepo: statsRepo, cache: cache, logger: logger}
}

// GetStats returns the dashboard counters, served from the cache when fresh.
// Cache failures fall through to the database.
func (s *statsService) GetStats(ctx context.Context) (*models.Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, statsCacheKey).Bytes()
		if err == nil {
			var stats models.Stats
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("reading stats cache", zap.Error(err))
		}
	}

	stats, err := s.statsRepo.Collect(ctx)
	if err != nil {
		s.logger.Error("collecting stats", zap.Error(err))
		return nil, mapRepoError(err, "collecting stats")
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, encoded, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("writing stats cache", zap.Error(err))
			}
		}
	}
	return stats, nil
}
