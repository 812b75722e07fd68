package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialized analytics summary
	summaryCacheKey = "analytics:summary"

	defaultSummaryCacheTTL = 30 * time.Second
)

// AnalyticsCacheService keeps the computed analytics summary in Redis so
// dashboard polling does not hit Postgres on every request. The lifecycle
// engine invalidates the entry after every successful write, so a stale
// summary lives at most one TTL. Cache failures are never fatal; callers
// fall back to recomputing from the store.
type AnalyticsCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewAnalyticsCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *AnalyticsCacheService {
	if ttl <= 0 {
		ttl = defaultSummaryCacheTTL
	}
	return &AnalyticsCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// GetSummary loads the cached summary into out. Returns false on a miss or
// any cache error.
func (s *AnalyticsCacheService) GetSummary(ctx context.Context, out interface{}) bool {
	if s == nil || s.redisClient == nil {
		return false
	}

	raw, err := s.redisClient.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read summary cache: %+v", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warnf("Failed to decode summary cache: %+v", err)
		return false
	}
	return true
}

// SetSummary stores the summary with the configured TTL
func (s *AnalyticsCacheService) SetSummary(ctx context.Context, summary interface{}) {
	if s == nil || s.redisClient == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		s.log.Warnf("Failed to encode summary cache: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, summaryCacheKey, raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write summary cache (non-fatal): %+v", err)
	}
}

// Invalidate drops the cached summary after an appointment write
func (s *AnalyticsCacheService) Invalidate(ctx context.Context) {
	if s == nil || s.redisClient == nil {
		return
	}

	if err := s.redisClient.Del(ctx, summaryCacheKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate summary cache (non-fatal): %+v", err)
	}
}
