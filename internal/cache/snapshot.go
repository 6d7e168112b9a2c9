// Package cache keeps short-lived snapshots of the candidate and open-job
// collections so listing and match lookups skip the database on hot paths.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/models"
)

const (
	keyPrefix      = "talent:snapshot:"
	candidatesName = "candidates"
	openJobsName   = "jobs:open"
)

// Loader reads a collection from the source of truth.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Snapshots serves whole collections read-through. Backend failures are
// logged and fall back to the loader.
type Snapshots interface {
	Candidates(ctx context.Context, load Loader[models.Candidate]) ([]models.Candidate, error)
	OpenJobs(ctx context.Context, load Loader[models.Job]) ([]models.Job, error)
	InvalidateCandidates(ctx context.Context)
	InvalidateJobs(ctx context.Context)
}

// redisSnapshots stores each collection under a generation number.
// Invalidation bumps the generation, so a reader that loaded before a write
// can only store its result under a generation nobody reads any more.
type redisSnapshots struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisSnapshots(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) Snapshots {
	return &redisSnapshots{rdb: rdb, ttl: ttl, logger: logger}
}

func (s *redisSnapshots) Candidates(ctx context.Context, load Loader[models.Candidate]) ([]models.Candidate, error) {
	return readThrough(ctx, s, candidatesName, load)
}

func (s *redisSnapshots) OpenJobs(ctx context.Context, load Loader[models.Job]) ([]models.Job, error) {
	return readThrough(ctx, s, openJobsName, load)
}

func (s *redisSnapshots) InvalidateCandidates(ctx context.Context) {
	s.bump(ctx, candidatesName)
}

func (s *redisSnapshots) InvalidateJobs(ctx context.Context) {
	s.bump(ctx, openJobsName)
}

func generationKey(name string) string {
	return keyPrefix + name + ":gen"
}

func dataKey(name string, generation int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, name, generation)
}

func readThrough[T any](ctx context.Context, s *redisSnapshots, name string, load Loader[T]) ([]T, error) {
	generation, ok := s.generation(ctx, name)
	if !ok {
		return load(ctx)
	}

	key := dataKey(name, generation)
	var cached []T
	if s.get(ctx, key, &cached) {
		return cached, nil
	}

	fresh, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.set(ctx, key, fresh)
	return fresh, nil
}

func (s *redisSnapshots) generation(ctx context.Context, name string) (int64, bool) {
	generation, err := s.rdb.Get(ctx, generationKey(name)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		s.logger.Warn("snapshot generation read failed", zap.String("collection", name), zap.Error(err))
		return 0, false
	}
	return generation, true
}

func (s *redisSnapshots) get(ctx context.Context, key string, dst interface{}) bool {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("snapshot read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("snapshot decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *redisSnapshots) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("snapshot encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisSnapshots) bump(ctx context.Context, name string) {
	if err := s.rdb.Incr(ctx, generationKey(name)).Err(); err != nil {
		s.logger.Warn("snapshot invalidation failed", zap.String("collection", name), zap.Error(err))
	}
}

type noopSnapshots struct{}

// NewNoop returns a cache that always loads. Used when Redis is not configured.
func NewNoop() Snapshots {
	return noopSnapshots{}
}

func (noopSnapshots) Candidates(ctx context.Context, load Loader[models.Candidate]) ([]models.Candidate, error) {
	return load(ctx)
}

func (noopSnapshots) OpenJobs(ctx context.Context, load Loader[models.Job]) ([]models.Job, error) {
	return load(ctx)
}

func (noopSnapshots) InvalidateCandidates(context.Context) {}
func (noopSnapshots) InvalidateJobs(context.Context) {}
