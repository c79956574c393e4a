// Package cachedschedules decorates a ScheduleSource with a shared Redis
// cache. Month schedules change slowly, so responses are kept across
// requests; computed itineraries are never stored.
package cachedschedules

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/interconnect"
)

const cacheExpiration = 6 * time.Hour

type Source struct {
	Upstream interconnect.ScheduleSource

	Cache *cache.Cache[string]
}

func NewSource(upstream interconnect.ScheduleSource, redisClient *redis.Client) *Source {
	redisStore := redisstore.NewRedis(redisClient, store.WithExpiration(cacheExpiration))

	return &Source{
		Upstream: upstream,
		Cache:    cache.New[string](redisStore),
	}
}

func (s *Source) Schedule(ctx context.Context, origin string, destination string, year int, month time.Month) (*fidf.MonthSchedule, error) {
	key := fmt.Sprintf("schedules/%s/%s/%d/%d", origin, destination, year, int(month))

	if encoded, err := s.Cache.Get(ctx, key); err == nil {
		var schedule fidf.MonthSchedule
		if err := json.Unmarshal([]byte(encoded), &schedule); err == nil {
			return &schedule, nil
		}

		log.Warn().Str("key", key).Msg("Discarding undecodable cached schedule")
	}

	schedule, err := s.Upstream.Schedule(ctx, origin, destination, year, month)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(schedule); err == nil {
		if err := s.Cache.Set(ctx, key, string(encoded)); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("Failed to cache schedule")
		}
	}

	return schedule, nil
}
