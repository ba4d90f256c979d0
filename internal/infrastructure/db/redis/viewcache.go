package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const viewTTL = time.Hour

// ViewCache memoizes rendered route views in Redis. Entries are keyed by
// route, generation and variant:
//
//	views:<route>:<generation>:<variant>
//
// Invalidate bumps the route's generation counter, orphaning every cached
// variant at once; the orphans age out via TTL. The cache is best-effort:
// errors degrade to misses and are never surfaced to the request path.
type ViewCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewViewCache creates a ViewCache wrapping the given Redis client.
func NewViewCache(client *redis.Client, log zerolog.Logger) *ViewCache {
	return &ViewCache{client: client, log: log}
}

// Get returns the cached payload for a route variant, or ok=false on a miss.
func (v *ViewCache) Get(ctx context.Context, route, variant string) ([]byte, bool) {
	payload, err := v.client.Get(ctx, v.key(ctx, route, variant)).Bytes()
	if err != nil {
		if err != redis.Nil {
			v.log.Warn().Err(err).Str("route", route).Msg("view cache read failed")
		}
		return nil, false
	}
	return payload, true
}

// Set stores a rendered payload for a route variant.
func (v *ViewCache) Set(ctx context.Context, route, variant string, payload []byte) {
	if err := v.client.Set(ctx, v.key(ctx, route, variant), payload, viewTTL).Err(); err != nil {
		v.log.Warn().Err(err).Str("route", route).Msg("view cache write failed")
	}
}

// Invalidate marks every cached variant of the route stale by incrementing
// its generation counter. Fire-and-forget.
func (v *ViewCache) Invalidate(ctx context.Context, route string) {
	if err := v.client.Incr(ctx, generationKey(route)).Err(); err != nil {
		v.log.Warn().Err(err).Str("route", route).Msg("view cache invalidation failed")
	}
}

func (v *ViewCache) key(ctx context.Context, route, variant string) string {
	gen, err := v.client.Get(ctx, generationKey(route)).Int64()
	if err != nil && err != redis.Nil {
		v.log.Warn().Err(err).Str("route", route).Msg("view cache generation read failed")
	}
	return fmt.Sprintf("views:%s:%d:%s", route, gen, variant)
}

func generationKey(route string) string {
	return "views:gen:" + route
}
