// Package redis holds Redis-backed coordination for the trigger host.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/promptcycle-backend/internal/config"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

const keyPrefix = "cycle:tick:"

// releaseScript deletes the claim only while it still holds our token, so a
// late release never drops a claim taken over after expiry.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Claim identifies one successful tick claim.
type Claim struct {
	Key   string
	Token string
}

// TickGuard makes a trigger tick run at most once per cycle date across
// every host that shares the Redis instance.
type TickGuard struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient parses cfg.URL and pings the server.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// NewTickGuard creates a guard whose claims expire after ttl.
func NewTickGuard(client *goredis.Client, ttl time.Duration) *TickGuard {
	return &TickGuard{client: client, ttl: ttl}
}

func claimKey(tick cycle.Tick, date cycle.Date) string {
	return keyPrefix + string(tick) + ":" + date.String()
}

// Claim takes the (tick, date) slot. ok is false when another invocation
// already holds it.
func (g *TickGuard) Claim(ctx context.Context, tick cycle.Tick, date cycle.Date) (c Claim, ok bool, err error) {
	c = Claim{Key: claimKey(tick, date), Token: uuid.NewString()}

	ok, err = g.client.SetNX(ctx, c.Key, c.Token, g.ttl).Result()
	if err != nil {
		return Claim{}, false, fmt.Errorf("claim %s: %w", c.Key, err)
	}
	if !ok {
		return Claim{}, false, nil
	}
	return c, true, nil
}

// Release gives the slot back so a retry can run. Releasing a claim that
// expired or was taken over is a no-op.
func (g *TickGuard) Release(ctx context.Context, c Claim) error {
	err := releaseScript.Run(ctx, g.client, []string{c.Key}, c.Token).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("release %s: %w", c.Key, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (g *TickGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}
