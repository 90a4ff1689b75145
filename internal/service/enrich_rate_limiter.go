package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// EnrichRateLimiter acota las llamadas de enriquecimiento IA por usuario.
type EnrichRateLimiter interface {
	Allow(userID string) bool
}

const redisEnrichAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisEnrichRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

func NewRedisEnrichRateLimiter(client *redis.Client, window time.Duration, max int) EnrichRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisEnrichRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "enrich:rl:",
	}
}

// Allow falla abierto: si redis no responde, el enriquecimiento sigue siendo
// best-effort y no queremos tumbar el workshop por el limitador.
func (l *redisEnrichRateLimiter) Allow(userID string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key := strings.TrimSpace(userID)
	if key == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisEnrichAllowScript, []string{l.prefix + key}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
