package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"brand-dna/internal/domain"
)

// TTL de los análisis de escritura cacheados (una semana).
const writingCacheTTL = 7 * 24 * time.Hour

// RedisEnrichmentCache guarda análisis de escritura en redis, serializados
// como JSON. Errores de redis degradan a cache miss, nunca a fallo.
type RedisEnrichmentCache struct {
	client *redis.Client
	prefix string
}

func NewRedisEnrichmentCache(client *redis.Client) *RedisEnrichmentCache {
	if client == nil {
		return nil
	}
	return &RedisEnrichmentCache{client: client, prefix: "enrich:writing:"}
}

func (c *RedisEnrichmentCache) GetWriting(ctx context.Context, key string) (domain.WritingAnalysis, bool) {
	if c == nil || c.client == nil || key == "" {
		return domain.WritingAnalysis{}, false
	}

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return domain.WritingAnalysis{}, false
	}

	var analysis domain.WritingAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return domain.WritingAnalysis{}, false
	}
	return analysis, true
}

func (c *RedisEnrichmentCache) SetWriting(ctx context.Context, key string, analysis domain.WritingAnalysis) {
	if c == nil || c.client == nil || key == "" {
		return
	}

	raw, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+key, raw, writingCacheTTL)
}
