package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/service"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/usecase"
)

const keyPrefix = "marketmind:analysis:"

// AnalysisCache is a Redis-backed classification result cache. Entries are
// ephemeral and expire after the configured TTL; the model is deterministic
// for fixed weights, so a cached entry is interchangeable with a fresh call.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisCache creates a new result cache
func NewAnalysisCache(client *redis.Client, ttl time.Duration) usecase.ResultCache {
	return &AnalysisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached result for the given model and text, or (nil, nil)
// when no entry exists
func (c *AnalysisCache) Get(ctx context.Context, model, text string) (*service.SentimentResult, error) {
	data, err := c.client.Get(ctx, cacheKey(model, text)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var result service.SentimentResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("cache entry corrupt: %w", err)
	}

	return &result, nil
}

// Set stores a classification result under the model and text key
func (c *AnalysisCache) Set(ctx context.Context, model, text string, result *service.SentimentResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(model, text), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}

	return nil
}

// cacheKey derives a fixed-length key from the model id and input text
func cacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return keyPrefix + hex.EncodeToString(sum[:])
}
