// README: Assessment cache backed by Redis. Keys are route+vehicle pairs;
// entries expire so stale weather never drives an old score.
package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "risk:assessment:"

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Cache{redis: client, ttl: ttl}
}

// Key builds the cache key for a route/vehicle pair. Case and spacing are
// normalised so "Toyota Hilux" and "toyota hilux" share an entry.
func Key(origin, destination, vehicle string) string {
	parts := []string{origin, destination, vehicle}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return cacheKeyPrefix + strings.Join(parts, "|")
}

// Get returns the cached assessment if present. A miss is (nil, false, nil).
func (c *Cache) Get(ctx context.Context, key string) (*Assessment, bool, error) {
	val, err := c.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("risk cache get: %w", err)
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(val), &assessment); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, false, nil
	}
	return &assessment, true, nil
}

// Put stores the assessment under the key with the configured TTL.
func (c *Cache) Put(ctx context.Context, key string, assessment *Assessment) error {
	payload, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("risk cache marshal: %w", err)
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("risk cache set: %w", err)
	}
	return nil
}
