package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ds124wfegd/event-catalog/internal/entity"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:full"

// CatalogCache keeps the assembled full-catalog view in redis. Every
// mutating operation invalidates it, so a hit is always current.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *CatalogCache) SetCatalog(ctx context.Context, tracks []entity.TrackView) error {
	data, err := json.Marshal(tracks)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, catalogKey, data, c.ttl).Err()
}

func (c *CatalogCache) GetCatalog(ctx context.Context) ([]entity.TrackView, error) {
	data, err := c.client.Get(ctx, catalogKey).Result()
	if err != nil {
		return nil, err
	}

	var tracks []entity.TrackView
	err = json.Unmarshal([]byte(data), &tracks)
	if err != nil {
		return nil, err
	}

	return tracks, nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
