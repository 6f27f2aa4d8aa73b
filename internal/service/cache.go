package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

// ProductCache stores products by id.
//
// Get reports hit=false on a miss. A hit with a nil product means the
// product was deleted. Fill only writes when the key is empty, so a read
// that raced with Set or Forget cannot put an older row back.
type ProductCache interface {
	Get(ctx context.Context, id string) (product *model.Product, hit bool, err error)
	Fill(ctx context.Context, product *model.Product) error
	Set(ctx context.Context, product *model.Product) error
	Forget(ctx context.Context, id string) error
}

// absentMarker is the value stored for a deleted product.
const absentMarker = "null"

// RedisProductCache keeps JSON encoded products under product:<id>.
type RedisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisProductCache(client redis.Cmdable, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

func productKey(id string) string {
	return "product:" + id
}

func (c *RedisProductCache) Get(ctx context.Context, id string) (*model.Product, bool, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached product: %w", err)
	}
	if string(data) == absentMarker {
		return nil, true, nil
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached product: %w", err)
	}
	return &product, true, nil
}

// Fill caches a product read from the database unless the key already
// holds a value.
func (c *RedisProductCache) Fill(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	return c.client.SetNX(ctx, productKey(product.ID), data, c.ttl).Err()
}

// Set overwrites the cached product with the row a write just returned.
func (c *RedisProductCache) Set(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	return c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err()
}

// Forget marks a product as deleted for one TTL.
func (c *RedisProductCache) Forget(ctx context.Context, id string) error {
	return c.client.Set(ctx, productKey(id), absentMarker, c.ttl).Err()
}
