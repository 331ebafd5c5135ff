package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Client struct{ Rdb *redis.Client }

func New(addr string, password string, db int) *Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	return &Client{Rdb: rdb}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Rdb.Ping(ctx).Err()
}

func (c *Client) Close() error { return c.Rdb.Close() }

func (c *Client) HIncrBy(ctx context.Context, key, field string, n int64) (int64, error) {
	return c.Rdb.HIncrBy(ctx, key, field, n).Result()
}

func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return c.Rdb.HGetAll(ctx, key).Result()
}

func (c *Client) ZIncrBy(ctx context.Context, key string, n float64, member string) (float64, error) {
	return c.Rdb.ZIncrBy(ctx, key, n, member).Result()
}

// Top returns up to n members of a sorted set, highest score first.
func (c *Client) Top(ctx context.Context, key string, n int64) ([]redis.Z, error) {
	if n <= 0 {
		return nil, nil
	}
	return c.Rdb.ZRevRangeWithScores(ctx, key, 0, n-1).Result()
}
