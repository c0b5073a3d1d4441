package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the optional detail-page cache. The caller treats a
// failure as "run without a cache", so the ping is bounded rather than
// left to block startup.
func InitRedis(addr string, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}
