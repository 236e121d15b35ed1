package cache

import (
	"context"
	"fmt"
	"time"

	"travel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the quote cache. Returns nil client when no address
// is configured; callers treat a nil cache as a permanent miss.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if config.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
