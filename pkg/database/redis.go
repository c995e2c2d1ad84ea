package database

import (
	"context"
	"fmt"
	"time"

	"spa-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
)

// InitRedis creates the Redis client used for wizard draft sessions
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
