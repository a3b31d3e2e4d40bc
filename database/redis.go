package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func GetRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisClient{client: client}, nil
}

// NewRedisClientFromConn wraps an existing connection. Used by tests to plug
// in a miniredis instance.
func NewRedisClientFromConn(client *redis.Client) *RedisClient {
	return &RedisClient{client: client}
}

func refreshTokenKey(userID uint) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}

// SetRefreshToken stores the active refresh token for a user. Issuing a new
// one replaces the previous token, so only the latest refresh token works.
func (r *RedisClient) SetRefreshToken(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	return r.client.Set(ctx, refreshTokenKey(userID), token, ttl).Err()
}

func (r *RedisClient) GetRefreshToken(ctx context.Context, userID uint) (string, error) {
	return r.client.Get(ctx, refreshTokenKey(userID)).Result()
}

func (r *RedisClient) DeleteRefreshToken(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, refreshTokenKey(userID)).Err()
}
