// Package cache holds the Redis-backed token denylist. Logout revokes a
// token for its remaining lifetime; without Redis the system degrades to
// expiry-only token invalidation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"caters-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

const revokedKeyFmt = "auth:revoked:%s"

// ErrUnavailable is returned when Redis is not connected
var ErrUnavailable = errors.New("redis unavailable")

var client *redis.Client

// Init initializes the Redis connection. A failure leaves the client nil;
// callers keep working without revocation support.
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashToken keeps raw bearer tokens out of Redis keys
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RevokeToken marks a token revoked until it would have expired anyway
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if client == nil {
		return ErrUnavailable
	}
	key := fmt.Sprintf(revokedKeyFmt, hashToken(token))
	return client.Set(ctx, key, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token has been revoked. When Redis is
// down it reports false; the token is still subject to its JWT expiry.
func IsTokenRevoked(ctx context.Context, token string) bool {
	if client == nil {
		return false
	}
	key := fmt.Sprintf(revokedKeyFmt, hashToken(token))
	n, err := client.Exists(ctx, key).Result()
	if err != nil {
		return false
	}
	return n > 0
}
