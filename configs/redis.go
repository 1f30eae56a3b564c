package configs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// Redis returns the shared redis client. The client does not dial until first
// use, so calling this from route setup is safe without a live server.
func Redis() *redis.Client {
	redisOnce.Do(func() {
		opts, err := redis.ParseURL(LoadEnvOr("REDIS_URL", "redis://localhost:6379"))
		if err != nil {
			log.Fatal(err)
		}
		redisClient = redis.NewClient(opts)
	})

	return redisClient
}

// PingRedis verifies the connection at startup.
func PingRedis(ctx context.Context) error {
	return Redis().Ping(ctx).Err()
}

// RevokeSession adds a session token to the blacklist until its natural expiry.
func RevokeSession(ctx context.Context, token string, ttl time.Duration) error {
	_, err := Redis().Set(ctx, sessionBlacklistKey(token), true, ttl).Result()
	return err
}

// IsSessionLive reports whether a session token has not been revoked.
func IsSessionLive(ctx context.Context, token string) bool {
	_, err := Redis().Get(ctx, sessionBlacklistKey(token)).Result()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		log.Printf("Error while checking session blacklist: %s", err)
		return false
	}

	// Token is in the blacklist, so it's revoked
	return false
}

func sessionBlacklistKey(token string) string {
	return "session:revoked:" + token
}
