package flash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps flash messages in Redis so they survive process
// restarts along with the sessions they belong to.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

// Ping verifies the connection to Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, severity Severity, message string) error {
	return s.client.Set(ctx, key(sessionID, severity), message, s.ttl).Err()
}

func (s *RedisStore) Take(ctx context.Context, sessionID string, severity Severity) (string, bool, error) {
	message, err := s.client.GetDel(ctx, key(sessionID, severity)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return message, true, nil
}

// Close releases the underlying client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func key(sessionID string, severity Severity) string {
	return fmt.Sprintf("flash:%s:%s", sessionID, severity)
}
