// Package lock provides a room lock shared between processes through Redis.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// release deletes the key only when it still holds our token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements usecases.RoomLocker with SET NX PX. TTL bounds how
// long a crashed holder can keep a room locked.
type RedisLocker struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
	Retry  time.Duration
	Log    *zap.Logger
}

func NewRedisLocker(client *redis.Client, log *zap.Logger) *RedisLocker {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisLocker{
		Client: client,
		Prefix: "hotelres:room-lock",
		TTL:    30 * time.Second,
		Retry:  25 * time.Millisecond,
		Log:    log,
	}
}

func (l *RedisLocker) Key(roomNumber int) string {
	return fmt.Sprintf("%s:%d", l.Prefix, roomNumber)
}

func (l *RedisLocker) Lock(ctx context.Context, roomNumber int) (func(), error) {
	key := l.Key(roomNumber)
	token := uuid.NewString()
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock %s: %w", key, err)
		}
		if ok {
			break
		}
		t := time.NewTimer(l.Retry)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := release.Run(ctx, l.Client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			l.Log.Warn("redis unlock failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// NewClient builds a client for addr and pings it.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return c, nil
}
