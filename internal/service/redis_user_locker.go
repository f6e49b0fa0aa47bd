package service

import (
	"context"
	"fmt"
	"time"

	"roboadvisor/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultUserLockTTL       = 10 * time.Second
	defaultUserLockRetryWait = 20 * time.Millisecond
)

// deletes the key only while it still holds our token, so an expired lock
// that another instance re-acquired is left alone
var releaseUserLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisUserLockerHandler extends the in-process lock across every instance
// sharing one Redis. The TTL bounds how long a crashed holder blocks a user.
type redisUserLockerHandler struct {
	Client    *redis.Client
	TTL       time.Duration
	RetryWait time.Duration
	local     *userLockerHandler
}

func NewRedisUserLocker(client *redis.Client, ttl time.Duration) UserLocker {
	if ttl <= 0 {
		ttl = DefaultUserLockTTL
	}
	return &redisUserLockerHandler{
		Client:    client,
		TTL:       ttl,
		RetryWait: defaultUserLockRetryWait,
		local:     NewUserLocker().(*userLockerHandler),
	}
}

func userLockKey(userID string) string {
	return fmt.Sprintf("lock:user:%s", userID)
}

func (h *redisUserLockerHandler) Lock(ctx context.Context, userID string) (func(), error) {
	// goroutines in this process queue locally instead of polling Redis
	unlockLocal := h.local.lock(userID)

	key := userLockKey(userID)
	token := uuid.NewString()
	for {
		ok, err := h.Client.SetNX(ctx, key, token, h.TTL).Result()
		if err != nil {
			unlockLocal()
			return nil, fmt.Errorf("failed to acquire lock for user %s: %w", userID, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			unlockLocal()
			return nil, fmt.Errorf("failed to acquire lock for user %s: %w", userID, ctx.Err())
		case <-time.After(h.RetryWait):
		}
	}

	log := logger.FromContext(ctx)
	return func() {
		defer unlockLocal()

		releaseCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := releaseUserLockScript.Run(releaseCtx, h.Client, []string{key}, token).Err(); err != nil {
			log.Warnw("failed to release user lock", "userID", userID, "error", err)
		}
	}, nil
}
