package cache

import (
	"context"
	"log"
	"time"

	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	approvalLockPrefix = "estimation:approval-lock:"
	releaseTimeout     = 2 * time.Second
)

// releaseScript deletes the lock only while it still holds our token, so an expired lock
// re-acquired by another instance is never removed.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type lockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

var _ lockClient = (*redis.Client)(nil)

// RedisApprovalLocker serializes approvals of one estimation across API instances.
type RedisApprovalLocker struct {
	client lockClient
	ttl    time.Duration
}

var _ interfaces.IApprovalLocker = (*RedisApprovalLocker)(nil)

func NewRedisApprovalLocker(client lockClient, ttl time.Duration) *RedisApprovalLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisApprovalLocker{client: client, ttl: ttl}
}

func (l *RedisApprovalLocker) Acquire(ctx context.Context, estimationID string) (func(), error) {
	key := approvalLockPrefix + estimationID
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Printf("[approval][lock] busy estimation_id=%s", estimationID)
		return nil, interfaces.ErrConcurrentModification
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		// The request context may already be cancelled when release runs.
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := l.client.Eval(releaseCtx, releaseScript, []string{key}, token).Err(); err != nil {
			log.Printf("[approval][lock] release failed estimation_id=%s err=%v", estimationID, err)
		}
	}, nil
}
