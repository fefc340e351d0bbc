package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLockClient struct {
	held      map[string]string
	setErr    error
	evalCalls int
	lastTTL   time.Duration
}

func newFakeLockClient() *fakeLockClient {
	return &fakeLockClient{held: map[string]string{}}
}

func (f *fakeLockClient) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	f.lastTTL = ttl
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.held[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.held[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeLockClient) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.evalCalls++
	if f.held[keys[0]] == args[0].(string) {
		delete(f.held, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedisApprovalLocker_ExclusiveUntilReleased(t *testing.T) {
	client := newFakeLockClient()
	locker := NewRedisApprovalLocker(client, 5*time.Second)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.lastTTL)

	_, err = locker.Acquire(ctx, "est-1")
	assert.ErrorIs(t, err, interfaces.ErrConcurrentModification)

	other, err := locker.Acquire(ctx, "est-2")
	require.NoError(t, err)
	other()

	release()
	release()
	assert.Equal(t, 2, client.evalCalls)

	again, err := locker.Acquire(ctx, "est-1")
	require.NoError(t, err)
	again()
}

func TestRedisApprovalLocker_ReleaseKeepsForeignLock(t *testing.T) {
	client := newFakeLockClient()
	locker := NewRedisApprovalLocker(client, time.Second)

	release, err := locker.Acquire(context.Background(), "est-1")
	require.NoError(t, err)

	// Simulates expiry followed by another instance taking the lock.
	client.held[approvalLockPrefix+"est-1"] = "someone-else"
	release()

	assert.Equal(t, "someone-else", client.held[approvalLockPrefix+"est-1"])
}

func TestRedisApprovalLocker_ClientError(t *testing.T) {
	client := newFakeLockClient()
	client.setErr = errors.New("connection refused")
	locker := NewRedisApprovalLocker(client, 0)

	_, err := locker.Acquire(context.Background(), "est-1")
	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, 10*time.Second, client.lastTTL)
}
