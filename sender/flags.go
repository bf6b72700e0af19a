package sender

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Flags holds the per-session stop flags. Only a stop action sets a flag; the
// orchestrator reads it and clears it when the job ends.
type Flags interface {
	Set(ctx context.Context, sessionId string) error
	IsSet(ctx context.Context, sessionId string) (bool, error)
	Clear(ctx context.Context, sessionId string) error
}

type memoryFlags struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	flags map[string]time.Time
}

// NewMemoryFlags keeps flags in process memory. A flag expires ttl after it was set.
func NewMemoryFlags(ttl time.Duration) Flags {
	return &memoryFlags{ttl: ttl, now: time.Now, flags: make(map[string]time.Time)}
}

func (m *memoryFlags) Set(_ context.Context, sessionId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, expires := range m.flags {
		if !now.Before(expires) {
			delete(m.flags, id)
		}
	}
	m.flags[sessionId] = now.Add(m.ttl)
	return nil
}

func (m *memoryFlags) IsSet(_ context.Context, sessionId string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expires, ok := m.flags[sessionId]
	if !ok {
		return false, nil
	}
	if !m.now().Before(expires) {
		delete(m.flags, sessionId)
		return false, nil
	}
	return true, nil
}

func (m *memoryFlags) Clear(_ context.Context, sessionId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.flags, sessionId)
	return nil
}

type redisFlags struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisFlags shares flags between processes through redis keys "cancel:<session id>".
func NewRedisFlags(rdb *redis.Client, ttl time.Duration) Flags {
	return &redisFlags{rdb: rdb, ttl: ttl}
}

func flagKey(sessionId string) string {
	return "cancel:" + sessionId
}

func (r *redisFlags) Set(ctx context.Context, sessionId string) error {
	return r.rdb.Set(ctx, flagKey(sessionId), "1", r.ttl).Err()
}

func (r *redisFlags) IsSet(ctx context.Context, sessionId string) (bool, error) {
	n, err := r.rdb.Exists(ctx, flagKey(sessionId)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisFlags) Clear(ctx context.Context, sessionId string) error {
	return r.rdb.Del(ctx, flagKey(sessionId)).Err()
}
