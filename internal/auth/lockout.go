package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockoutStore counts failed logins per key inside a fixed window.
// Stores are pure I/O; the threshold lives in Lockout.
type LockoutStore interface {
	// Failures returns the failures recorded in the current window.
	Failures(ctx context.Context, key string) (int, error)
	// RecordFailure adds one failure and returns the new count. The window
	// starts at the first failure.
	RecordFailure(ctx context.Context, key string, window time.Duration) (int, error)
	Clear(ctx context.Context, key string) error
}

// Lockout blocks a key after MaxAttempts failures within Window.
type Lockout struct {
	store       LockoutStore
	maxAttempts int
	window      time.Duration
}

func NewLockout(store LockoutStore, maxAttempts int, window time.Duration) *Lockout {
	return &Lockout{store: store, maxAttempts: maxAttempts, window: window}
}

// Window is the lock duration reported to clients.
func (l *Lockout) Window() time.Duration {
	return l.window
}

func (l *Lockout) Locked(ctx context.Context, key string) (bool, error) {
	n, err := l.store.Failures(ctx, key)
	if err != nil {
		return false, err
	}
	return n >= l.maxAttempts, nil
}

func (l *Lockout) Fail(ctx context.Context, key string) (int, error) {
	return l.store.RecordFailure(ctx, key, l.window)
}

func (l *Lockout) Reset(ctx context.Context, key string) error {
	return l.store.Clear(ctx, key)
}

type lockoutEntry struct {
	failures  int
	expiresAt time.Time
}

// MemoryLockoutStore keeps counters in process. Counters are not shared
// between instances. Expired counters are pruned whenever a failure is
// recorded.
type MemoryLockoutStore struct {
	mu      sync.Mutex
	entries map[string]lockoutEntry
	now     func() time.Time
}

func NewMemoryLockoutStore() *MemoryLockoutStore {
	return &MemoryLockoutStore{
		entries: make(map[string]lockoutEntry),
		now:     time.Now,
	}
}

// WithClock replaces the clock used for window expiry.
func (s *MemoryLockoutStore) WithClock(now func() time.Time) *MemoryLockoutStore {
	s.now = now
	return s
}

func (s *MemoryLockoutStore) Failures(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return 0, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return 0, nil
	}
	return e.failures, nil
}

func (s *MemoryLockoutStore) RecordFailure(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, old := range s.entries {
		if !now.Before(old.expiresAt) {
			delete(s.entries, k)
		}
	}

	e, ok := s.entries[key]
	if !ok {
		e = lockoutEntry{expiresAt: now.Add(window)}
	}
	e.failures++
	s.entries[key] = e
	return e.failures, nil
}

// Len reports how many keys currently hold a counter.
func (s *MemoryLockoutStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *MemoryLockoutStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

const lockoutKeyPrefix = "login:failures:"

// RedisLockoutStore shares counters between instances. Each key expires
// with its window.
type RedisLockoutStore struct {
	client *redis.Client
}

func NewRedisLockoutStore(client *redis.Client) *RedisLockoutStore {
	return &RedisLockoutStore{client: client}
}

func (s *RedisLockoutStore) Failures(ctx context.Context, key string) (int, error) {
	n, err := s.client.Get(ctx, lockoutKeyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get login failures: %w", err)
	}
	return n, nil
}

func (s *RedisLockoutStore) RecordFailure(ctx context.Context, key string, window time.Duration) (int, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, lockoutKeyPrefix+key)
		pipe.ExpireNX(ctx, lockoutKeyPrefix+key, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("record login failure: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *RedisLockoutStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, lockoutKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("clear login failures: %w", err)
	}
	return nil
}
