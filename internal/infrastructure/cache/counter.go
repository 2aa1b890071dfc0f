package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter counts hits per key inside a fixed window.
type Counter interface {
	// Hit records one hit and returns the count in the current window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// hitScript increments and arms the window TTL in one atomic step. A key
// left without a TTL is re-armed on its next hit, so a window can never stick.
var hitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisCounter shares counts across processes.
type RedisCounter struct {
	client redis.Scripter
	prefix string
}

func NewRedisCounter(client redis.Scripter, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	ttl := window.Milliseconds()
	if ttl < 1 {
		ttl = 1
	}

	n, err := hitScript.Run(ctx, r.client, []string{r.prefix + key}, ttl).Int64()
	if err != nil {
		return 0, fmt.Errorf("rate counter: %w", err)
	}
	return n, nil
}

type memoryEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryCounter is the single-process fallback when Redis is disabled.
type MemoryCounter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	// drop expired windows while holding the lock; the map stays bounded by active clients
	if len(m.entries) > 1024 {
		for k, e := range m.entries {
			if !now.Before(e.resetAt) {
				delete(m.entries, k)
			}
		}
	}

	e, ok := m.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &memoryEntry{resetAt: now.Add(window)}
		m.entries[key] = e
	}
	e.count++
	return e.count, nil
}
