// Package cachetest provides an in-memory cache.Cache for tests.
package cachetest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCache is a map-backed cache.Cache with real round trips.
// Expirations are recorded but not enforced.
type MemoryCache struct {
	mu   sync.Mutex
	Data map[string]string
	TTLs map[string]time.Duration
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{Data: map[string]string{}, TTLs: map[string]time.Duration{}}
}

func (m *MemoryCache) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case string:
		m.Data[key] = v
	case []byte:
		m.Data[key] = string(v)
	default:
		m.Data[key] = fmt.Sprint(v)
	}
	m.TTLs[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *MemoryCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.Data[k]; ok {
			delete(m.Data, k)
			delete(m.TTLs, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *MemoryCache) Close() error { return nil }
