package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is a per-process cache. Values are stored encoded so callers never share
// references with the cache.
type Memory struct {
	store *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	return &Memory{store: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, found := m.store.Get(key)
	if !found {
		return false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("unexpected cached value type %T", v)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decoding cached value: %w", err)
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache value: %w", err)
	}
	m.store.SetDefault(key, data)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}
