package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Store is an in-process TTL cache. A zero ttl keeps entries until deleted.
// Expired entries are swept on Set at most once per ttl, and a positive
// max entries bound evicts the entry closest to expiry when full.
type Store[V any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[V]
	ttl        time.Duration
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time

	flightMu sync.Mutex
	flights  map[string]*flight[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type flight[V any] struct {
	done  chan struct{}
	value V
	err   error
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		flights: make(map[string]*flight[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithMaxEntries bounds the number of cached keys. n <= 0 means unbounded.
func (s *Store[V]) WithMaxEntries(n int) *Store[V] {
	s.mu.Lock()
	s.maxEntries = n
	s.mu.Unlock()
	return s
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.expired(e) {
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && s.expired(cur) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	now := s.now()
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 && now.Sub(s.lastSweep) >= s.ttl {
		s.sweepLocked(now)
	}
	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.sweepLocked(now)
		for len(s.entries) >= s.maxEntries {
			s.evictOldestLocked()
		}
	}
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
}

func (s *Store[V]) sweepLocked(now time.Time) {
	for key, e := range s.entries {
		if s.ttl > 0 && !e.expiresAt.After(now) {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}

func (s *Store[V]) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for key, e := range s.entries {
		if !found || e.expiresAt.Before(oldestAt) {
			oldestKey, oldestAt, found = key, e.expiresAt, true
		}
	}
	if found {
		delete(s.entries, oldestKey)
	}
}

// DeletePrefix drops every key starting with prefix.
func (s *Store[V]) DeletePrefix(_ context.Context, prefix string) {
	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or runs loader once for all
// concurrent callers of the same key. Loader errors are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, errors.New("cache loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	s.flightMu.Lock()
	if f, ok := s.flights[key]; ok {
		s.flightMu.Unlock()
		select {
		case <-f.done:
			return f.value, f.err
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	f := &flight[V]{done: make(chan struct{})}
	s.flights[key] = f
	s.flightMu.Unlock()

	if cached, ok := s.Get(ctx, key); ok {
		f.value = cached
	} else {
		f.value, f.err = loader(ctx)
		if f.err == nil {
			s.Set(ctx, key, f.value)
		}
	}
	close(f.done)

	s.flightMu.Lock()
	delete(s.flights, key)
	s.flightMu.Unlock()

	return f.value, f.err
}

func (s *Store[V]) expired(e entry[V]) bool {
	return s.ttl > 0 && !e.expiresAt.After(s.now())
}
