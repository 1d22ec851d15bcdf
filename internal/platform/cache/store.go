package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

// Observer receives hit/miss notifications, typically a metrics sink.
type Observer interface {
	CacheHit(namespace string)
	CacheMiss(namespace string)
	CacheError(namespace string)
}

type entry struct {
	value     any
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

// Store is an in-memory TTL cache with per-key load deduplication.
// Expired entries are dropped on read and by Sweep.
type Store struct {
	mu          sync.RWMutex
	entries     map[string]entry
	ttl         time.Duration
	loadTimeout time.Duration
	flight      singleflight.Group
	observer    Observer
	now         func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithObserver attaches a hit/miss observer and returns the store.
func (s *Store) WithObserver(o Observer) *Store {
	s.observer = o
	return s
}

// WithLoadTimeout bounds a shared load once it is detached from its callers.
func (s *Store) WithLoadTimeout(d time.Duration) *Store {
	s.loadTimeout = d
	return s
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(s.now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// SetWithTTL stores value under key; ttl <= 0 keeps it for the store's lifetime.
func (s *Store) SetWithTTL(_ context.Context, key string, value any, ttl time.Duration) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

// Sweep deletes every expired entry and reports how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Len reports the number of stored entries, including expired ones not yet swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	return s.GetOrLoadTTL(ctx, key, s.ttl, loader)
}

// GetOrLoadTTL returns the cached value for key or runs loader once across
// concurrent callers and caches a successful result for ttl. Failed loads are
// never cached.
//
// The shared load runs detached from any single caller, so one caller going
// away does not fail the others; each caller still stops waiting when its own
// ctx is done.
func (s *Store) GetOrLoadTTL(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, errors.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	namespace := namespaceOf(key)
	if value, ok := s.Get(ctx, key); ok {
		s.hit(namespace)
		return value, nil
	}

	ch := s.flight.DoChan(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		s.miss(namespace)
		loadCtx, cancel := detach(ctx, s.loadTimeout)
		defer cancel()
		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.SetWithTTL(ctx, key, loaded, ttl)
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

func (s *Store) hit(namespace string) {
	if s.observer != nil {
		s.observer.CacheHit(namespace)
	}
}

func (s *Store) miss(namespace string) {
	if s.observer != nil {
		s.observer.CacheMiss(namespace)
	}
}

// detach keeps ctx values (trace spans, request ids) but drops its
// cancellation, optionally bounding the result by timeout.
func detach(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if timeout > 0 {
		return context.WithTimeout(detached, timeout)
	}
	return detached, func() {}
}

// namespaceOf returns the key segment before the first ':' for metric labels.
func namespaceOf(key string) string {
	if idx := strings.IndexByte(key, ':'); idx > 0 {
		return key[:idx]
	}
	return key
}
