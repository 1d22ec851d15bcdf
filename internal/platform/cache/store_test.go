package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "fixtures:live", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoadTTL_ExpiresPerKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return calls.Load(), nil
	}

	ctx := context.Background()
	if _, err := store.GetOrLoadTTL(ctx, "fixtures:live", 10*time.Second, loader); err != nil {
		t.Fatalf("first load: %v", err)
	}
	now = now.Add(5 * time.Second)
	if _, err := store.GetOrLoadTTL(ctx, "fixtures:live", 10*time.Second, loader); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected cache hit inside freshness window, loader calls=%d", got)
	}

	now = now.Add(6 * time.Second)
	v, err := store.GetOrLoadTTL(ctx, "fixtures:live", 10*time.Second, loader)
	if err != nil {
		t.Fatalf("third load: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected reload after expiry, loader calls=%d", got)
	}
	if v.(int32) != 2 {
		t.Fatalf("expected fresh value 2, got %v", v)
	}
}

func TestStore_GetOrLoad_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load error")
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v != "ok" {
		t.Fatalf("expected ok, got %v", v)
	}
}

func TestStore_Sweep_RemovesExpiredEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		store.SetWithTTL(ctx, fmt.Sprintf("fixtures:date:%d", i), i, 10*time.Second)
	}
	store.SetWithTTL(ctx, "standings:39:2025", "table", time.Hour)
	store.SetWithTTL(ctx, "leagues:all", "pinned", 0)

	if got := store.Sweep(); got != 0 {
		t.Fatalf("swept %d fresh entries", got)
	}
	if got := store.Len(); got != 102 {
		t.Fatalf("len=%d want 102", got)
	}

	now = now.Add(11 * time.Second)
	if got := store.Sweep(); got != 100 {
		t.Fatalf("swept %d entries, want 100", got)
	}
	if got := store.Len(); got != 2 {
		t.Fatalf("len=%d want 2 after sweep", got)
	}
	if _, ok := store.Get(ctx, "standings:39:2025"); !ok {
		t.Fatalf("expected unexpired entry to survive sweep")
	}
	if _, ok := store.Get(ctx, "leagues:all"); !ok {
		t.Fatalf("expected entry without ttl to survive sweep")
	}
}

func TestStore_RunJanitor_SweepsUntilCancelled(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.SetWithTTL(context.Background(), "fixtures:live", "stale", time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor did not remove expired entry, len=%d", store.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("janitor did not stop after cancel")
	}
}

func TestStore_GetOrLoad_CallerCancelDoesNotFailOtherWaiters(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "value", nil
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(firstCtx, "players:276:seasons", loader)
		firstErr <- err
	}()
	<-started

	type result struct {
		value any
		err   error
	}
	second := make(chan result, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), "players:276:seasons", loader)
		second <- result{value: v, err: err}
	}()

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("first caller err=%v want context.Canceled", err)
	}
	close(release)

	res := <-second
	if res.err != nil {
		t.Fatalf("second caller failed: %v", res.err)
	}
	if res.value != "value" {
		t.Fatalf("second caller got %v", res.value)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	if _, ok := store.Get(context.Background(), "players:276:seasons"); !ok {
		t.Fatalf("expected loaded value to be cached")
	}
}

func TestStore_GetOrLoad_LoadTimeoutBoundsDetachedLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute).WithLoadTimeout(10 * time.Millisecond)
	loader := func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	_, err := store.GetOrLoad(context.Background(), "players:276:appearances", loader)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v want context.DeadlineExceeded", err)
	}
	if got := store.Len(); got != 0 {
		t.Fatalf("expected failed load not cached, len=%d", got)
	}
}

type countingObserver struct {
	hits   atomic.Int32
	misses atomic.Int32
	errors atomic.Int32
}

func (o *countingObserver) CacheHit(string)   { o.hits.Add(1) }
func (o *countingObserver) CacheMiss(string)  { o.misses.Add(1) }
func (o *countingObserver) CacheError(string) { o.errors.Add(1) }

func TestMemoryPayloadCache_ReportsHitsAndMisses(t *testing.T) {
	t.Parallel()

	obs := &countingObserver{}
	payloads := NewMemoryPayloadCache(NewStore(time.Minute).WithObserver(obs))
	loader := func(context.Context) ([]byte, error) { return []byte(`{"response":[]}`), nil }

	for i := 0; i < 3; i++ {
		raw, err := payloads.GetOrLoad(context.Background(), "standings:39:2025", time.Minute, loader)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if string(raw) != `{"response":[]}` {
			t.Fatalf("unexpected payload %q", raw)
		}
	}

	if obs.misses.Load() != 1 || obs.hits.Load() != 2 {
		t.Fatalf("expected 1 miss and 2 hits, got misses=%d hits=%d", obs.misses.Load(), obs.hits.Load())
	}
}

func TestNamespaceOf(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"fixtures:live":     "fixtures",
		"standings:39:2025": "standings",
		"plain":             "plain",
		":leading":          ":leading",
	}
	for in, want := range cases {
		if got := namespaceOf(in); got != want {
			t.Fatalf("namespaceOf(%q)=%q want %q", in, got, want)
		}
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
