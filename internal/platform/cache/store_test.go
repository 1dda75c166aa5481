package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "Mumbai", nil
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
			v, err := store.GetOrLoad(t.Context(), "weather:mumbai", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "Mumbai" {
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

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	now := time.Date(2026, 4, 12, 15, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(t.Context(), "k", 7)
	if v, ok := store.Get(t.Context(), "k"); !ok || v != 7 {
		t.Fatalf("Get got=(%d,%v) want=(7,true)", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected entry to expire at ttl")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errUnexpectedValue
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(t.Context(), "k", loader); !errors.Is(err, errUnexpectedValue) {
		t.Fatalf("first GetOrLoad error got=%v", err)
	}
	if v, err := store.GetOrLoad(t.Context(), "k", loader); err != nil || v != "ok" {
		t.Fatalf("second GetOrLoad got=(%q,%v)", v, err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	store.Set(t.Context(), "weather:a", 1)
	store.Set(t.Context(), "weather:b", 2)
	store.Set(t.Context(), "name:a", 3)
	store.DeletePrefix(t.Context(), "weather:")

	if store.Len() != 1 {
		t.Fatalf("expected only name entry to remain, len=%d", store.Len())
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
