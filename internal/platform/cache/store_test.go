package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute, nil)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	results := make(chan any, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- v
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		if v != "value" {
			t.Fatalf("unexpected value: %v", v)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewStore(time.Minute, clock)
	ctx := context.Background()

	store.Set(ctx, "teams", 3)
	if v, ok := store.Get(ctx, "teams"); !ok || v != 3 {
		t.Fatalf("expected cached value, got %v %v", v, ok)
	}

	clock.Advance(61 * time.Second)
	if _, ok := store.Get(ctx, "teams"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute, nil)
	ctx := context.Background()
	boom := errors.New("boom")

	if _, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := Load(ctx, store, "k", func(context.Context) (string, error) { return "ok", nil })
	if err != nil || v != "ok" {
		t.Fatalf("unexpected reload result: %q %v", v, err)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore(0, nil)
	ctx := context.Background()
	store.Set(ctx, "fixtures:t1", 1)
	store.Set(ctx, "fixtures:t2", 2)
	store.Set(ctx, "teams:list", 3)

	store.DeletePrefix(ctx, "fixtures:")
	if _, ok := store.Get(ctx, "fixtures:t1"); ok {
		t.Fatalf("expected fixtures:t1 to be removed")
	}
	if _, ok := store.Get(ctx, "teams:list"); !ok {
		t.Fatalf("expected teams:list to remain")
	}
}
