package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/pkg/cache"
)

// fakeClock — управляемые "часы" для проверки истечения TTL
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// Живое значение отдаётся из кэша без повторной загрузки
func TestGetOrFetch_CachesWithinTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := cache.NewWithClock(newFakeClock())

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrFetch(ctx, "key", time.Minute, fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.(string) != "value" {
			t.Fatalf("unexpected value: %v", v)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

// После истечения TTL значение загружается заново
func TestGetOrFetch_ExpiryTriggersRefetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := newFakeClock()
	c := cache.NewWithClock(clk)

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrFetch(ctx, "key", time.Minute, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clk.Advance(61 * time.Second)

	v, err := c.GetOrFetch(ctx, "key", time.Minute, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
	if v.(int) != 2 {
		t.Errorf("stale value returned: %v", v)
	}
}

// Ошибки не кэшируются: следующий вызов снова идёт за данными
func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := cache.NewWithClock(newFakeClock())

	calls := 0
	boom := errors.New("upstream down")
	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	if _, err := c.GetOrFetch(ctx, "key", time.Minute, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	v, err := c.GetOrFetch(ctx, "key", time.Minute, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(string) != "recovered" {
		t.Errorf("unexpected value: %v", v)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
}

// Разные ключи живут независимо
func TestGetOrFetch_KeysIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := cache.NewWithClock(newFakeClock())

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrFetch(ctx, "a", time.Minute, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.GetOrFetch(ctx, "b", time.Minute, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
	if c.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", c.Len())
	}
}

// Параллельные запросы одного ключа схлопываются в одну загрузку
func TestGetOrFetch_SingleflightCoalesces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := cache.NewWithClock(newFakeClock())

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return "shared", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrFetch(ctx, "key", time.Minute, fetch)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if v.(string) != "shared" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch called %d times, want 1", got)
	}
}
