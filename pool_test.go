package larkreport

import (
	"runtime"
	"sync"
	"testing"
)

// Compile-time interface check.
var _ interface {
	Acquire() *Service
	Release(*Service)
	Size() int
	Close() error
} = (*ServicePool)(nil)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit takes priority", 4, 4},
		{"explicit above max is kept", 12, 12},
		{"zero uses auto calculation", 0, min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize)},
		{"negative uses auto calculation", -3, min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestServicePool_ChromeStartsLazily(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(3, WithEngine(EngineChrome))
	defer pool.Close()

	if n := pool.started(); n != 0 {
		t.Fatalf("started() = %d before any Acquire", n)
	}

	a := pool.Acquire()
	b := pool.Acquire()
	if a == b {
		t.Error("two acquires without release should yield distinct services")
	}
	if a.cfg.engine != EngineChrome {
		t.Error("pool options should apply to created services")
	}
	pool.Release(a)

	if c := pool.Acquire(); c != a {
		t.Error("released service should be reused before creating another")
	}
	if n := pool.started(); n != 2 {
		t.Errorf("started() = %d, want 2", n)
	}
}

func TestServicePool_NativeSharesOneService(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(4)
	defer pool.Close()

	a := pool.Acquire()
	b := pool.Acquire()
	if a != b {
		t.Error("native workers should share one service")
	}
	pool.Release(a)
	pool.Release(b)

	if n := pool.started(); n != 1 {
		t.Errorf("started() = %d, want 1", n)
	}
	if pool.Size() != 4 {
		t.Errorf("Size() = %d, want 4", pool.Size())
	}
}

func TestServicePool_MinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(0)
	defer pool.Close()
	if pool.Size() != MinPoolSize {
		t.Errorf("Size() = %d, want %d", pool.Size(), MinPoolSize)
	}
}

func TestServicePool_ChromeConcurrent(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2, WithEngine(EngineChrome))
	defer pool.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := pool.Acquire()
			_ = Generate("profit_summary", profitRows())
			pool.Release(svc)
		}()
	}
	wg.Wait()

	if n := pool.started(); n > 2 {
		t.Errorf("started() = %d, must not exceed size 2", n)
	}
}

func TestServicePool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	for _, engine := range []Engine{EngineNative, EngineChrome} {
		pool := NewServicePool(1, WithEngine(engine))
		svc := pool.Acquire()
		if err := pool.Close(); err != nil {
			t.Fatalf("%s: Close() error = %v", engine, err)
		}
		if err := pool.Close(); err != nil {
			t.Errorf("%s: second Close() error = %v", engine, err)
		}
		pool.Release(svc) // no-op after close
	}
}
