package larkreport

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps Chrome instances (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ServicePool hands out services to export workers.
//
// With the native engine every worker shares one Service: Generate holds
// no state, so there is nothing to pool. With the Chrome engine each
// worker gets its own Service (and browser), started on first use and
// reused after Release.
type ServicePool struct {
	size   int
	opts   []Option
	shared *Service

	idle  chan *Service
	slots chan struct{}

	mu     sync.Mutex
	all    []*Service
	closed bool
}

// NewServicePool creates a pool for n workers whose services are built
// with opts.
func NewServicePool(n int, opts ...Option) *ServicePool {
	n = max(n, MinPoolSize)
	p := &ServicePool{size: n, opts: opts}

	if svc := New(opts...); svc.cfg.engine == EngineNative {
		p.shared = svc
		p.all = []*Service{svc}
		return p
	}

	p.idle = make(chan *Service, n)
	p.slots = make(chan struct{}, n)
	for range n {
		p.slots <- struct{}{}
	}
	return p
}

// Acquire returns a service for one worker. For the Chrome engine it
// prefers an idle service, starts a new one while slots remain, and
// otherwise blocks until a service is released.
func (p *ServicePool) Acquire() *Service {
	if p.shared != nil {
		return p.shared
	}

	select {
	case svc := <-p.idle:
		return svc
	default:
	}

	select {
	case svc := <-p.idle:
		return svc
	case <-p.slots:
		svc := New(p.opts...)
		p.mu.Lock()
		p.all = append(p.all, svc)
		p.mu.Unlock()
		return svc
	}
}

// Release hands a service back. Releasing after Close is a no-op.
func (p *ServicePool) Release(svc *Service) {
	if p.shared != nil || svc == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	// idle holds one entry per started service, so this never blocks.
	p.idle <- svc
}

// Close releases every browser started by the pool's services.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	services := p.all
	p.mu.Unlock()

	var errs []error
	for _, svc := range services {
		if err := svc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the number of workers the pool serves.
func (p *ServicePool) Size() int {
	return p.size
}

// started reports how many services the pool has built.
func (p *ServicePool) started() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.all)
}

// ResolvePoolSize picks the pool size: explicit workers first, otherwise
// half of GOMAXPROCS clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0)/cpuDivisor, MinPoolSize), MaxPoolSize)
}
