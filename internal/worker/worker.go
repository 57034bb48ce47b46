// Package worker runs background jobs off the request path, such as warming
// the principal cache after a token is issued.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Task receives a context that is cancelled after the pool's task timeout.
type Task func(ctx context.Context)

// Pool is a fixed set of workers fed by a bounded queue.
type Pool interface {
	// Submit enqueues t without blocking. It returns false when the queue is
	// full or the pool is stopped, in which case t is dropped.
	Submit(t Task) bool
	// Stop waits for queued tasks to finish. Later submits are rejected.
	Stop()
}

const defaultTaskTimeout = 5 * time.Second

// NewPool creates a pool with n workers and room for queue pending tasks.
// n<=0 defaults to 1, queue<0 to 0.
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue), timeout: defaultTaskTimeout}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
	timeout time.Duration
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("worker task panicked")
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	job(ctx)
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
