package worker

import (
	"context"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Do(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// A pool with a single worker doubles as a serializing queue:
// tasks submitted to it never run concurrently.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Do submits t and blocks until it has run or ctx is done.
// When ctx wins the task is dropped before a worker picks it up.
func (p *pool) Do(ctx context.Context, t Task) error {
	done := make(chan struct{})
	job := func() {
		if t != nil {
			t()
		}
		close(done)
	}
	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	}
	<-done
	return nil
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
