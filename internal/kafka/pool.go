package kafka

import (
	"context"
	"sync"
)

// Pool runs submitted jobs on a fixed number of goroutines. Submit must not be called
// after Close.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{jobs: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// Submit queues job, blocking while every worker is busy. It reports false when ctx ended
// first.
func (p *Pool) Submit(ctx context.Context, job func()) bool {
	select {
	case p.jobs <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close stops accepting jobs; queued jobs still run.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.jobs) })
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
