package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is what a Job produces
type Result interface {
	GetError() error
}

type task struct {
	seq int
	job Job
}

type outcome struct {
	seq    int
	result Result
}

// Pool runs jobs on a fixed number of workers and returns results in submission order
type Pool struct {
	workers    int
	tasks      chan task
	outcomes   chan outcome
	submitted  int
	collected  []outcome
	collecting chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool bound to ctx; cancelling ctx stops the workers
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		tasks:      make(chan task, workers*2),
		outcomes:   make(chan outcome, workers*2),
		collecting: make(chan struct{}),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers and the result collector.
// It must be called before Submit.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go p.collect()
}

// collect drains outcomes so workers never block on a full channel
func (p *Pool) collect() {
	defer close(p.collecting)
	for out := range p.outcomes {
		p.collected = append(p.collected, out)
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			out := outcome{seq: t.seq, result: t.job.Execute(p.ctx)}
			select {
			case p.outcomes <- out:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job. It is dropped once the pool is shut down.
// Submit must not be called concurrently with itself or with Wait.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.tasks <- task{seq: p.submitted, job: job}:
		p.submitted++
	}
}

// Wait closes the queue, waits for the workers and returns results in submission order.
// Jobs abandoned by a cancelled pool leave nil entries.
func (p *Pool) Wait() []Result {
	close(p.tasks)
	p.wg.Wait()
	p.closeOutcomes()
	<-p.collecting

	results := make([]Result, p.submitted)
	for _, out := range p.collected {
		results[out.seq] = out.result
	}

	p.cancelFunc()
	return results
}

// Shutdown stops the workers without waiting for queued jobs
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeOutcomes()
}

func (p *Pool) closeOutcomes() {
	p.closeOnce.Do(func() {
		close(p.outcomes)
	})
}
