// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Job is one game to replay: a starting position and the move texts to
// play from it.
type Job struct {
	Index    int    // Original index for ordering results
	Line     int    // 1-based line in the batch input (0 if unknown)
	StartFEN string // Empty means the standard starting position
	Moves    []string
}

// Result is the outcome of replaying one Job.
type Result struct {
	Index int
	Line  int
	FEN   string   // Position after the last accepted move
	SAN   []string // Display notation of each accepted move
	End   string   // End state name: Running, Checkmate or Draw
	Err   error    // First failing move, as a *errors.GameError

	// Final identifies the last position for duplicate detection
	Final hashing.Signature
}

// ProcessFunc is the function signature for processing a job.
type ProcessFunc func(job Job) Result

// Pool manages a pool of workers for parallel replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobChan     chan Job
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobChan = make(chan Job, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(job)
	}
}

// Submit submits a job for processing.
// This may block if the job channel buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobChan <- job
}

// TrySubmit attempts to submit a job without blocking.
// Returns false if the job channel is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.jobChan <- job:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new jobs.
// Jobs already queued will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.jobChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
