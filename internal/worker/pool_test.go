package worker

import (
	"sync/atomic"
	"testing"
	"time"
)

// echo returns a process function that copies the job identity into the result.
func echo() ProcessFunc {
	return func(job Job) Result {
		return Result{Index: job.Index, Line: job.Line}
	}
}

// counting returns a process function that increments n for every job.
func counting(n *int32) ProcessFunc {
	return func(job Job) Result {
		atomic.AddInt32(n, 1)
		return Result{Index: job.Index, End: "Running"}
	}
}

// drain reads every result until the pool closes the channel.
func drain(pool *Pool) []Result {
	var results []Result
	for res := range pool.Results() {
		results = append(results, res)
	}
	return results
}

func submitN(pool *Pool, n int) {
	for i := 0; i < n; i++ {
		pool.Submit(Job{Index: i, Line: i + 1, Moves: []string{"e4"}})
	}
}

func TestPool_ProcessesEveryJob(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		jobs    int
	}{
		{"single worker", 1, 5, 5},
		{"several workers", 4, 10, 10},
		{"more jobs than buffer", 8, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var processed int32
			pool := NewPool(tt.workers, tt.buffer, counting(&processed))
			pool.Start()

			go func() {
				submitN(pool, tt.jobs)
				pool.Close()
			}()

			results := drain(pool)
			if len(results) != tt.jobs {
				t.Errorf("results = %d; want %d", len(results), tt.jobs)
			}
			if got := atomic.LoadInt32(&processed); got != int32(tt.jobs) {
				t.Errorf("processed = %d; want %d", got, tt.jobs)
			}
		})
	}
}

func TestPool_EveryIndexReturned(t *testing.T) {
	slowEven := func(job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return Result{Index: job.Index}
	}

	pool := NewPool(4, 20, slowEven)
	pool.Start()

	const numJobs = 10
	submitN(pool, numJobs)
	go pool.Close()

	seen := make(map[int]bool)
	for res := range pool.Results() {
		if seen[res.Index] {
			t.Errorf("index %d returned twice", res.Index)
		}
		seen[res.Index] = true
	}
	for i := 0; i < numJobs; i++ {
		if !seen[i] {
			t.Errorf("missing index %d", i)
		}
	}
}

func TestPool_Stop(t *testing.T) {
	pool := NewPool(2, 10, echo())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool stopped before Stop()")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool not stopped after Stop()")
	}
	if pool.TrySubmit(Job{Index: 0}) {
		t.Error("TrySubmit after Stop should return false")
	}

	// Jobs queued after a stop are drained without results.
	submitN(pool, 3)
	go pool.Close()
	if got := len(drain(pool)); got != 0 {
		t.Errorf("results after Stop = %d; want 0", got)
	}
}

func TestPool_TrySubmit(t *testing.T) {
	release := make(chan struct{})
	blocked := func(job Job) Result {
		<-release
		return Result{Index: job.Index}
	}

	pool := NewPool(1, 2, blocked)
	pool.Start()

	accepted := 0
	for i := 0; i < 10; i++ {
		if pool.TrySubmit(Job{Index: i}) {
			accepted++
		}
	}
	// One job held by the worker plus a full buffer.
	if accepted < 2 || accepted > 3 {
		t.Errorf("accepted = %d; want 2 or 3", accepted)
	}

	close(release)
	go pool.Close()
	if got := len(drain(pool)); got != accepted {
		t.Errorf("results = %d; want %d", got, accepted)
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(echo(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestNewPool_MatchesOptions(t *testing.T) {
	pool := NewPool(3, 7, echo())
	if pool.NumWorkers() != 3 || pool.bufferSize != 7 {
		t.Errorf("NewPool(3, 7) = %d workers, buffer %d", pool.NumWorkers(), pool.bufferSize)
	}
}
