package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

// WorkerPool renders an image by letting workers claim row ranges until none remain
type WorkerPool struct {
	scheduler     *RowScheduler
	raytracer     *Raytracer
	buf           []byte
	workers       []*Worker
	numWorkers    int
	rowsCompleted *atomic.Int64
	wg            sync.WaitGroup
}

// Worker owns its random state; nothing it mutates is shared except the rows it claims
type Worker struct {
	ID      int
	sampler *core.RandomSampler
	seed    int64
	stats   WorkerStats
	pool    *WorkerPool // Reference to parent pool for the shared scheduler and buffer
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per logical CPU.
func NewWorkerPool(raytracer *Raytracer, scheduler *RowScheduler, buf []byte, numWorkers int, seed int64, rowsCompleted *atomic.Int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if rowsCompleted == nil {
		rowsCompleted = &atomic.Int64{}
	}

	wp := &WorkerPool{
		scheduler:     scheduler,
		raytracer:     raytracer,
		buf:           buf,
		numWorkers:    numWorkers,
		rowsCompleted: rowsCompleted,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:      i,
			sampler: core.NewRandomSampler(rand.New(rand.NewSource(seed))),
			seed:    seed,
			stats:   WorkerStats{ID: i},
			pool:    wp,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Run starts every worker, waits for all rows to be rendered and returns the combined stats
func (wp *WorkerPool) Run() RenderStats {
	startTime := time.Now()

	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
	wp.wg.Wait()

	workerStats := make([]WorkerStats, len(wp.workers))
	for i, worker := range wp.workers {
		workerStats[i] = worker.stats
	}
	return combineStats(workerStats, time.Since(startTime))
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		rows, ok := w.pool.scheduler.Next()
		if !ok {
			return
		}

		// Output depends only on the seed and the rows, not on which worker claimed them
		w.sampler.Reseed(chunkSeed(w.seed, rows.Start))

		// Ranges never overlap, so writes to the shared buffer are disjoint
		w.stats.Merge(w.pool.raytracer.RenderRows(rows, w.pool.buf, w.sampler))
		w.pool.rowsCompleted.Add(int64(rows.Rows()))
	}
}

// chunkSeed derives the random seed for the row range starting at start
func chunkSeed(seed int64, start int) int64 {
	return int64(uint64(seed) ^ (uint64(start)+1)*0x9E3779B97F4A7C15)
}
