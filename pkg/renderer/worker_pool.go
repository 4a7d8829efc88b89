package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// BandTask is one contiguous band of image rows to render. Each task carries
// its own random stream so bands are uncorrelated and workers never share a
// generator.
type BandTask struct {
	StartRow int // inclusive, counted from the bottom of the image
	EndRow   int // exclusive
	Random   *rand.Rand
}

// BandResult reports a completed band
type BandResult struct {
	StartRow int
	EndRow   int
}

// WorkerPool renders row bands in parallel. Bands are independent: the scene
// and camera are read-only and each band writes a disjoint slice of the
// output raster, so no locking is needed anywhere.
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	numWorkers  int
	renderBand  func(BandTask)
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines (NumCPU when <= 0)
// feeding renderBand. queueSize should be at least the total number of bands
// so submission never blocks.
func NewWorkerPool(numWorkers, queueSize int, renderBand func(BandTask)) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:   make(chan BandTask, queueSize),
		resultQueue: make(chan BandResult, queueSize),
		numWorkers:  numWorkers,
		renderBand:  renderBand,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a band for rendering
func (wp *WorkerPool) Submit(task BandTask) {
	wp.taskQueue <- task
}

// Stop signals that no more tasks are coming, waits for in-flight bands to
// finish, and closes the result channel
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of completed bands. It is closed by Stop once
// every submitted band has finished.
func (wp *WorkerPool) Results() <-chan BandResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		wp.renderBand(task)
		wp.resultQueue <- BandResult{StartRow: task.StartRow, EndRow: task.EndRow}
	}
}
