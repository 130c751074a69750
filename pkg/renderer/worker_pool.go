package renderer

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/df07/go-pathtracer/pkg/log"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  TileStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	ctx         context.Context
	pin         bool
	logger      log.Logger
}

// NewWorkerPool creates a pool of numWorkers workers. Both queues hold maxTasks entries so
// neither submitting nor reporting ever blocks.
func NewWorkerPool(ctx context.Context, tileRenderer *TileRenderer, numWorkers, maxTasks int, pin bool, logger log.Logger) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    tileRenderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			ctx:         ctx,
			pin:         pin,
			logger:      logger,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for every worker to exit
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop. Every task gets exactly one result, so a task
// skipped because of cancellation still reports back.
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	if w.pin {
		pinToCore(w.ID, w.logger)
	}

	for task := range w.taskQueue {
		if err := w.ctx.Err(); err != nil {
			w.resultQueue <- TileResult{TaskID: task.TaskID, Error: fmt.Errorf("%w: %w", ErrInterrupted, err)}
			continue
		}
		w.resultQueue <- w.renderTile(task)
	}
}

// renderTile turns a panic inside the tile into an ErrWorkerFault result
func (w *Worker) renderTile(task TileTask) (result TileResult) {
	result.TaskID = task.TaskID

	defer func() {
		if r := recover(); r != nil {
			w.logger.Debugf("worker %d: panic in tile %d: %v\n%s", w.ID, task.Tile.ID, r, debug.Stack())
			result.Error = fmt.Errorf("%w: tile %d: %v", ErrWorkerFault, task.Tile.ID, r)
		}
	}()

	result.Stats = w.renderer.RenderTile(task.Tile)
	result.Stats.Worker = w.ID
	w.logger.Debugf("worker %d: tile %d %v done in %s", w.ID, task.Tile.ID, task.Tile.Bounds, result.Stats.Duration)
	return result
}
