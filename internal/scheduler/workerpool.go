package scheduler

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one unit of sweep work, typically a single raffle's draw attempt.
// The context it receives is cancelled when the pool shuts down, so a
// long-running draw can observe shutdown and stop.
type Task func(ctx context.Context) error

// WorkerPool bounds how many sweep tasks run at once so a tick with many due
// raffles cannot stampede the database.
type WorkerPool struct {
	ctx    context.Context
	cancel context.CancelFunc
	tasks  chan Task
	wg     sync.WaitGroup
	once   sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(chan Task, size),
	}
	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			if err := task(wp.ctx); err != nil {
				zap.L().Error("sweep task failed", zap.Error(err))
			}
		}
	}
}

// AddTask enqueues a task for a free worker. It fails once the pool is
// closed or the caller's context is done; queued tasks that never reached a
// worker are dropped at shutdown, the next sweep tick picks the work up
// again.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	// Checked up front so a closed pool never accepts work even when the
	// queue has room.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return wp.ctx.Err()
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return wp.ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close cancels the task context and waits for every worker to return. Safe
// to call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.cancel()
		wp.wg.Wait()
	})
}
