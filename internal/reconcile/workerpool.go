package reconcile

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one replay. It runs with the context the pool was started with.
type Task func(ctx context.Context) error

// WorkerPool runs replays on a fixed number of goroutines.
type WorkerPool struct {
	ctx   context.Context
	tasks chan Task
	wg    sync.WaitGroup
	once  sync.Once
}

func NewWorkerPool(ctx context.Context, size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{
		ctx:   ctx,
		tasks: make(chan Task, size),
	}
	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task(wp.ctx); err != nil {
			zap.L().Warn("replay task failed", zap.Error(err))
		}
	}
}

// AddTask queues task, blocking while every worker is busy and the queue is
// full. It must not be called after Close.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits until the queued ones have run.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.tasks) })
	wp.wg.Wait()
}
