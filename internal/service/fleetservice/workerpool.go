package fleetservice

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one vehicle's share of a simulation tick.
type Task struct {
	TickID    string
	VehicleID int
	Run       func() error
}

type WorkerPool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task.Run(); err != nil {
			zap.L().Error("Vehicle simulation step failed",
				zap.String("tickID", task.TickID),
				zap.Int("vehicleID", task.VehicleID),
				zap.Error(err),
			)
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for in-flight simulation steps.
func (wp *WorkerPool) Close() {
	close(wp.tasks)
	wp.wg.Wait()
}
