package tasks

import (
	"context"
	"log/slog"
	"sync"
)

// Task receives the pool's context. Long tasks check it between steps;
// a cancelled context is the explicit "stop working" signal, there is
// no implicit cancellation.
type Task = func(ctx context.Context)

type BackgroundTasks struct {
	log        *slog.Logger
	tasks      chan Task
	maxWorkers int
	wg         *sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

func New(log *slog.Logger, maxWorkers int, maxTasksQueueSize int) *BackgroundTasks {
	wg := &sync.WaitGroup{}
	wg.Add(maxWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	return &BackgroundTasks{
		log:        log,
		maxWorkers: maxWorkers,
		wg:         wg,
		tasks:      make(chan Task, maxTasksQueueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (t *BackgroundTasks) Run() {
	for i := 0; i < t.maxWorkers; i++ {
		i := i
		go func() {
			log := t.log.With("worker", i)
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic", "err", err)
				}
				t.wg.Done()
			}()
			for task := range t.tasks {
				task(t.ctx)
			}
		}()
	}
}

func (t *BackgroundTasks) Add(task Task) {
	t.tasks <- task
}

func (t *BackgroundTasks) IsEmpty() bool {
	return len(t.tasks) == 0
}

// Shutdown stops accepting tasks and waits for queued work to drain.
// When ctx expires first, the pool context is cancelled so running
// tasks can bail out.
func (t *BackgroundTasks) Shutdown(ctx context.Context) error {
	const op = "tasks.BackgroundTasks.Shutdown"
	log := t.log.With("op", op)
	log.Info("shutting down background tasks")
	close(t.tasks)
	shutdownCh := make(chan bool, 1)
	go func() {
		t.wg.Wait()
		shutdownCh <- true
	}()
	select {
	case <-ctx.Done():
		log.Warn("graceful shutdown timed out.. cancelling running tasks", "timeout", ctx.Err())
		t.cancel()
		return ctx.Err()
	case <-shutdownCh:
		t.cancel()
		log.Info("background tasks succesfully stopped")
		return nil
	}
}
