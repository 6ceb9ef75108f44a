// Package runner executes registered tasks periodically in the
// background, one goroutine per task on a fixed-rate schedule. Tasks
// typically register themselves from init(); an application builds one
// Runner at startup and stops it on shutdown.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/jerrinot/tracetrim/logutil"
	"github.com/jerrinot/tracetrim/registry"
)

// Task is a unit of periodic background work. Run is called once per
// interval; the first call happens one full interval after Start.
type Task interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context) error
}

var tasks = registry.New[Task]()

// Register adds a task to the default task registry under its name.
func Register(t Task) {
	tasks.Register(t.Name(), t)
}

// Tasks returns all registered tasks in name order.
func Tasks() []Task {
	return tasks.All()
}

// Runner drives a fixed set of tasks. Use New, then Start, then Stop.
type Runner struct {
	tasks  []Task
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a Runner over the given tasks; with none given it takes
// every task in the default registry.
func New(ts ...Task) *Runner {
	if len(ts) == 0 {
		ts = Tasks()
	}
	return &Runner{tasks: ts}
}

// Start launches one goroutine per task. Tasks whose interval is not
// positive are skipped with a warning. Start must be called at most once.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	for _, t := range r.tasks {
		iv := t.Interval()
		if iv <= 0 {
			logutil.Warn().Log("msg", "background task has a non-positive interval, skipping", "task", t.Name())
			continue
		}
		r.wg.Add(1)
		go r.loop(ctx, t, iv)
	}
}

// Stop cancels all task goroutines and waits for them to exit. A task
// mid-Run observes the cancellation through its context.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, t Task, iv time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(iv)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.Run(ctx); err != nil {
				logutil.Error().Log("msg", "background task failed", "task", t.Name(), "err", err)
			}
		}
	}
}
