// Package runner dispatches task descriptors in priority order.
package runner

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
)

// Runner executes task descriptors through a task adapter.
//
// Lower priorities run first. Tasks that share a priority run concurrently, up to
// the jobs limit passed to Run. The first failure stops the run.
type Runner struct {
	adapter ports.TaskAdapter
	tracer  ports.Tracer

	mu         sync.RWMutex
	taskStatus []TaskStatus
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(adapter ports.TaskAdapter, tracer ports.Tracer) *Runner {
	return &Runner{
		adapter: adapter,
		tracer:  tracer,
	}
}

type plannedTask struct {
	index int
	task  domain.Task
}

// Run executes tasks and waits for every spawned process.
// A jobs value below 1 runs tasks serially.
func (r *Runner) Run(ctx context.Context, tasks []domain.Task, jobs int) error {
	if len(tasks) == 0 {
		return domain.ErrNoTasks
	}
	if jobs < 1 {
		jobs = 1
	}

	ordered := make([]plannedTask, len(tasks))
	for i, t := range tasks {
		ordered[i] = plannedTask{index: i, task: t}
	}
	slices.SortStableFunc(ordered, func(a, b plannedTask) int {
		return cmp.Compare(a.task.Priority, b.task.Priority)
	})

	r.initTaskStatuses(len(tasks))

	plan := make([]string, len(ordered))
	for i, p := range ordered {
		plan[i] = p.task.Description
	}
	r.tracer.EmitPlan(ctx, plan)

	for _, level := range groupByPriority(ordered) {
		if err := r.runLevel(ctx, level, jobs); err != nil {
			return err
		}
	}

	return nil
}

// Statuses returns the status of each task of the last run, indexed like the input slice.
func (r *Runner) Statuses() []TaskStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.taskStatus)
}

func (r *Runner) initTaskStatuses(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.taskStatus = make([]TaskStatus, n)
	for i := range r.taskStatus {
		r.taskStatus[i] = StatusPending
	}
}

func (r *Runner) updateStatus(index int, status TaskStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taskStatus[index] = status
}

func (r *Runner) runLevel(ctx context.Context, level []plannedTask, jobs int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, p := range level {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return r.execute(gctx, p)
		})
	}

	return g.Wait()
}

func (r *Runner) execute(ctx context.Context, p plannedTask) error {
	cmd, err := r.adapter.Resolve(p.task)
	if err != nil {
		r.updateStatus(p.index, StatusFailed)
		return err
	}
	taskName := p.task.Description
	if len(cmd.Args) > 0 {
		taskName = cmd.Args[0]
	}

	ctx, span := r.tracer.Start(ctx, p.task.Description,
		ports.WithAttribute("gradle.task", taskName),
		ports.WithAttribute("priority", p.task.Priority),
	)
	defer span.End()

	r.updateStatus(p.index, StatusRunning)

	err = r.wait(ctx, span, p.task)
	if err != nil {
		span.RecordError(err)
		r.updateStatus(p.index, StatusFailed)
		return zerr.With(zerr.Wrap(err, domain.ErrTaskExecutionFailed.Error()), "task", taskName)
	}

	r.updateStatus(p.index, StatusCompleted)
	return nil
}

func (r *Runner) wait(ctx context.Context, span ports.Span, task domain.Task) error {
	proc, err := r.adapter.Run(ctx, task)
	if err != nil {
		return err
	}
	span.SetAttribute("pid", proc.Pid())
	return proc.Wait()
}

// groupByPriority splits tasks sorted by priority into runs of equal priority.
func groupByPriority(ordered []plannedTask) [][]plannedTask {
	var levels [][]plannedTask
	for i := 0; i < len(ordered); {
		j := i + 1
		for j < len(ordered) && ordered[j].task.Priority == ordered[i].task.Priority {
			j++
		}
		levels = append(levels, ordered[i:j])
		i = j
	}
	return levels
}
