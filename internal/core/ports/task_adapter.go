package ports

import (
	"context"

	"go.trai.ch/droid/internal/core/domain"
)

// TaskAdapter dispatches task descriptors to the external build tool.
//
//go:generate mockgen -source=task_adapter.go -destination=mocks/mock_task_adapter.go -package=mocks
type TaskAdapter interface {
	// Run performs the adapter call captured by task and returns the spawned process.
	Run(ctx context.Context, task domain.Task) (Process, error)
	// Resolve returns the command task would spawn, without spawning it.
	Resolve(task domain.Task) (domain.Command, error)
}
