// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/droid/internal/core/domain"
)

// Process is a handle to a spawned external process.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Process interface {
	// Wait blocks until the process exits.
	// It returns nil on a zero exit status and an error carrying the exit code otherwise.
	Wait() error
	// Pid returns the operating system process id.
	Pid() int
}

// Executor spawns external processes.
type Executor interface {
	// Start spawns cmd with the caller's standard streams and returns without waiting.
	// It returns an error if the process could not be spawned.
	Start(ctx context.Context, cmd domain.Command) (Process, error)
}
