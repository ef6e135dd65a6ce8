package ports

import "time"

// Renderer is the abstraction for task progress output.
// It decouples telemetry collection from presentation logic.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once with the descriptions of all planned tasks, in execution order.
	OnPlanEmit(tasks []string)

	// OnTaskStart is called when a task begins execution.
	// spanID: unique identifier for this task execution
	// name: human-readable task name
	// startTime: when the task started
	OnTaskStart(spanID, name string, startTime time.Time)

	// OnTaskComplete is called when a task finishes execution.
	// spanID: identifier for the task
	// endTime: when the task completed
	// err: nil if successful, error otherwise
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
