package domain

// DefaultTaskPriority is the priority assigned to every Android task descriptor.
const DefaultTaskPriority = 1

// BuildOptions describes a single assemble, build or install request.
type BuildOptions struct {
	SourceDir string
	AppName   string
	Mode      BuildMode
	ExtraArgs []string
}

// Task is a deferred unit of work handed to a task runner.
// It captures the inputs of one adapter call; running it is left to the dispatcher.
type Task struct {
	Priority    int
	Description string

	// Verb selects the adapter operation the task dispatches to.
	Verb    Verb
	Options BuildOptions
	// GradleTask is the literal task name of a VerbCustom task.
	GradleTask string
	// Args are appended after Options.ExtraArgs.
	Args []string
}

// PassThroughArgs returns the arguments forwarded after the Gradle task name.
func (t Task) PassThroughArgs() []string {
	args := make([]string, 0, len(t.Options.ExtraArgs)+len(t.Args))
	args = append(args, t.Options.ExtraArgs...)
	return append(args, t.Args...)
}
