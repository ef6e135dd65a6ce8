package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidBuildMode is returned when a build mode is neither debug nor release.
	ErrInvalidBuildMode = zerr.New("invalid build mode, expected 'debug' or 'release'")

	// ErrUnknownVerb is returned when a task descriptor names an unsupported verb.
	ErrUnknownVerb = zerr.New("unknown task verb")

	// ErrMissingTaskName is returned when a custom task is requested without a Gradle task name.
	ErrMissingTaskName = zerr.New("missing gradle task name")

	// ErrEmptyCommand is returned when a command has no executable.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCommandStartFailed is returned when the external process cannot be spawned.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandFailed is returned when the external process exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDevServerPort is returned when a dev server port is outside 1-65535.
	ErrInvalidDevServerPort = zerr.New("invalid dev server port")

	// ErrInvalidLogFormat is returned when --log-format names an unknown format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrInvalidGradleArgs is returned when the --gradle-args string cannot be split.
	ErrInvalidGradleArgs = zerr.New("failed to parse gradle arguments")

	// ErrNoTasks is returned when a run is requested without any task.
	ErrNoTasks = zerr.New("no tasks specified")

	// ErrTaskExecutionFailed is returned when a task execution fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
