// Package gradle adapts Android build intents to Gradle wrapper invocations.
package gradle

import (
	"context"
	"runtime"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Adapter implements ports.TaskAdapter on top of the Gradle wrapper of an Android project.
//
// Every call spawns exactly one process through the executor and returns its handle
// without waiting. Errors from the executor are returned as-is.
type Adapter struct {
	executor ports.Executor
	platform func() string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithPlatform pins the host platform (a runtime.GOOS value) used to pick the launcher.
func WithPlatform(goos string) Option {
	return func(a *Adapter) {
		a.platform = func() string { return goos }
	}
}

// NewAdapter creates an Adapter that spawns processes with executor.
func NewAdapter(executor ports.Executor, opts ...Option) *Adapter {
	a := &Adapter{
		executor: executor,
		platform: func() string { return runtime.GOOS },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Launcher returns the Gradle wrapper for the current platform.
// It is evaluated on every call.
func (a *Adapter) Launcher() string {
	return domain.ResolveLauncher(a.platform())
}

// Command returns the invocation of taskName in cwd followed by args.
func (a *Adapter) Command(cwd, taskName string, args []string) domain.Command {
	cmdArgs := make([]string, 0, len(args)+1)
	cmdArgs = append(cmdArgs, taskName)
	cmdArgs = append(cmdArgs, args...)

	return domain.Command{
		Name: a.Launcher(),
		Args: cmdArgs,
		Dir:  cwd,
	}
}

// Assemble runs "{appName}:assemble{Mode}".
func (a *Adapter) Assemble(
	ctx context.Context,
	cwd, appName string,
	mode domain.BuildMode,
	args []string,
) (ports.Process, error) {
	return a.start(ctx, cwd, domain.TaskName(appName, domain.VerbAssemble, mode), args)
}

// Build runs "{appName}:build{Mode}".
func (a *Adapter) Build(
	ctx context.Context,
	cwd, appName string,
	mode domain.BuildMode,
	args []string,
) (ports.Process, error) {
	return a.start(ctx, cwd, domain.TaskName(appName, domain.VerbBuild, mode), args)
}

// Install runs "{appName}:install{Mode}".
func (a *Adapter) Install(
	ctx context.Context,
	cwd, appName string,
	mode domain.BuildMode,
	args []string,
) (ports.Process, error) {
	return a.start(ctx, cwd, domain.TaskName(appName, domain.VerbInstall, mode), args)
}

// CustomTask runs taskName verbatim.
func (a *Adapter) CustomTask(ctx context.Context, cwd, taskName string, args []string) (ports.Process, error) {
	return a.start(ctx, cwd, taskName, args)
}

// Run dispatches task to the adapter operation selected by its verb.
func (a *Adapter) Run(ctx context.Context, task domain.Task) (ports.Process, error) {
	opts := task.Options
	args := task.PassThroughArgs()

	switch task.Verb {
	case domain.VerbAssemble:
		return a.Assemble(ctx, opts.SourceDir, opts.AppName, opts.Mode, args)
	case domain.VerbBuild:
		return a.Build(ctx, opts.SourceDir, opts.AppName, opts.Mode, args)
	case domain.VerbInstall:
		return a.Install(ctx, opts.SourceDir, opts.AppName, opts.Mode, args)
	case domain.VerbCustom:
		return a.CustomTask(ctx, opts.SourceDir, task.GradleTask, args)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownVerb, "cannot dispatch task"), "verb", task.Verb.String())
	}
}

// Resolve returns the command Run would spawn for task.
func (a *Adapter) Resolve(task domain.Task) (domain.Command, error) {
	name, err := gradleTaskName(task)
	if err != nil {
		return domain.Command{}, err
	}
	return a.Command(task.Options.SourceDir, name, task.PassThroughArgs()), nil
}

func (a *Adapter) start(ctx context.Context, cwd, taskName string, args []string) (ports.Process, error) {
	return a.executor.Start(ctx, a.Command(cwd, taskName, args))
}

func gradleTaskName(task domain.Task) (string, error) {
	switch task.Verb {
	case domain.VerbAssemble, domain.VerbBuild, domain.VerbInstall:
		return domain.TaskName(task.Options.AppName, task.Verb, task.Options.Mode), nil
	case domain.VerbCustom:
		return task.GradleTask, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownVerb, "cannot resolve task"), "verb", task.Verb.String())
	}
}
