// Package app implements the application layer for droid.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/shlex"
	"go.trai.ch/droid/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/gradle"    //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/droid/internal/engine/runner"
	"go.trai.ch/zerr"
)

// TracerName is the OpenTelemetry instrumentation name.
const TracerName = "droid"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	adapter      ports.TaskAdapter
	logger       ports.Logger
	renderer     ports.Renderer
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	adapter ports.TaskAdapter,
	log ports.Logger,
	renderer ports.Renderer,
) *App {
	return &App{
		configLoader: loader,
		adapter:      adapter,
		logger:       log,
		renderer:     renderer,
		stdout:       os.Stdout,
	}
}

// WithStdout sets the writer dry runs print commands to.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run, RunTask and Sequence methods.
// Empty values fall back to droid.yaml and then to the defaults.
type RunOptions struct {
	SourceDir string
	AppName   string
	Mode      string
	// Args are positional pass-through arguments, appended last.
	Args []string
	// GradleArgs is a shell-quoted string of extra Gradle arguments.
	GradleArgs string

	DevServerPort int
	// DevServerPortSet marks DevServerPort as given explicitly, so 0 clears a configured port.
	DevServerPortSet bool

	DryRun bool
	Jobs   int
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// SetLogFormat applies the --log-format flag ("auto", "pretty" or "json").
// An unknown format leaves the logger unchanged.
func (a *App) SetLogFormat(flag string) error {
	format, err := detector.ResolveFormat(detector.DetectEnvironment(), flag)
	if err != nil {
		return err
	}
	if l, ok := a.logger.(jsonSwitcher); ok {
		l.SetJSON(format == detector.FormatJSON)
	}
	return nil
}

// Run executes a single assemble, build or install verb.
func (a *App) Run(ctx context.Context, verb domain.Verb, opts RunOptions) error {
	return a.Sequence(ctx, []domain.Verb{verb}, opts)
}

// Sequence executes verbs one after another, in the given order.
func (a *App) Sequence(ctx context.Context, verbs []domain.Verb, opts RunOptions) error {
	if len(verbs) == 0 {
		return domain.ErrNoTasks
	}

	buildOpts, err := a.resolveOptions(opts)
	if err != nil {
		return err
	}

	tasks := make([]domain.Task, 0, len(verbs))
	for i, verb := range verbs {
		task, err := gradle.NewTask(verb, buildOpts, opts.Args)
		if err != nil {
			return err
		}
		task.Priority = domain.DefaultTaskPriority + i
		tasks = append(tasks, task)
	}

	return a.execute(ctx, tasks, opts)
}

// RunTask executes an arbitrary Gradle task by name.
func (a *App) RunTask(ctx context.Context, taskName string, opts RunOptions) error {
	if taskName == "" {
		return domain.ErrMissingTaskName
	}

	buildOpts, err := a.resolveOptions(opts)
	if err != nil {
		return err
	}

	args := slices.Concat(buildOpts.ExtraArgs, opts.Args)
	return a.execute(ctx, []domain.Task{gradle.NewCustomTask(buildOpts.SourceDir, taskName, args)}, opts)
}

func (a *App) execute(ctx context.Context, tasks []domain.Task, opts RunOptions) error {
	if opts.DryRun {
		return a.printCommands(tasks)
	}

	tracer := telemetry.NewOTelTracer(TracerName).
		WithProvider(telemetry.NewProvider(a.renderer)).
		WithRenderer(a.renderer)
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	if err := runner.NewRunner(a.adapter, tracer).Run(ctx, tasks, opts.Jobs); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

func (a *App) printCommands(tasks []domain.Task) error {
	for _, task := range tasks {
		cmd, err := a.adapter.Resolve(task)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.stdout, cmd.ShellLine()); err != nil {
			return zerr.Wrap(err, "failed to write dry run output")
		}
	}
	return nil
}

// resolveOptions merges flags over droid.yaml.
// Extra arguments keep the order: config args, --gradle-args, dev server port.
func (a *App) resolveOptions(opts RunOptions) (domain.BuildOptions, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return domain.BuildOptions{}, zerr.Wrap(err, "failed to load configuration")
	}

	sourceDir := cfg.SourceDir
	if opts.SourceDir != "" {
		sourceDir, err = filepath.Abs(opts.SourceDir)
		if err != nil {
			return domain.BuildOptions{}, zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "source_dir", opts.SourceDir)
		}
	}

	appName := cfg.AppName
	if opts.AppName != "" {
		appName = opts.AppName
	}

	mode := cfg.Mode
	if opts.Mode != "" {
		mode, err = domain.ParseBuildMode(opts.Mode)
		if err != nil {
			return domain.BuildOptions{}, err
		}
	}

	gradleArgs, err := shlex.Split(opts.GradleArgs)
	if err != nil {
		return domain.BuildOptions{}, zerr.With(errors.Join(domain.ErrInvalidGradleArgs, err), "gradle_args", opts.GradleArgs)
	}

	port := cfg.DevServerPort
	if opts.DevServerPortSet || opts.DevServerPort != 0 {
		if err := domain.ValidatePort(opts.DevServerPort); err != nil {
			return domain.BuildOptions{}, err
		}
		port = opts.DevServerPort
	}

	extra := slices.Concat(cfg.Args, gradleArgs)
	if port > 0 {
		extra = append(extra, domain.DevServerPortArg(port))
	}

	return domain.BuildOptions{
		SourceDir: sourceDir,
		AppName:   appName,
		Mode:      mode,
		ExtraArgs: extra,
	}, nil
}
