// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Streams are the standard streams handed to spawned processes.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithStreams replaces the inherited standard streams.
// Nil fields keep the process' own stream.
func WithStreams(s Streams) Option {
	return func(e *Executor) {
		if s.Stdin != nil {
			e.streams.Stdin = s.Stdin
		}
		if s.Stdout != nil {
			e.streams.Stdout = s.Stdout
		}
		if s.Stderr != nil {
			e.streams.Stderr = s.Stderr
		}
	}
}

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger  ports.Logger
	streams Streams
}

// NewExecutor creates a new Executor that inherits the standard streams of the current process.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger: logger,
		streams: Streams{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start spawns the command and returns a handle without waiting for it.
//
// The process runs in c.Dir with the caller's environment. Output is not captured:
// the tool writes straight to the configured streams.
func (e *Executor) Start(ctx context.Context, c domain.Command) (ports.Process, error) {
	if c.Name == "" {
		return nil, domain.ErrEmptyCommand
	}

	executable := resolveExecutable(c.Name, c.Dir, os.Getenv("PATH"))

	cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // launcher is resolved from the project

	// exec.CommandContext sets Args[0] to the resolved path.
	// Preserve the name as invoked.
	cmd.Args[0] = c.Name
	cmd.Dir = c.Dir
	cmd.Stdin = e.streams.Stdin
	cmd.Stdout = e.streams.Stdout
	cmd.Stderr = e.streams.Stderr

	e.logger.Info("running " + c.String())

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(
			zerr.With(errors.Join(domain.ErrCommandStartFailed, err), "command", c.String()),
			"dir", c.Dir,
		)
	}

	return &process{cmd: cmd}, nil
}

type process struct {
	cmd  *exec.Cmd
	once sync.Once
	err  error
}

// Wait blocks until the process exits. Subsequent calls return the first result.
func (p *process) Wait() error {
	p.once.Do(func() {
		if err := p.cmd.Wait(); err != nil {
			p.err = zerr.With(errors.Join(domain.ErrCommandFailed, err), "exit_code", exitCode(err))
		}
	})
	return p.err
}

func (p *process) Pid() int {
	return p.cmd.Process.Pid
}

// exitCode extracts the exit status of a finished process, or -1 when it is unknown
// (killed by a signal, or the wait itself failed).
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// resolveExecutable finds the file to execute for name.
// Relative names are looked up in dir first so that project-local wrappers win,
// bare names then fall back to PATH. Unresolvable names are returned unchanged and
// fail at spawn time.
func resolveExecutable(name, dir, path string) string {
	if filepath.IsAbs(name) {
		return name
	}

	if dir != "" {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			// The child resolves relative paths against its own working directory.
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs
			}
			return candidate
		}
	}

	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return name
	}

	if lp, err := lookPath(name, path); err == nil {
		return lp
	}
	return name
}

// lookPath searches for an executable in the directories of a PATH list.
func lookPath(file, path string) (string, error) {
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
