package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droid/internal/adapters/shell"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// writeScript creates an executable shell script named name in dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), domain.ExecPerm))
	return path
}

func newExecutor(t *testing.T, stdout, stderr *bytes.Buffer, opts ...shell.Option) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	opts = append([]shell.Option{shell.WithStreams(shell.Streams{Stdout: stdout, Stderr: stderr})}, opts...)
	return shell.NewExecutor(mockLogger, opts...)
}

// runToCompletion starts c and waits for it to exit.
func runToCompletion(t *testing.T, executor *shell.Executor, c domain.Command) error {
	t.Helper()
	proc, err := executor.Start(context.Background(), c)
	if err != nil {
		return err
	}
	return proc.Wait()
}

func TestExecutor_Start_RelativeLauncherInDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeScript(t, tmpDir, "gradlew", `echo "args: $*"; pwd`)

	var stdout, stderr bytes.Buffer
	executor := newExecutor(t, &stdout, &stderr)

	proc, err := executor.Start(context.Background(), domain.Command{
		Name: "./gradlew",
		Args: []string{"app:assembleRelease", "-PreactNativeDevServerPort=8081"},
		Dir:  tmpDir,
	})
	require.NoError(t, err)
	require.NotNil(t, proc)
	assert.Positive(t, proc.Pid())
	require.NoError(t, proc.Wait())

	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "args: app:assembleRelease -PreactNativeDevServerPort=8081")
	assert.Contains(t, output, resolved)
	assert.Empty(t, stderr.String())
}

func TestExecutor_Start_PreservesArgumentBoundaries(t *testing.T) {
	tmpDir := t.TempDir()
	writeScript(t, tmpDir, "gradlew", `for a in "$@"; do echo "[$a]"; done`)

	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, &bytes.Buffer{})

	err := runToCompletion(t, executor, domain.Command{
		Name: "./gradlew",
		Args: []string{"foo:bar", "--flag", "two words", ""},
		Dir:  tmpDir,
	})
	require.NoError(t, err)
	assert.Equal(t, "[foo:bar]\n[--flag]\n[two words]\n[]\n", stdout.String())
}

func TestExecutor_Start_InheritsStreamsAndEnvironment(t *testing.T) {
	t.Setenv("DROID_TEST_VAR", "inherited-value")

	tmpDir := t.TempDir()
	writeScript(t, tmpDir, "gradlew", `read line; echo "stdin: $line"; echo "env: $DROID_TEST_VAR"; echo "oops" >&2`)

	var stdout, stderr bytes.Buffer
	executor := newExecutor(t, &stdout, &stderr, shell.WithStreams(shell.Streams{
		Stdin: strings.NewReader("hello\n"),
	}))

	err := runToCompletion(t, executor, domain.Command{Name: "./gradlew", Dir: tmpDir})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "stdin: hello")
	assert.Contains(t, stdout.String(), "env: inherited-value")
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Wait_NonZeroExit(t *testing.T) {
	tmpDir := t.TempDir()
	writeScript(t, tmpDir, "gradlew", "exit 42")

	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	proc, err := executor.Start(context.Background(), domain.Command{Name: "./gradlew", Dir: tmpDir})
	require.NoError(t, err, "a failing tool still spawns successfully")

	err = proc.Wait()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
	assert.Contains(t, err.Error(), "command failed")

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])

	// Wait is idempotent.
	assert.Equal(t, err, proc.Wait())
}

func TestExecutor_Start_MissingLauncher(t *testing.T) {
	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	proc, err := executor.Start(context.Background(), domain.Command{
		Name: "./gradlew",
		Args: []string{"app:assembleDebug"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.Nil(t, proc)
	assert.True(t, errors.Is(err, domain.ErrCommandStartFailed))
}

func TestExecutor_Start_InvalidWorkingDir(t *testing.T) {
	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := executor.Start(context.Background(), domain.Command{
		Name: "./gradlew",
		Dir:  filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandStartFailed))
}

func TestExecutor_Start_NotExecutable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gradlew")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), domain.FilePerm))

	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := executor.Start(context.Background(), domain.Command{Name: "./gradlew", Dir: tmpDir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestExecutor_Start_EmptyCommand(t *testing.T) {
	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := executor.Start(context.Background(), domain.Command{})
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Start_BareNameUsesPath(t *testing.T) {
	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	err := runToCompletion(t, executor, domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 0"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Start_ContextCancellation(t *testing.T) {
	tmpDir := t.TempDir()
	writeScript(t, tmpDir, "gradlew", "exec sleep 10")

	executor := newExecutor(t, &bytes.Buffer{}, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	proc, err := executor.Start(ctx, domain.Command{Name: "./gradlew", Dir: tmpDir})
	require.NoError(t, err)

	start := time.Now()
	cancel()

	err = proc.Wait()
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Start_LogsCommand(t *testing.T) {
	tmpDir := t.TempDir()
	writeScript(t, tmpDir, "gradlew", "exit 0")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("running ./gradlew app:installDebug").Times(1)

	executor := shell.NewExecutor(mockLogger, shell.WithStreams(shell.Streams{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}))

	err := runToCompletion(t, executor, domain.Command{
		Name: "./gradlew",
		Args: []string{"app:installDebug"},
		Dir:  tmpDir,
	})
	require.NoError(t, err)
}
