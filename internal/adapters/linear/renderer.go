// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/droid/internal/ui/output"
	"go.trai.ch/droid/internal/ui/style"
)

// Renderer implements ports.Renderer with one line per task event on stderr.
// Gradle's own output is inherited by the process and never passes through here.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	tasks map[string]*taskState // spanID -> task state
}

type taskState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to stderr.
func NewRenderer(stderr io.Writer) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		tasks:  make(map[string]*taskState),
	}
}

// OnPlanEmit prints the planned tasks.
func (r *Renderer) OnPlanEmit(tasks []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning to run %d task(s): %s\n",
		len(tasks), strings.Join(tasks, ", "))
}

// OnTaskStart prints a task start message.
func (r *Renderer) OnTaskStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{
		name:      name,
		startTime: startTime,
	}

	_, _ = fmt.Fprintf(r.stderr, "%s %s Starting...\n", r.prefix(name), style.Play)
}

// OnTaskComplete prints completion status.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := r.prefix(task.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %s\n",
			prefix, symbol, duration, strings.ReplaceAll(err.Error(), "\n", ": "))
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n",
		prefix, symbol, duration)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}
