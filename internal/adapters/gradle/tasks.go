package gradle

import (
	"slices"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
)

// Task descriptions shown by the task runner.
const (
	AssembleDescription = "Assemble Android App"
	BuildDescription    = "Build Android App"
	InstallDescription  = "Install Android App"
	CustomDescription   = "Run Gradle Task"
)

// NewAssembleTask returns a descriptor that assembles the app when dispatched.
func NewAssembleTask(opts domain.BuildOptions, args []string) domain.Task {
	return newTask(domain.VerbAssemble, AssembleDescription, opts, args)
}

// NewBuildTask returns a descriptor that builds the app when dispatched.
func NewBuildTask(opts domain.BuildOptions, args []string) domain.Task {
	return newTask(domain.VerbBuild, BuildDescription, opts, args)
}

// NewInstallTask returns a descriptor that installs the app when dispatched.
func NewInstallTask(opts domain.BuildOptions, args []string) domain.Task {
	return newTask(domain.VerbInstall, InstallDescription, opts, args)
}

// NewCustomTask returns a descriptor that runs taskName in cwd when dispatched.
func NewCustomTask(cwd, taskName string, args []string) domain.Task {
	t := newTask(domain.VerbCustom, CustomDescription, domain.BuildOptions{SourceDir: cwd}, args)
	t.GradleTask = taskName
	return t
}

// NewTask returns the descriptor for one of the assemble, build or install verbs.
func NewTask(verb domain.Verb, opts domain.BuildOptions, args []string) (domain.Task, error) {
	switch verb {
	case domain.VerbAssemble:
		return NewAssembleTask(opts, args), nil
	case domain.VerbBuild:
		return NewBuildTask(opts, args), nil
	case domain.VerbInstall:
		return NewInstallTask(opts, args), nil
	default:
		return domain.Task{}, zerr.With(zerr.Wrap(domain.ErrUnknownVerb, "cannot create task"), "verb", verb.String())
	}
}

func newTask(verb domain.Verb, description string, opts domain.BuildOptions, args []string) domain.Task {
	opts.ExtraArgs = slices.Clone(opts.ExtraArgs)
	return domain.Task{
		Priority:    domain.DefaultTaskPriority,
		Description: description,
		Verb:        verb,
		Options:     opts,
		Args:        slices.Clone(args),
	}
}
