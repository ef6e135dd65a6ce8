// Package commands wires the droid subcommands onto a cobra root command.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/droid/internal/app"
	"go.trai.ch/droid/internal/build"
	"go.trai.ch/droid/internal/core/domain"
)

const (
	groupGradle = "gradle"
	groupMisc   = "misc"
)

// Application is the behaviour the commands delegate to.
type Application interface {
	Run(ctx context.Context, verb domain.Verb, opts app.RunOptions) error
	Sequence(ctx context.Context, verbs []domain.Verb, opts app.RunOptions) error
	RunTask(ctx context.Context, taskName string, opts app.RunOptions) error
	SetLogFormat(flag string) error
}

// CLI is the droid command tree bound to an Application.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New builds the command tree for a.
func New(a Application) *CLI {
	c := &CLI{app: a}

	root := &cobra.Command{
		Use:   "droid",
		Short: "Assemble, build and install Android apps through the Gradle wrapper",
		Long: "droid runs {app}:{verb}{Mode} tasks with the project's Gradle wrapper.\n" +
			"Defaults come from droid.yaml, discovered from the working directory upward.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("log-format")
			return a.SetLogFormat(format)
		},
	}
	root.SetVersionTemplate(versionLine() + "\n")
	root.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty (or text) or json")

	root.AddGroup(
		&cobra.Group{ID: groupGradle, Title: "Gradle Commands:"},
		&cobra.Group{ID: groupMisc, Title: "Other Commands:"},
	)
	for _, sub := range []*cobra.Command{
		c.newVerbCmd(domain.VerbAssemble, "Assemble the Android app without installing it"),
		c.newVerbCmd(domain.VerbBuild, "Assemble and check the Android app"),
		c.newInstallCmd(),
		c.newTaskCmd(),
	} {
		sub.GroupID = groupGradle
		root.AddCommand(sub)
	}
	version := c.newVersionCmd()
	version.GroupID = groupMisc
	root.AddCommand(version)
	root.SetHelpCommandGroupID(groupMisc)
	root.SetCompletionCommandGroupID(groupMisc)

	c.rootCmd = root
	return c
}

// Execute runs the command selected by the arguments under ctx.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:].
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and errors.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
