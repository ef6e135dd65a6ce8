package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/droid/internal/app"
	"go.trai.ch/droid/internal/core/domain"
)

func (c *CLI) newVerbCmd(verb domain.Verb, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb.String() + " [-- gradle args...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), verb, readRunOptions(cmd, args))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [-- gradle args...]",
		Short: "Install the Android app on a connected device",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := readRunOptions(cmd, args)
			if assemble, _ := cmd.Flags().GetBool("assemble"); assemble {
				return c.app.Sequence(cmd.Context(), []domain.Verb{domain.VerbAssemble, domain.VerbInstall}, opts)
			}
			return c.app.Run(cmd.Context(), domain.VerbInstall, opts)
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().Bool("assemble", false, "Assemble the app before installing it")
	return cmd
}

func (c *CLI) newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task <gradle-task> [-- gradle args...]",
		Short: "Run an arbitrary Gradle task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunTask(cmd.Context(), args[0], readRunOptions(cmd, args[1:]))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("source-dir", "", "Android project directory (default from droid.yaml or ./android)")
	cmd.Flags().String("app-name", "", "Gradle module of the app (default from droid.yaml or app)")
	cmd.Flags().StringP("mode", "m", "", "Build mode: "+modeChoices())
	cmd.Flags().String("gradle-args", "", "Extra Gradle arguments, split like a shell would")
	cmd.Flags().Int("port", 0, "Dev server port passed to Gradle as -P"+domain.DevServerPortProperty+" (0 disables it)")
	cmd.Flags().Bool("dry-run", false, "Print the Gradle command instead of running it")
	cmd.Flags().IntP("jobs", "j", 1, "Maximum number of tasks to run at once")
}

func readRunOptions(cmd *cobra.Command, args []string) app.RunOptions {
	sourceDir, _ := cmd.Flags().GetString("source-dir")
	appName, _ := cmd.Flags().GetString("app-name")
	mode, _ := cmd.Flags().GetString("mode")
	gradleArgs, _ := cmd.Flags().GetString("gradle-args")
	port, _ := cmd.Flags().GetInt("port")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return app.RunOptions{
		SourceDir:        sourceDir,
		AppName:          appName,
		Mode:             mode,
		Args:             args,
		GradleArgs:       gradleArgs,
		DevServerPort:    port,
		DevServerPortSet: cmd.Flags().Changed("port"),
		DryRun:           dryRun,
		Jobs:             jobs,
	}
}

// modeChoices lists the accepted build modes, e.g. "debug or release".
func modeChoices() string {
	names := make([]string, len(domain.BuildModes))
	for i, m := range domain.BuildModes {
		names[i] = m.String()
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
