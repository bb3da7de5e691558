// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the sonar-runner command line entry point.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"sonar-runner-cli/internal/cliargs"
	"sonar-runner-cli/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// newRootCommand builds the root command around app. Flag parsing is left to
// cliargs so -D, -X and -h keep their legacy meaning.
func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   cliargs.DefaultProgram + " [options]",
		Short: "Launch a code analysis with layered configuration",
		Long: TitleStyle.Render(cliargs.DefaultProgram) + SubtitleStyle.Render(" - Launch a code analysis") + `

Configuration is read, lowest precedence first, from system properties,
${runner.home}/conf/sonar-runner.properties, ${project.home}/sonar-project.properties
and -D definitions on the command line.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// Execute runs the root command and exits with the code of any ExitError.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code.Int())
		}
		os.Exit(types.ExitFailure.Int())
	}
}
