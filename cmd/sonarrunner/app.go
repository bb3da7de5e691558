// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"sonar-runner-cli/internal/cliargs"
	"sonar-runner-cli/internal/config"
	"sonar-runner-cli/internal/issue"
	"sonar-runner-cli/internal/runner"
	"sonar-runner-cli/internal/stats"
	"sonar-runner-cli/pkg/types"
)

type (
	// App is the composition root of the launcher. One App serves one run.
	App struct {
		newRunner    runner.Factory
		loadSettings func() (*config.Settings, error)
		clock        stats.Clock
		stdout       io.Writer
		getenv       func(string) string
		errorStyle   lipgloss.Style
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		// NewRunner builds the execution collaborator.
		NewRunner runner.Factory
		// LoadSettings reads the launcher settings.
		LoadSettings func() (*config.Settings, error)
		// Clock times the run for the footer.
		Clock stats.Clock
		// Stdout receives usage text and log output.
		Stdout io.Writer
		// Getenv expands variables in SONAR_RUNNER_OPTS.
		Getenv func(string) string
	}
)

// NewApp creates an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		newRunner:    deps.NewRunner,
		loadSettings: deps.LoadSettings,
		clock:        deps.Clock,
		stdout:       deps.Stdout,
		getenv:       deps.Getenv,
	}
	if app.newRunner == nil {
		app.newRunner = runner.NewDefault
	}
	if app.loadSettings == nil {
		app.loadSettings = config.LoadSettings
	}
	if app.clock == nil {
		app.clock = stats.RealClock{}
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.getenv == nil {
		app.getenv = os.Getenv
	}
	// Colors only when stdout is a terminal.
	app.errorStyle = ErrorStyle.Renderer(lipgloss.NewRenderer(app.stdout))
	return app
}

// Run parses args, resolves the configuration and executes the runner.
//
// Help and usage errors print the usage block and return nil. Once arguments
// are parsed, the stats footer is printed on every return path. A failed
// execution is returned as an *ExitError.
func (a *App) Run(ctx context.Context, args []string) (err error) {
	start := a.clock.Now()

	parsed, err := cliargs.Parse(args)
	if err != nil {
		return a.handleParseError(err)
	}

	settings, err := a.loadSettings()
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	logger := newLogger(a.stdout, settings.LogFormat, parsed.Debug)
	footer := stats.NewFooter(a.clock, logger)
	defer func() {
		footer.Print(start)
		if err != nil && parsed.Debug {
			logger.Debug(issue.FormatError(err, true))
		}
	}()

	r, err := a.bootstrap(parsed, settings, logger)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if err := r.Execute(ctx); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	return nil
}

// bootstrap resolves the configuration, builds the runner and logs the
// environment diagnostics.
func (a *App) bootstrap(parsed *cliargs.Arguments, settings *config.Settings, logger *log.Logger) (runner.Runner, error) {
	system, err := config.SystemProperties(settings.Opts, a.getenv, logger)
	if err != nil {
		return nil, err
	}

	resolved, err := config.NewResolver(logger).Resolve(system, parsed.Properties)
	if err != nil {
		return nil, err
	}

	r, err := a.newRunner(resolved, runner.Options{
		Logger:        logger,
		ServerTimeout: settings.ServerTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	logger.Info("Runner version: " + getVersionString())
	logger.Info("Go version: " + runtime.Version())
	logger.Info(fmt.Sprintf("OS name: %q, version: %q, arch: %q",
		system.Value("os.name"), system.Value("os.version"), system.Value("os.arch")))
	if parsed.Debug {
		logger.Debug("Resolved properties: " + strings.Join(resolved.Keys(), ", "))
	}
	logger.Info("Server: " + r.ServerURL())

	workDir, err := r.WorkDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve work directory: %w", err)
	}
	logger.Info("Work directory: " + workDir)

	return r, nil
}

// handleParseError prints the usage block for help and usage errors. Both
// exit with status 0.
func (a *App) handleParseError(err error) error {
	if errors.Is(err, cliargs.ErrHelpRequested) {
		return cliargs.WriteUsage(a.stdout, cliargs.DefaultProgram)
	}

	var usageErr *cliargs.UsageError
	if errors.As(err, &usageErr) {
		if _, werr := fmt.Fprintln(a.stdout); werr != nil {
			return werr
		}
		if _, werr := fmt.Fprintln(a.stdout, a.errorStyle.Render(usageErr.Message)); werr != nil {
			return werr
		}
		return cliargs.WriteUsage(a.stdout, cliargs.DefaultProgram)
	}

	return err
}

// newLogger builds the run logger. Timestamps are omitted; debug lines are
// enabled by -X.
func newLogger(w io.Writer, format config.LogFormat, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	var formatter log.Formatter
	switch format {
	case config.LogFormatJSON:
		formatter = log.JSONFormatter
	case config.LogFormatLogfmt:
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Formatter: formatter,
	})
}
