// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"sonar-runner-cli/internal/issue"
	"sonar-runner-cli/internal/props"
)

type (
	// Source describes where one configuration file may live.
	Source struct {
		// Name prefixes the diagnostic line, e.g. "Runner configuration file: NONE".
		Name string
		// Operation is used in bootstrap errors, e.g. "load runner configuration".
		Operation string
		// HomeKey names the directory property the file is looked up under.
		HomeKey string
		// RelativePath is the file location below the home directory.
		RelativePath string
		// SettingsKey names the property holding an explicit file path.
		SettingsKey string
	}

	// Resolver produces the final configuration mapping.
	Resolver struct {
		logger *log.Logger
	}
)

var (
	// RunnerSource is the tool-level configuration file.
	RunnerSource = Source{
		Name:         "Runner",
		Operation:    "load runner configuration",
		HomeKey:      RunnerHomeKey,
		RelativePath: RunnerSettingsPath,
		SettingsKey:  RunnerSettingsKey,
	}

	// ProjectSource is the project-level configuration file.
	ProjectSource = Source{
		Name:         "Project",
		Operation:    "load project configuration",
		HomeKey:      ProjectHomeKey,
		RelativePath: ProjectSettingsPath,
		SettingsKey:  ProjectSettingsKey,
	}
)

// NewResolver returns a Resolver reporting file locations to logger.
func NewResolver(logger *log.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve merges system and command-line properties with the runner and
// project files they point at. Precedence, lowest first: runner file,
// project file, system properties, command line. project.home is handed over
// as sonar.projectDir.
func (r *Resolver) Resolve(system, cli props.Properties) (props.Properties, error) {
	commandLine := props.Merge(system, cli)

	runnerProps, err := r.Load(RunnerSource, commandLine)
	if err != nil {
		return nil, err
	}

	projectProps, err := r.Load(ProjectSource, commandLine)
	if err != nil {
		return nil, err
	}

	result := props.Merge(runnerProps, projectProps, commandLine)
	return props.Rename(result, ProjectHomeKey, ProjectDirKey), nil
}

// Load reads the file src points at in commandLine. A missing file yields an
// empty mapping; a file that cannot be read or parsed yields an
// *issue.ActionableError.
func (r *Resolver) Load(src Source, commandLine props.Properties) (props.Properties, error) {
	path := LocatePropertiesFile(commandLine, src.HomeKey, src.RelativePath, src.SettingsKey)
	if !isRegularFile(path) {
		r.logger.Info(src.Name + " configuration file: NONE")
		return props.New(), nil
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.logger.Info(src.Name + " configuration file: " + path)

	loaded, err := props.LoadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(src.Operation).
			WithResource(path).
			WithSuggestion("Check that the file is readable and uses key=value lines").
			WithSuggestion("Set " + src.SettingsKey + " to use a different file").
			Wrap(err).
			BuildError()
	}
	return loaded, nil
}

// LocatePropertiesFile returns the candidate path of a configuration file.
//
// ${homeKey}/relativePath is tried first. When homeKey is unset or that file
// does not exist, a non-empty ${settingsKey} is used verbatim. The returned
// path may not exist; "" means there is no candidate at all.
func LocatePropertiesFile(commandLine props.Properties, homeKey, relativePath, settingsKey string) string {
	candidate := ""
	if home := commandLine.Value(homeKey); home != "" {
		candidate = filepath.Join(home, filepath.FromSlash(relativePath))
	}

	if candidate == "" || !exists(candidate) {
		if settings := commandLine.Value(settingsKey); settings != "" {
			candidate = settings
		}
	}
	return candidate
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
