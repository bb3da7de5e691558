// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/shell"

	"sonar-runner-cli/internal/cliargs"
	"sonar-runner-cli/internal/issue"
	"sonar-runner-cli/internal/props"
)

// OptsEnv is the environment variable carrying extra -Dkey=value words.
const OptsEnv = "SONAR_RUNNER_OPTS"

// osReleasePath holds the kernel release on Linux.
const osReleasePath = "/proc/sys/kernel/osrelease"

// BuiltinProperties describes the running process: OS, Go runtime, user and
// path conventions. Values that cannot be determined are omitted.
func BuiltinProperties() props.Properties {
	p := props.Properties{
		"os.name":        runtime.GOOS,
		"os.arch":        runtime.GOARCH,
		"go.version":     runtime.Version(),
		"file.separator": string(os.PathSeparator),
		"path.separator": string(os.PathListSeparator),
		"line.separator": "\n",
	}

	if release, err := os.ReadFile(osReleasePath); err == nil {
		p["os.version"] = strings.TrimSpace(string(release))
	}
	if u, err := user.Current(); err == nil {
		p["user.name"] = u.Username
	}
	if home, err := os.UserHomeDir(); err == nil {
		p["user.home"] = home
	}
	if wd, err := os.Getwd(); err == nil {
		p["user.dir"] = wd
	}

	return p
}

// ParseOpts splits opts into words using shell quoting rules, expanding
// $VARS through getenv, and collects every -Dkey[=value] word. Other words
// are returned as ignored.
func ParseOpts(opts string, getenv func(string) string) (defs props.Properties, ignored []string, err error) {
	words, err := shell.Fields(opts, getenv)
	if err != nil {
		return nil, nil, err
	}

	defs = props.New()
	for _, word := range words {
		rest, ok := strings.CutPrefix(word, "-D")
		if !ok || rest == "" {
			ignored = append(ignored, word)
			continue
		}
		key, value := cliargs.ParseDefinition(rest)
		defs[key] = value
	}
	return defs, ignored, nil
}

// SystemProperties returns the lowest configuration layer: the built-in
// properties overlaid with the definitions found in opts.
func SystemProperties(opts string, getenv func(string) string, logger *log.Logger) (props.Properties, error) {
	defs, ignored, err := ParseOpts(opts, getenv)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read " + OptsEnv).
			WithSuggestion("Check quoting in " + OptsEnv).
			Wrap(err).
			BuildError()
	}

	for _, word := range ignored {
		logger.Debug("Ignoring "+OptsEnv+" word", "word", word)
	}

	return props.Merge(BuiltinProperties(), defs), nil
}
