// SPDX-License-Identifier: MPL-2.0

// Package config resolves the launcher's configuration mapping.
//
// Four sources are layered, lowest precedence first:
//  1. system properties (runtime built-ins plus -D words from SONAR_RUNNER_OPTS)
//  2. the runner file, ${runner.home}/conf/sonar-runner.properties or ${runner.settings}
//  3. the project file, ${project.home}/sonar-project.properties or ${project.settings}
//  4. the command line, which also carries the system properties again
//
// The home/settings keys are looked up in the command-line layer only. A
// missing file contributes nothing; a file that exists but cannot be read or
// parsed aborts the run.
//
// The launcher's own settings (log format, HTTP timeout, SONAR_RUNNER_OPTS)
// are read from SONAR_RUNNER_* environment variables through Viper.
package config
