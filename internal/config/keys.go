// SPDX-License-Identifier: MPL-2.0

package config

// Property keys consumed while resolving configuration files.
const (
	RunnerHomeKey      = "runner.home"
	RunnerSettingsKey  = "runner.settings"
	ProjectHomeKey     = "project.home"
	ProjectSettingsKey = "project.settings"

	// ProjectDirKey is the public name of project.home handed to the runner.
	ProjectDirKey = "sonar.projectDir"
)

// Locations of the configuration files relative to their home directory.
const (
	RunnerSettingsPath  = "conf/sonar-runner.properties"
	ProjectSettingsPath = "sonar-project.properties"
)
