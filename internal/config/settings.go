// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every launcher setting environment variable.
	EnvPrefix = "SONAR_RUNNER"

	// LogFormatText is the default human-readable log format.
	LogFormatText LogFormat = "text"
	// LogFormatJSON emits one JSON object per log line.
	LogFormatJSON LogFormat = "json"
	// LogFormatLogfmt emits logfmt key=value lines.
	LogFormatLogfmt LogFormat = "logfmt"

	// DefaultServerTimeout bounds each HTTP call made by the default runner.
	DefaultServerTimeout = 30 * time.Second

	settingOpts          = "opts"
	settingLogFormat     = "log_format"
	settingServerTimeout = "server_timeout"
)

// ErrInvalidSettings is wrapped by every LoadSettings validation error.
var ErrInvalidSettings = errors.New("invalid launcher settings")

type (
	// LogFormat selects the diagnostic output encoding.
	LogFormat string

	// Settings configure the launcher itself, as opposed to the properties
	// handed to the runner.
	Settings struct {
		// Opts holds the raw SONAR_RUNNER_OPTS value.
		Opts string
		// LogFormat is one of text, json or logfmt.
		LogFormat LogFormat
		// ServerTimeout bounds HTTP calls to the analysis server.
		ServerTimeout time.Duration
	}
)

// DefaultSettings returns the settings used when no variable is set.
func DefaultSettings() *Settings {
	return &Settings{
		LogFormat:     LogFormatText,
		ServerTimeout: DefaultServerTimeout,
	}
}

// LoadSettings reads SONAR_RUNNER_OPTS, SONAR_RUNNER_LOG_FORMAT and
// SONAR_RUNNER_SERVER_TIMEOUT from the environment.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault(settingOpts, defaults.Opts)
	v.SetDefault(settingLogFormat, string(defaults.LogFormat))
	v.SetDefault(settingServerTimeout, defaults.ServerTimeout.String())

	format := LogFormat(strings.ToLower(strings.TrimSpace(v.GetString(settingLogFormat))))
	if err := format.Validate(); err != nil {
		return nil, err
	}

	rawTimeout := v.GetString(settingServerTimeout)
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("%w: %s_%s=%q is not a positive duration", ErrInvalidSettings, EnvPrefix, strings.ToUpper(settingServerTimeout), rawTimeout)
	}

	return &Settings{
		Opts:          v.GetString(settingOpts),
		LogFormat:     format,
		ServerTimeout: timeout,
	}, nil
}

// Validate reports whether f is a supported format.
func (f LogFormat) Validate() error {
	switch f {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
		return nil
	default:
		return fmt.Errorf("%w: unknown log format %q (want text, json or logfmt)", ErrInvalidSettings, string(f))
	}
}
