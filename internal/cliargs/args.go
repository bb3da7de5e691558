// SPDX-License-Identifier: MPL-2.0

package cliargs

import (
	"errors"
	"strings"

	"sonar-runner-cli/internal/props"
)

// VerboseKey is the property set by -X/--debug.
const VerboseKey = "sonar.verbose"

// ErrHelpRequested is returned by Parse when -h or --help is encountered.
var ErrHelpRequested = errors.New("help requested")

type (
	// Arguments is the successful outcome of Parse.
	Arguments struct {
		// Properties holds every -D definition plus the verbose flag.
		Properties props.Properties
		// Debug is true when -X/--debug was given.
		Debug bool
	}

	// UsageError reports a malformed argument list. Message is the line shown
	// to the user above the usage block.
	UsageError struct {
		Message string
	}
)

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// Parse converts args, without the program name, into Arguments.
//
// It returns ErrHelpRequested as soon as -h/--help is seen and a *UsageError
// for an unknown token or a trailing -D/--define without a value.
func Parse(args []string) (*Arguments, error) {
	parsed := &Arguments{Properties: props.New()}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			return nil, ErrHelpRequested

		case arg == "-X" || arg == "--debug":
			parsed.Properties[VerboseKey] = "true"
			parsed.Debug = true

		case arg == "-D" || arg == "--define":
			i++
			if i >= len(args) {
				return nil, &UsageError{Message: "Missing argument for option --define"}
			}
			key, value := ParseDefinition(args[i])
			parsed.Properties[key] = value

		case strings.HasPrefix(arg, "-D"):
			key, value := ParseDefinition(arg[len("-D"):])
			parsed.Properties[key] = value

		default:
			return nil, &UsageError{Message: "Unrecognized option: " + arg}
		}
	}

	return parsed, nil
}

// ParseDefinition splits a key[=value] pair on its first '='. Without '=' the
// whole string is the key and the value is "true".
func ParseDefinition(def string) (key, value string) {
	key, value, found := strings.Cut(def, "=")
	if !found {
		return def, "true"
	}
	return key, value
}
