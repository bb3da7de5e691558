// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"sonar-runner-cli/pkg/types"
)

// ExitError carries a non-zero exit code back to Execute instead of calling
// os.Exit from inside the run.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
