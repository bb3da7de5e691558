// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"sonar-runner-cli/pkg/types"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	withCause := &ExitError{Code: types.ExitFailure, Err: cause}
	if withCause.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", withCause.Error(), "boom")
	}
	if !errors.Is(withCause, cause) {
		t.Error("errors.Is(ExitError, cause) = false, want true")
	}

	bare := &ExitError{Code: 3}
	if bare.Error() != "exit status 3" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit status 3")
	}
	if bare.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", bare.Unwrap())
	}
}
