// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on setup errors:
// environment and working-directory changes with restore functions, fixture
// files, and a manually driven clock.
package testutil
