// SPDX-License-Identifier: MPL-2.0

// Package stats reports the end-of-run footer: wall-clock time since start
// and the process memory in use.
package stats
