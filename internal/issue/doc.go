// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors that carry what was being
// attempted, on which file, and hints on how to fix it.
package issue
