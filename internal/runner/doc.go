// SPDX-License-Identifier: MPL-2.0

// Package runner defines the execution collaborator that receives the
// resolved configuration, and a minimal default implementation.
//
// The default runner checks that the analysis server answers, then leaves the
// resolved properties in its work directory for the analysis engine.
package runner
