// SPDX-License-Identifier: MPL-2.0

// Package props defines the flat key/value configuration mapping handed to the
// runner, pure helpers to layer mappings on top of each other, and the codec
// for conventional line-oriented .properties files.
package props
