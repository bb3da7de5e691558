// SPDX-License-Identifier: MPL-2.0

// Package cliargs implements the launcher's legacy argument grammar:
// -h/--help, -X/--debug and -D/--define key[=value]. Parsing never exits the
// process; help and usage errors are reported to the caller, which decides
// what the process does next.
package cliargs
