// SPDX-License-Identifier: MPL-2.0

package cliargs

import (
	"fmt"
	"io"
)

// DefaultProgram is the program name shown in the usage block.
const DefaultProgram = "sonar-runner"

const usageOptions = `
Options:
 -h,--help             Display help information
 -X,--debug            Produce execution debug output
 -D,--define <arg>     Define property
`

// WriteUsage writes the usage block for program to w.
func WriteUsage(w io.Writer, program string) error {
	if _, err := fmt.Fprintf(w, "\nusage: %s [options]\n%s", program, usageOptions); err != nil {
		return fmt.Errorf("failed to write usage: %w", err)
	}
	return nil
}
