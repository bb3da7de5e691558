// SPDX-License-Identifier: MPL-2.0

package main

import cmd "sonar-runner-cli/cmd/sonarrunner"

func main() {
	cmd.Execute()
}
