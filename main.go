// SPDX-License-Identifier: MPL-2.0

// argkit builds argument specs from command definitions and generates shell
// completion scripts for them.
package main

import "github.com/argkit/argkit/cmd/argkit"

func main() {
	cmd.Execute()
}
