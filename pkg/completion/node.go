// SPDX-License-Identifier: MPL-2.0

package completion

// Node is the read-only view of a command the generator walks.
// Implementations must return the same values on every call during a generation.
type Node interface {
	// Name is the command's bare name as typed on the command line.
	Name() string
	// Subcommands returns the direct children in declaration order.
	Subcommands() []Node
	// Shorts returns the single-character forms of the command's switches.
	Shorts() []rune
	// Longs returns the long forms (without dashes) of the command's switches,
	// including visible aliases.
	Longs() []string
}
