// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"unicode/utf8"

	"github.com/argkit/argkit/pkg/completion"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cobraNode exposes a cobra command as a completion tree node, so argkit can
// generate completions for itself with the same generator it offers for
// definition files. Hidden, deprecated and help commands are left out, as are
// hidden flags.
type cobraNode struct {
	cmd *cobra.Command
}

func newCobraNode(c *cobra.Command) cobraNode {
	// cobra adds these flags lazily on execution; add them up front so every
	// node reports the same switches regardless of which command is running.
	c.InitDefaultHelpFlag()
	c.InitDefaultVersionFlag()
	return cobraNode{cmd: c}
}

func (n cobraNode) Name() string { return n.cmd.Name() }

func (n cobraNode) Subcommands() []completion.Node {
	var out []completion.Node
	for _, c := range n.cmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		out = append(out, newCobraNode(c))
	}
	return out
}

func (n cobraNode) Shorts() []rune {
	var out []rune
	n.visitFlags(func(f *pflag.Flag) {
		if r, size := utf8.DecodeRuneInString(f.Shorthand); size > 0 && size == len(f.Shorthand) {
			out = append(out, r)
		}
	})
	return out
}

func (n cobraNode) Longs() []string {
	var out []string
	n.visitFlags(func(f *pflag.Flag) {
		out = append(out, f.Name)
	})
	return out
}

// visitFlags visits local flags, then inherited persistent flags, skipping hidden ones.
func (n cobraNode) visitFlags(fn func(*pflag.Flag)) {
	visit := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		fn(f)
	}
	n.cmd.LocalFlags().VisitAll(visit)
	n.cmd.InheritedFlags().VisitAll(visit)
}
