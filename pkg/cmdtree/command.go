// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"github.com/argkit/argkit/pkg/argspec"
	"github.com/argkit/argkit/pkg/completion"
)

// Command is a node of a built command tree.
type Command struct {
	name        string
	binName     string
	about       string
	flags       []*argspec.Flag
	opts        []*argspec.Opt
	positionals []*argspec.Positional
	children    []*Command
}

var _ completion.Node = (*Command)(nil)

// NewCommand returns an empty command.
func NewCommand(name string) *Command {
	return &Command{name: name}
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// BinName returns the executable name, falling back to the command name.
// Only the root's value is meaningful.
func (c *Command) BinName() string {
	if c.binName != "" {
		return c.binName
	}
	return c.name
}

// SetBinName sets the executable name.
func (c *Command) SetBinName(name string) { c.binName = name }

// About returns the one-line description.
func (c *Command) About() string { return c.about }

// SetAbout sets the one-line description.
func (c *Command) SetAbout(about string) { c.about = about }

// Flags returns the command's flags in declaration order.
func (c *Command) Flags() []*argspec.Flag { return c.flags }

// Opts returns the command's options in declaration order.
func (c *Command) Opts() []*argspec.Opt { return c.opts }

// Positionals returns the command's positional arguments in declaration order.
func (c *Command) Positionals() []*argspec.Positional { return c.positionals }

// Children returns the direct subcommands in declaration order.
func (c *Command) Children() []*Command { return c.children }

// Args returns every argument: flags, then options, then positionals.
func (c *Command) Args() []argspec.AnyArg {
	out := make([]argspec.AnyArg, 0, len(c.flags)+len(c.opts)+len(c.positionals))
	for _, f := range c.flags {
		out = append(out, f)
	}
	for _, o := range c.opts {
		out = append(out, o)
	}
	for _, p := range c.positionals {
		out = append(out, p)
	}
	return out
}

// Arg looks up an argument by name.
func (c *Command) Arg(name string) (argspec.AnyArg, bool) {
	for _, a := range c.Args() {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// AddArg appends an argument. Names must be unique within the command.
func (c *Command) AddArg(a argspec.AnyArg) error {
	if _, exists := c.Arg(a.Name()); exists {
		return &DuplicateArgError{Command: c.name, Name: a.Name()}
	}
	switch v := a.(type) {
	case *argspec.Flag:
		c.flags = append(c.flags, v)
	case *argspec.Opt:
		c.opts = append(c.opts, v)
	case *argspec.Positional:
		c.positionals = append(c.positionals, v)
	}
	return nil
}

// AddSubcommand appends child and returns it.
func (c *Command) AddSubcommand(child *Command) *Command {
	c.children = append(c.children, child)
	return child
}

// Subcommands implements completion.Node.
func (c *Command) Subcommands() []completion.Node {
	nodes := make([]completion.Node, len(c.children))
	for i, child := range c.children {
		nodes[i] = child
	}
	return nodes
}

// Shorts implements completion.Node: the short forms of the visible flags,
// then of the visible options.
func (c *Command) Shorts() []rune {
	var out []rune
	for _, s := range c.switched() {
		if r, ok := s.Short(); ok {
			out = append(out, r)
		}
	}
	return out
}

// Longs implements completion.Node: for each visible flag, then each visible
// option, its long form followed by its visible aliases.
func (c *Command) Longs() []string {
	var out []string
	for _, s := range c.switched() {
		if l, ok := s.Long(); ok {
			out = append(out, l)
		}
		out = append(out, s.Aliases()...)
	}
	return out
}

// switched returns the non-hidden flags and options in completion order.
func (c *Command) switched() []argspec.SwitchedArg {
	var out []argspec.SwitchedArg
	for _, f := range c.flags {
		if !f.IsSet(argspec.Hidden) {
			out = append(out, f)
		}
	}
	for _, o := range c.opts {
		if !o.IsSet(argspec.Hidden) {
			out = append(out, o)
		}
	}
	return out
}
