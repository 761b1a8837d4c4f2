// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"slices"
)

// SkipChildren may be returned by a WalkFunc to skip the command's subtree.
var SkipChildren = errors.New("skip children") //nolint:errname,staticcheck // control value like fs.SkipDir

// WalkFunc is called for every command with the names from the root down to it.
type WalkFunc func(path []string, c *Command) error

// Walk visits the tree depth first, parents before children, siblings in
// declaration order. The walk stops at the first error other than
// SkipChildren, which is returned. The tree must be acyclic.
func Walk(root *Command, fn WalkFunc) error {
	return walk(root, nil, fn)
}

func walk(c *Command, parent []string, fn WalkFunc) error {
	path := slices.Concat(parent, []string{c.name})
	if err := fn(path, c); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range c.children {
		if err := walk(child, path, fn); err != nil {
			return err
		}
	}
	return nil
}

// Find resolves a subcommand path below root. An empty path returns root.
func Find(root *Command, path ...string) (*Command, error) {
	cur := root
	for i, name := range path {
		idx := slices.IndexFunc(cur.children, func(c *Command) bool { return c.name == name })
		if idx < 0 {
			return nil, &CommandNotFoundError{Path: slices.Clone(path[:i+1])}
		}
		cur = cur.children[idx]
	}
	return cur, nil
}
