// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks the shape of the tree rooted at root and returns every
// problem found, joined:
//
//   - every command has a non-empty name
//   - no two non-root commands share a name, wherever they sit in the tree
//   - no command is its own ancestor
func Validate(root *Command) error {
	v := validator{seen: make(map[string]string), onPath: make(map[*Command]bool)}
	v.visit(root, nil)
	return errors.Join(v.errs...)
}

type validator struct {
	seen   map[string]string
	onPath map[*Command]bool
	errs   []error
}

func (v *validator) visit(c *Command, parent []string) {
	path := slices.Concat(parent, []string{c.name})
	display := strings.Join(path, " ")

	if v.onPath[c] {
		v.errs = append(v.errs, &CycleError{Path: path})
		return
	}
	if c.name == "" {
		v.errs = append(v.errs, fmt.Errorf("%w (under %q)", ErrEmptyCommandName, strings.Join(parent, " ")))
	} else if len(parent) > 0 {
		if first, dup := v.seen[c.name]; dup {
			v.errs = append(v.errs, &DuplicateCommandError{Name: c.name, First: first, Second: display})
		} else {
			v.seen[c.name] = display
		}
	}

	v.onPath[c] = true
	for _, child := range c.children {
		v.visit(child, path)
	}
	delete(v.onPath, c)
}
