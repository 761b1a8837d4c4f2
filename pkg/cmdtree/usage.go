// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/argkit/argkit/pkg/argspec"
)

// Usage renders the usage line of the command at path below root:
//
//	git commit [--amend] [-m <message>] <pathspec>...
//
// Hidden arguments are left out. Optional arguments are bracketed. Switched
// arguments keep their display order, and positionals follow in index order.
func Usage(root *Command, path ...string) (string, error) {
	cmd, err := Find(root, path...)
	if err != nil {
		return "", err
	}

	parts := append([]string{root.BinName()}, path...)
	for _, f := range sortedByDispOrder(cmd.flags) {
		if !f.IsSet(argspec.Hidden) {
			parts = append(parts, "["+f.String()+"]")
		}
	}
	for _, o := range sortedByDispOrder(cmd.opts) {
		if !o.IsSet(argspec.Hidden) {
			parts = append(parts, bracketUnlessRequired(o))
		}
	}
	positionals := slices.SortedStableFunc(slices.Values(cmd.positionals), func(a, b *argspec.Positional) int {
		return cmp.Compare(a.Index(), b.Index())
	})
	for _, p := range positionals {
		if !p.IsSet(argspec.Hidden) {
			parts = append(parts, bracketUnlessRequired(p))
		}
	}
	return strings.Join(parts, " "), nil
}

type orderedArg interface {
	DispOrder() uint
}

func sortedByDispOrder[T orderedArg](args []T) []T {
	return slices.SortedStableFunc(slices.Values(args), func(a, b T) int {
		return cmp.Compare(a.DispOrder(), b.DispOrder())
	})
}

func bracketUnlessRequired(a argspec.AnyArg) string {
	if a.IsSet(argspec.Required) {
		return a.String()
	}
	return "[" + a.String() + "]"
}
