// SPDX-License-Identifier: MPL-2.0

// Package completion generates native shell completion scripts from a command tree.
//
// The generator walks the tree once, depth first. Every command gets a qualified
// id built from the names on its path ("_git_remote_add"), and two fragments are
// collected along the way:
//
//   - detection cases, one per non-root command, keyed on the bare command name;
//     at completion time the script feeds every typed token through them and
//     appends "_<name>" to a running command id when one matches
//   - completion cases, one per command, keyed on its qualified id and listing
//     the candidates at that point: subcommand names, then -x for every short
//     form, then --name for every long form, in declaration order
//
// The fragments are then placed in a shell template that registers the
// completer for every invocation name of the binary, filters the candidates by
// the word being completed, and sorts them.
//
// PowerShell is the primary target. Bash uses the same walk with a different
// case syntax and quoting.
package completion
