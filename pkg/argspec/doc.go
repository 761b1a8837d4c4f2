// SPDX-License-Identifier: MPL-2.0

// Package argspec models the declared contract of a single command-line argument.
//
// An argument is assembled from facets, each a plain struct embedded by value:
//
//   - Base: name, help text, settings and the relations to other arguments
//     (conflicts, requirements, overrides, groups)
//   - Switched: the short/long invocation forms and aliases
//   - Valued: cardinality, value names, possible values, validator and default
//
// The concrete kinds pick the facets they need:
//
//	Flag       = Base + Switched
//	Opt        = Base + Switched + Valued
//	Positional = Base + Valued + index
//
// Downstream code should depend on the capability views (BaseArg, SwitchedArg,
// ValuedArg) rather than on a concrete kind, so that, for example, help output can
// list "anything with a Switched facet" without a type switch.
//
// Kinds are normally built from a kind-agnostic Arg with FlagFromArg, OptFromArg,
// PositionalFromArg or Build. These constructors enforce the construction-time
// invariants (a flag cannot be required, a positional cannot be both short and
// long) and return an *InvalidArgError instead of silently correcting the definition.
//
// Every kind implements fmt.Stringer, rendering the usage fragment shown in usage
// lines, e.g. "--output <file>" or "<input>...".
package argspec
