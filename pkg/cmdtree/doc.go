// SPDX-License-Identifier: MPL-2.0

// Package cmdtree loads declarative command definitions and builds the command
// tree the completion generator walks.
//
// A definition file describes one root command, its arguments and its nested
// subcommands. CUE, TOML and YAML are accepted; all three are checked against
// the same embedded CUE schema (#Definition), so they share one set of rules
// and build identical trees:
//
//	bin_name: "git"
//	command: {
//	    name: "git"
//	    args: [{name: "version", long: "version"}]
//	    subcommands: [{
//	        name: "commit"
//	        args: [
//	            {name: "message", short: "m", long: "message", takes_value: true},
//	            {name: "amend", long: "amend"},
//	        ]
//	    }]
//	}
//
// Build turns every argument definition into an argspec kind through the
// fallible constructors, then Validate checks the tree shape: names must be
// non-empty, a subcommand name may appear only once in the whole tree, and
// the tree must be acyclic.
package cmdtree
