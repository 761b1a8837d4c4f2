// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the argkit command-line interface.
//
// argkit loads command definitions (CUE, TOML or YAML), checks them, renders
// usage lines and generates shell completion scripts for them. Without a
// definition file, the completion command describes argkit's own commands.
package cmd
