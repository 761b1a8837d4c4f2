// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Every CUE input in argkit (command definition files and the user
// configuration) goes through the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode the result into a Go struct
//
// # Usage
//
//	//go:embed definition_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Definition](
//	    schemaBytes,
//	    data,
//	    "#Definition",
//	    cueutil.WithFilename("git.cue"),
//	)
//	if err != nil {
//	    return nil, err // *cueutil.Error, one problem per offending field
//	}
//	return result.Value, nil
package cueutil
