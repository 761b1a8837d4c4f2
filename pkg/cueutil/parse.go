// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult is the outcome of a successful decode.
type ParseResult[T any] struct {
	// Value is the decoded struct.
	Value *T

	// Unified is the schema-unified CUE value, for callers that need to look
	// up fields the Go struct does not carry.
	Unified cue.Value
}

// ParseAndDecode compiles schema, unifies data with the definition at
// schemaPath (e.g. "#Definition"), validates the result and decodes it into T.
//
// Errors caused by the input are returned as *Error; a schema that fails to
// compile or lacks schemaPath is reported as an internal error.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)

	if err := CheckFileSize(data, options.maxFileSize, options.filename); err != nil {
		return nil, err
	}

	cctx := cuecontext.New()
	schemaRoot, err := compileSchema(cctx, schema, schemaPath)
	if err != nil {
		return nil, err
	}

	userValue := cctx.CompileBytes(data, cue.Filename(options.filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), options.filename)
	}
	return unifyAndDecode[T](schemaRoot, userValue, options)
}

// DecodeValue is ParseAndDecode for data that was already parsed by another
// decoder (TOML, YAML) into plain Go maps, slices and scalars. The value goes
// through the same schema, so every input format is held to the same rules.
func DecodeValue[T any](schema []byte, in any, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)

	cctx := cuecontext.New()
	schemaRoot, err := compileSchema(cctx, schema, schemaPath)
	if err != nil {
		return nil, err
	}

	userValue := cctx.Encode(in)
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), options.filename)
	}
	return unifyAndDecode[T](schemaRoot, userValue, options)
}

func applyOptions(opts []Option) parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.filename == "" {
		options.filename = "<input>"
	}
	return options
}

func compileSchema(cctx *cue.Context, schema []byte, schemaPath string) (cue.Value, error) {
	schemaValue := cctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}
	return schemaRoot, nil
}

func unifyAndDecode[T any](schemaRoot, userValue cue.Value, options parseOptions) (*ParseResult[T], error) {
	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return nil, FormatError(err, options.filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, options.filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}
