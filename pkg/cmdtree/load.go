// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/argkit/argkit/pkg/cueutil"
)

const (
	// FormatCUE is the CUE definition format.
	FormatCUE Format = "cue"
	// FormatTOML is the TOML definition format.
	FormatTOML Format = "toml"
	// FormatYAML is the YAML definition format.
	FormatYAML Format = "yaml"

	schemaRoot = "#Definition"
)

//go:embed definition_schema.cue
var definitionSchema []byte

// Format is the syntax of a definition file.
type Format string

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &UnsupportedFormatError{Path: path}
	}
}

// Load reads, decodes and builds the definition file at path.
func Load(ctx context.Context, path string) (*Command, error) {
	def, err := LoadDefinition(ctx, path)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// LoadDefinition reads and decodes the definition file at path without building it.
func LoadDefinition(ctx context.Context, path string) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}
	return Parse(data, format, path)
}

// Parse decodes a definition from data. Every format is validated against the
// #Definition schema; TOML and YAML are first decoded into generic values.
func Parse(data []byte, format Format, filename string) (*Definition, error) {
	opts := []cueutil.Option{cueutil.WithFilename(filename)}

	var (
		result *cueutil.ParseResult[Definition]
		err    error
	)
	switch format {
	case FormatCUE:
		result, err = cueutil.ParseAndDecode[Definition](definitionSchema, data, schemaRoot, opts...)
	case FormatTOML, FormatYAML:
		if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
			return nil, err
		}
		var generic map[string]any
		if format == FormatTOML {
			err = toml.Unmarshal(data, &generic)
		} else {
			err = yaml.Unmarshal(data, &generic)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		result, err = cueutil.DecodeValue[Definition](definitionSchema, generic, schemaRoot, opts...)
	default:
		return nil, &UnsupportedFormatError{Path: filename}
	}
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}
