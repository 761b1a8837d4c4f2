// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/argkit/argkit/internal/issue"
	"github.com/argkit/argkit/pkg/cueutil"

	"github.com/spf13/viper"
)

//go:embed config_schema.cue
var configSchema []byte

// loadWithOptions builds the effective configuration: defaults, then the
// config file if one is found. The second result is the file that was read,
// or "" when only defaults apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	path, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}

	v := viper.New()
	for key, value := range defaultSettings() {
		v.SetDefault(key, value)
	}

	if path != "" {
		if err := mergeConfigFile(v, path); err != nil {
			return nil, "", loadError(path, err,
				"Check that the file contains valid CUE syntax",
				"Only completion.default_shell, completion.windows_aliases, ui.color_scheme and ui.verbose are recognized",
				"Run 'argkit config dump' on a working setup to see a valid file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	if ok, errs := cfg.IsValid(); !ok {
		return nil, "", errors.Join(errs...)
	}

	return &cfg, path, nil
}

// defaultSettings maps every viper key to its built-in value.
func defaultSettings() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"completion.default_shell":   d.Completion.DefaultShell,
		"completion.windows_aliases": d.Completion.WindowsAliases,
		"ui.color_scheme":            d.UI.ColorScheme,
		"ui.verbose":                 d.UI.Verbose,
	}
}

// resolveConfigFile returns the file to read. A missing file at the default
// location yields "", but an explicitly requested file must exist.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !isRegularFile(opts.ConfigFilePath) {
			return "", loadError(opts.ConfigFilePath,
				fmt.Errorf("config file not found: %s", opts.ConfigFilePath),
				"Verify the file path is correct",
				"Use 'argkit config init' to create a default configuration")
		}
		return opts.ConfigFilePath, nil
	}

	path, err := ConfigFilePath(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	if !isRegularFile(path) {
		return "", nil
	}
	return path, nil
}

// mergeConfigFile validates path against #Config and merges the fields it sets
// over the defaults registered on v. Unset optional fields are left alone, so
// the schema is checked without requiring concrete values.
func mergeConfigFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	res, err := cueutil.ParseAndDecode[map[string]any](configSchema, data, "#Config",
		cueutil.WithConcrete(false),
		cueutil.WithFilename(path),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}
	return nil
}

func loadError(path string, cause error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithIssue(issue.ConfigLoadFailedId).
		WithSuggestions(suggestions...).
		Wrap(cause).
		BuildError()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
