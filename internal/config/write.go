// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrConfigExists is returned by CreateDefaultConfig when the file is already
// present and overwrite was not requested.
var ErrConfigExists = errors.New("config file already exists")

// CreateDefaultConfig writes the default configuration into dir (ConfigDir
// when empty) and returns the file path. An existing file is kept and
// ErrConfigExists returned, unless force is set.
func CreateDefaultConfig(dir string, force bool) (string, error) {
	path, err := ConfigFilePath(dir)
	if err != nil {
		return "", err
	}

	if !force && isRegularFile(path) {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := Save(DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}

// Save writes cfg as CUE to path, creating missing parent directories. The
// file is replaced in one rename so a reader never sees a partial write.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+ConfigFileName+"-*."+ConfigFileExt)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.WriteString(GenerateCUE(cfg)); err != nil {
		tmp.Close() //nolint:errcheck,gosec // the write error is reported
		return fmt.Errorf("write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg in the config file syntax. Every key is written, so
// the output documents the full set of settings.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder
	sb.WriteString("// argkit configuration.\n")
	sb.WriteString("// Run 'argkit config path' to see where this file is read from.\n")

	writeCUEStruct(&sb, "completion", [][2]string{
		{"default_shell", strconv.Quote(cfg.Completion.DefaultShell.String())},
		{"windows_aliases", strconv.FormatBool(cfg.Completion.WindowsAliases)},
	})
	writeCUEStruct(&sb, "ui", [][2]string{
		{"color_scheme", strconv.Quote(cfg.UI.ColorScheme.String())},
		{"verbose", strconv.FormatBool(cfg.UI.Verbose)},
	})

	return sb.String()
}

func writeCUEStruct(sb *strings.Builder, name string, fields [][2]string) {
	fmt.Fprintf(sb, "\n%s: {\n", name)
	for _, f := range fields {
		fmt.Fprintf(sb, "\t%s: %s\n", f[0], f[1])
	}
	sb.WriteString("}\n")
}
