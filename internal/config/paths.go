// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName names the per-user configuration directory.
	AppName = "argkit"
	// ConfigFileName is the config file name without its extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension; the file is CUE.
	ConfigFileExt = "cue"
)

// ConfigDir returns the directory holding argkit's config file:
// %APPDATA%\argkit on Windows, ~/Library/Application Support/argkit on macOS
// and $XDG_CONFIG_HOME/argkit elsewhere, with ~/.config as the XDG fallback.
//
//nolint:revive // config.Dir would read ambiguously at call sites
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	base, err := userConfigBase(runtime.GOOS, os.Getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// ConfigFilePath returns the config file inside dir, or inside ConfigDir when
// dir is empty.
//
//nolint:revive // mirrors ConfigDir
func ConfigFilePath(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// userConfigBase returns the per-user configuration root for goos.
func userConfigBase(goos string, getenv func(string) string) (string, error) {
	switch goos {
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	}

	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}
