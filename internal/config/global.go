// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform lookup in ConfigDir when set.
var configDirOverride string

// SetConfigDirOverride makes ConfigDir return dir. Tests and the CLI script
// harness use it to keep reads and writes inside a temporary directory.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears the override set by SetConfigDirOverride.
func Reset() {
	configDirOverride = ""
}
