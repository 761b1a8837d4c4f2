// SPDX-License-Identifier: MPL-2.0

// Package config handles argkit's user configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/argkit/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/argkit/config.cue on macOS, %APPDATA%\argkit\config.cue
// on Windows). Every file is validated against the embedded #Config schema before its
// values are merged over the defaults.
package config
