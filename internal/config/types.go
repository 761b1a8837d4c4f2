// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/argkit/argkit/pkg/completion"
)

const (
	// ColorSchemeAuto lets glamour detect the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark renders issue pages for dark backgrounds.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight renders issue pages for light backgrounds.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	colorSchemes = []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight}
)

type (
	// ColorScheme selects how issue catalog pages are rendered.
	ColorScheme string

	// InvalidColorSchemeError reports a color_scheme value outside the known set.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError groups every field error found in a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the effective argkit configuration.
	Config struct {
		Completion CompletionConfig `json:"completion" mapstructure:"completion"`
		UI         UIConfig         `json:"ui" mapstructure:"ui"`
	}

	// CompletionConfig holds the defaults of "argkit completion".
	CompletionConfig struct {
		// DefaultShell is used when no shell argument is given.
		DefaultShell completion.Shell `json:"default_shell" mapstructure:"default_shell"`
		// WindowsAliases registers the .exe and .\ invocation names on every platform.
		WindowsAliases bool `json:"windows_aliases" mapstructure:"windows_aliases"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

func (e *InvalidColorSchemeError) Error() string {
	names := make([]string, len(colorSchemes))
	for i, cs := range colorSchemes {
		names[i] = cs.String()
	}
	return fmt.Sprintf("invalid color scheme %q (valid: %s)", e.Value, strings.Join(names, ", "))
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

func (cs ColorScheme) String() string { return string(cs) }

// IsValid reports whether cs is a known scheme.
func (cs ColorScheme) IsValid() (bool, []error) {
	if slices.Contains(colorSchemes, cs) {
		return true, nil
	}
	return false, []error{&InvalidColorSchemeError{Value: cs}}
}

// GlamourStyle maps the scheme to a glamour standard style name. Unknown
// values fall back to auto detection.
func (cs ColorScheme) GlamourStyle() string {
	if cs == ColorSchemeDark || cs == ColorSchemeLight {
		return string(cs)
	}
	return string(ColorSchemeAuto)
}

// IsValid checks every enumerated field and collects all failures into a
// single InvalidConfigError.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, check := range []func() (bool, []error){
		c.Completion.DefaultShell.IsValid,
		c.UI.ColorScheme.IsValid,
	} {
		if ok, fieldErrs := check(); !ok {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) == 0 {
		return true, nil
	}
	return false, []error{&InvalidConfigError{FieldErrors: errs}}
}

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Completion: CompletionConfig{DefaultShell: completion.ShellPowerShell},
		UI:         UIConfig{ColorScheme: ColorSchemeAuto},
	}
}
