// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Required marks an argument that must be present unless waived by RequiredUnless.
	Required Setting = 1 << iota
	// Multiple allows the argument to occur (or take values) more than once.
	Multiple
	// EmptyValues allows an empty string as a value.
	EmptyValues
	// Global propagates the argument to all subcommands.
	Global
	// Hidden keeps the argument out of help, usage and completion output.
	Hidden
	// TakesValue marks a switched argument that consumes a value.
	TakesValue
	// UseValueDelimiter splits a single token on the value delimiter.
	UseValueDelimiter
	// NextLineHelp renders the help text on the line after the argument.
	NextLineHelp
	// RequireDelimiter only accepts multiple values when they are delimited.
	RequireDelimiter
	// HidePossibleValues omits the possible values from help output.
	HidePossibleValues
	// AllowLeadingHyphen accepts values starting with '-'.
	AllowLeadingHyphen
	// RequireEquals requires the --opt=value form.
	RequireEquals
	// Last marks a positional only reachable after "--".
	Last
	// HideDefaultValue omits the default value from help output.
	HideDefaultValue
)

// ErrInvalidSetting is returned when a setting name is not recognized.
var ErrInvalidSetting = errors.New("invalid setting")

type (
	// Setting is a single independent boolean trait of an argument.
	// The matching engine owns the meaning of each trait; this package only
	// stores them and answers membership queries.
	Setting uint32

	// Settings is a bit-set of Setting values. The zero value is the empty set.
	Settings uint32

	// InvalidSettingError is returned by ParseSetting for an unknown name.
	// It wraps ErrInvalidSetting for errors.Is() compatibility.
	InvalidSettingError struct {
		Value string
	}
)

// settingNames lists every setting in declaration order with its file-syntax name.
var settingNames = []struct {
	setting Setting
	name    string
}{
	{Required, "required"},
	{Multiple, "multiple"},
	{EmptyValues, "empty_values"},
	{Global, "global"},
	{Hidden, "hidden"},
	{TakesValue, "takes_value"},
	{UseValueDelimiter, "use_value_delimiter"},
	{NextLineHelp, "next_line_help"},
	{RequireDelimiter, "require_delimiter"},
	{HidePossibleValues, "hide_possible_values"},
	{AllowLeadingHyphen, "allow_leading_hyphen"},
	{RequireEquals, "require_equals"},
	{Last, "last"},
	{HideDefaultValue, "hide_default_value"},
}

// Error implements the error interface for InvalidSettingError.
func (e *InvalidSettingError) Error() string {
	return fmt.Sprintf("invalid setting %q", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSettingError) Unwrap() error {
	return ErrInvalidSetting
}

// ParseSetting resolves a snake_case setting name (e.g. "takes_value").
func ParseSetting(name string) (Setting, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for _, sn := range settingNames {
		if sn.name == normalized {
			return sn.setting, nil
		}
	}
	return 0, &InvalidSettingError{Value: name}
}

// String returns the snake_case name of the setting.
func (s Setting) String() string {
	for _, sn := range settingNames {
		if sn.setting == s {
			return sn.name
		}
	}
	return fmt.Sprintf("setting(%d)", uint32(s))
}

// NewSettings returns a set containing the given settings.
func NewSettings(settings ...Setting) Settings {
	var set Settings
	for _, s := range settings {
		set.Set(s)
	}
	return set
}

// Set adds s to the set.
func (ss *Settings) Set(s Setting) {
	*ss |= Settings(s)
}

// Unset removes s from the set.
func (ss *Settings) Unset(s Setting) {
	*ss &^= Settings(s)
}

// IsSet reports whether s is a member of the set.
func (ss Settings) IsSet(s Setting) bool {
	return ss&Settings(s) != 0
}

// IsEmpty reports whether no setting is present.
func (ss Settings) IsEmpty() bool {
	return ss == 0
}

// String renders the members in declaration order joined by '|'.
func (ss Settings) String() string {
	var names []string
	for _, sn := range settingNames {
		if ss.IsSet(sn.setting) {
			names = append(names, sn.name)
		}
	}
	return strings.Join(names, "|")
}
