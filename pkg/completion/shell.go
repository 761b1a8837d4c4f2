// SPDX-License-Identifier: MPL-2.0

package completion

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ShellPowerShell generates a Register-ArgumentCompleter script.
	ShellPowerShell Shell = "powershell"
	// ShellBash generates a script for bash's programmable completion (complete -F).
	ShellBash Shell = "bash"
)

// ErrUnsupportedShell is the sentinel error wrapped by UnsupportedShellError.
var ErrUnsupportedShell = errors.New("unsupported shell")

type (
	// Shell names a target shell.
	Shell string

	// UnsupportedShellError is returned when a Shell value is not recognized.
	// It wraps ErrUnsupportedShell for errors.Is() compatibility.
	UnsupportedShellError struct {
		Value Shell
	}
)

// Error implements the error interface for UnsupportedShellError.
func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell %q (valid: %s)", e.Value, shellList())
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnsupportedShellError) Unwrap() error {
	return ErrUnsupportedShell
}

// Shells returns every supported shell.
func Shells() []Shell {
	return []Shell{ShellPowerShell, ShellBash}
}

// ParseShell resolves a shell name case-insensitively. "pwsh" is accepted
// as PowerShell.
func ParseShell(name string) (Shell, error) {
	s := Shell(strings.ToLower(strings.TrimSpace(name)))
	if s == "pwsh" {
		s = ShellPowerShell
	}
	if ok, errs := s.IsValid(); !ok {
		return "", errs[0]
	}
	return s, nil
}

// String returns the string representation of the Shell.
func (s Shell) String() string { return string(s) }

// IsValid returns whether the Shell is supported, and a list of validation
// errors if it is not.
func (s Shell) IsValid() (bool, []error) {
	switch s {
	case ShellPowerShell, ShellBash:
		return true, nil
	default:
		return false, []error{&UnsupportedShellError{Value: s}}
	}
}

func (s Shell) renderer() renderer {
	switch s {
	case ShellBash:
		return bashRenderer{}
	default:
		return powerShellRenderer{}
	}
}

func shellList() string {
	names := make([]string, 0, len(Shells()))
	for _, s := range Shells() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
