// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is the sentinel error wrapped by UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported definition format")
	// ErrInvalidArgDef is the sentinel error wrapped by ArgDefError.
	ErrInvalidArgDef = errors.New("invalid argument definition")
	// ErrEmptyCommandName is returned by Validate for a command without a name.
	ErrEmptyCommandName = errors.New("command name must not be empty")
	// ErrDuplicateCommand is the sentinel error wrapped by DuplicateCommandError.
	ErrDuplicateCommand = errors.New("duplicate command name")
	// ErrDuplicateArg is the sentinel error wrapped by DuplicateArgError.
	ErrDuplicateArg = errors.New("duplicate argument name")
	// ErrCycle is the sentinel error wrapped by CycleError.
	ErrCycle = errors.New("command tree contains a cycle")
	// ErrCommandNotFound is the sentinel error wrapped by CommandNotFoundError.
	ErrCommandNotFound = errors.New("command not found")
)

type (
	// UnsupportedFormatError is returned for a definition file whose extension
	// is not .cue, .toml, .yaml or .yml.
	UnsupportedFormatError struct {
		Path string
	}

	// ArgDefError reports an argument definition that could not be converted.
	// Err is either a file-level problem (bad setting name, short form, regular
	// expression) or an *argspec.InvalidArgError.
	ArgDefError struct {
		Command string
		Arg     string
		Err     error
	}

	// DuplicateCommandError is returned when a command name is used twice.
	// Completion detection is keyed on bare names, so the restriction is
	// tree-wide, not only among siblings.
	DuplicateCommandError struct {
		Name   string
		First  string
		Second string
	}

	// DuplicateArgError is returned when two arguments of one command share a name.
	DuplicateArgError struct {
		Command string
		Name    string
	}

	// CycleError is returned when a command is its own ancestor.
	CycleError struct {
		Path []string
	}

	// CommandNotFoundError is returned by Find for an unknown path.
	CommandNotFoundError struct {
		Path []string
	}
)

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported definition format for %q (valid: .cue, .toml, .yaml, .yml)", e.Path)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// Error implements the error interface.
func (e *ArgDefError) Error() string {
	return fmt.Sprintf("command %q: argument %q: %v", e.Command, e.Arg, e.Err)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *ArgDefError) Unwrap() []error { return []error{ErrInvalidArgDef, e.Err} }

// Error implements the error interface.
func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command name %q is used by both %q and %q", e.Name, e.First, e.Second)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateCommandError) Unwrap() error { return ErrDuplicateCommand }

// Error implements the error interface.
func (e *DuplicateArgError) Error() string {
	return fmt.Sprintf("command %q: argument %q declared twice", e.Command, e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateArgError) Unwrap() error { return ErrDuplicateArg }

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("command tree contains a cycle: %s", strings.Join(e.Path, " -> "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *CycleError) Unwrap() error { return ErrCycle }

// Error implements the error interface.
func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", strings.Join(e.Path, " "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *CommandNotFoundError) Unwrap() error { return ErrCommandNotFound }
