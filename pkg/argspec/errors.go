// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArg is the sentinel wrapped by every InvalidArgError.
	ErrInvalidArg = errors.New("invalid argument definition")

	// ErrEmptyName is the reason used when an argument has no name.
	ErrEmptyName = errors.New("argument name must not be empty")

	// ErrRequiredFlag is the reason used when a flag is marked Required.
	// Flags signal presence only, so requiring one is meaningless.
	ErrRequiredFlag = errors.New("a flag cannot be required")

	// ErrPositionalSwitch is the reason used when a positional argument declares
	// both a short and a long form.
	ErrPositionalSwitch = errors.New("a positional argument cannot declare both short and long forms")

	// ErrZeroIndex is the reason used when a positional argument is given index 0.
	// Positional indices are 1-based.
	ErrZeroIndex = errors.New("positional index must be 1 or greater")

	// ErrMissingSwitch is the reason used by Build when an argument has neither a
	// switch form nor a positional index.
	ErrMissingSwitch = errors.New("argument needs a short form, a long form or a positional index")
)

// InvalidArgError reports a construction-time invariant violation in an
// argument definition. It names the offending argument and the kind that was
// being built, and wraps both ErrInvalidArg and the specific Reason.
type InvalidArgError struct {
	// Name is the argument name as declared (may be empty for ErrEmptyName).
	Name string
	// Kind is the concrete kind whose constructor rejected the definition.
	Kind Kind
	// Reason is one of the Err* reason sentinels.
	Reason error
	// Hint is an optional remediation shown after the reason.
	Hint string
}

// Error implements the error interface for InvalidArgError.
func (e *InvalidArgError) Error() string {
	msg := fmt.Sprintf("argument '%s' (%s): %s", e.Name, e.Kind, e.Reason)
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

// Unwrap returns the sentinel and the reason, so errors.Is matches either.
func (e *InvalidArgError) Unwrap() []error {
	return []error{ErrInvalidArg, e.Reason}
}

func invalidArg(name string, kind Kind, reason error, hint string) *InvalidArgError {
	return &InvalidArgError{Name: name, Kind: kind, Reason: reason, Hint: hint}
}
