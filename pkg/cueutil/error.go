// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned by CheckFileSize.
var ErrFileTooLarge = errors.New("file too large")

type (
	// ValidationError is a single problem found in a CUE input.
	ValidationError struct {
		// FilePath is the file being validated.
		FilePath string

		// CUEPath is the JSON-style path to the offending value (e.g. "command.args[0].short").
		CUEPath string

		// Message is the problem description.
		Message string
	}

	// Error collects every problem CUE reported for one input.
	Error struct {
		FilePath string
		Problems []ValidationError
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.CUEPath != "" {
		return fmt.Sprintf("%s: %s: %s", e.FilePath, e.CUEPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// Error renders a single problem on one line, and several as an indented list.
func (e *Error) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0].Error()
	}
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		if p.CUEPath != "" {
			lines[i] = p.CUEPath + ": " + p.Message
		} else {
			lines[i] = p.Message
		}
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(lines, "\n  "))
}

// FormatError converts a CUE error into an *Error whose problems carry
// JSON-style paths:
//
//	git.cue: command.subcommands[0].name: conflicting values "a" and 1
//
// Errors that do not come from CUE are wrapped with the file path.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	// cueerrors.Errors would convert any error, losing the original chain.
	var cueErr cueerrors.Error
	if !errors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	cueErrs := cueerrors.Errors(err)

	out := &Error{FilePath: filePath}
	for _, ce := range cueErrs {
		path := formatPath(cueerrors.Path(ce))
		msg := ce.Error()
		// CUE sometimes repeats the path at the start of the message.
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		out.Problems = append(out.Problems, ValidationError{FilePath: filePath, CUEPath: path, Message: msg})
	}
	return out
}

// formatPath turns CUE's ["a", "0", "b"] into "a[0].b".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error wrapping ErrFileTooLarge when data exceeds maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: %w: %d bytes exceeds maximum %d bytes", filename, ErrFileTooLarge, len(data), maxSize)
	}
	return nil
}
