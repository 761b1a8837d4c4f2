// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is a user-facing error: what failed, on which resource,
	// why, and what the user can do about it. Build it with ErrorContext:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load definitions").
	//		WithResource("./git.cue").
	//		WithIssue(issue.DefinitionParseErrorId).
	//		WithSuggestion("Run 'argkit validate --file ./git.cue' for details").
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase such as "generate completions".
		Operation string
		// Resource names the file, shell or command involved; may be empty.
		Resource string
		// Suggestions are remediation hints, shown as a bullet list.
		Suggestions []string
		// Issue links a catalog entry; 0 means none.
		Issue Id
		// Cause is the wrapped error; may be nil.
		Cause error
	}

	// ErrorContext accumulates the fields of an ActionableError.
	ErrorContext struct {
		draft ActionableError
	}
)

// NewErrorContext starts an empty ErrorContext.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithContext is the short form for errors without issue or suggestions.
// A nil err yields nil.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders Error followed by the suggestions. With verbose set, every
// error below the cause is listed as a numbered "Error chain".
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if e.HasSuggestions() {
		b.WriteByte('\n')
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "\n  • %s", s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		for i, msg := range causeChain(e.Cause) {
			fmt.Fprintf(&b, "\n  %d. %s", i+1, msg)
		}
	}

	return b.String()
}

// HasSuggestions reports whether any suggestion is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// CatalogEntry returns the linked catalog entry, or nil.
func (e *ActionableError) CatalogEntry() *Issue {
	if e.Issue == 0 {
		return nil
	}
	return Get(e.Issue)
}

// causeChain lists err and everything it wraps, depth first. Errors that wrap
// several others (Unwrap() []error) contribute each branch in order.
func causeChain(err error) []string {
	var out []string
	var visit func(error)
	visit = func(err error) {
		if err == nil {
			return
		}
		out = append(out, err.Error())
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				visit(inner)
			}
		default:
			visit(errors.Unwrap(err))
		}
	}
	visit(err)
	return out
}

// WithOperation sets the failed operation.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.draft.Operation = op
	return c
}

// WithResource sets the resource the operation acted on.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.draft.Resource = res
	return c
}

// WithSuggestion appends one suggestion.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	return c.WithSuggestions(sug)
}

// WithSuggestions appends suggestions in order.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.draft.Suggestions = append(c.draft.Suggestions, sugs...)
	return c
}

// WithIssue links a catalog entry.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.draft.Issue = id
	return c
}

// Wrap sets the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.draft.Cause = err
	return c
}

// Build returns the accumulated error, or nil when no operation was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.draft.Operation == "" {
		return nil
	}
	ae := c.draft
	ae.Suggestions = append([]string(nil), c.draft.Suggestions...)
	return &ae
}

// BuildError is Build typed as error, returning an untyped nil when no
// operation was set.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
