// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/argkit/argkit/internal/issue"
	"github.com/argkit/argkit/pkg/argspec"
	"github.com/argkit/argkit/pkg/cmdtree"
	"github.com/argkit/argkit/pkg/completion"
	"github.com/argkit/argkit/pkg/cueutil"
)

// definitionError wraps a cmdtree failure into an actionable error linked to
// the catalog entry that explains it.
func definitionError(path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("load definitions").
		WithResource(path).
		Wrap(err)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		ctx.WithIssue(issue.DefinitionNotFoundId).
			WithSuggestion("Check the --file path for typos")
	case errors.Is(err, cmdtree.ErrUnsupportedFormat):
		ctx.WithIssue(issue.UnsupportedFormatId).
			WithSuggestion("Rename the file to .cue, .toml, .yaml or .yml")
	case errors.Is(err, argspec.ErrRequiredFlag):
		ctx.WithIssue(issue.InvalidArgumentId).
			WithSuggestion("Add 'takes_value: true' to turn the flag into an option")
	case errors.Is(err, argspec.ErrInvalidArg), errors.Is(err, cmdtree.ErrInvalidArgDef),
		errors.Is(err, argspec.ErrInvalidSetting), errors.Is(err, cmdtree.ErrDuplicateArg):
		ctx.WithIssue(issue.InvalidArgumentId)
	case errors.Is(err, cmdtree.ErrDuplicateCommand), errors.Is(err, cmdtree.ErrCycle),
		errors.Is(err, cmdtree.ErrEmptyCommandName):
		ctx.WithIssue(issue.DuplicateCommandId).
			WithSuggestion("Give every subcommand a name that is unique in the whole tree")
	default:
		ctx.WithIssue(issue.DefinitionParseErrorId)
		var cueErr *cueutil.Error
		if errors.As(err, &cueErr) {
			ctx.WithSuggestion("Fix the fields listed above and run 'argkit validate' again")
		}
	}

	return ctx.BuildError()
}

// commandNotFoundError wraps a failed command path lookup.
func commandNotFoundError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("find command").
		WithResource(path).
		WithIssue(issue.CommandNotFoundId).
		WithSuggestion("Run 'argkit validate --file " + path + "' to list the commands").
		Wrap(err).
		BuildError()
}

// shellError wraps an unknown shell name.
func shellError(err error) error {
	return issue.NewErrorContext().
		WithOperation("generate completions").
		WithIssue(issue.UnsupportedShellId).
		WithSuggestions(shellSuggestions()...).
		Wrap(err).
		BuildError()
}

func shellSuggestions() []string {
	var out []string
	for _, s := range completion.Shells() {
		out = append(out, "argkit completion "+s.String())
	}
	return out
}

// outputError wraps a failure to write the generated script.
func outputError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("write completion script").
		WithResource(path).
		WithIssue(issue.OutputWriteFailedId).
		Wrap(err).
		BuildError()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderError prints err and, when it links a catalog entry, the entry's page.
// ExitErrors without a cause have already been reported and print nothing.
func renderError(w io.Writer, err error, verbose bool, style string) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	entry := ae.CatalogEntry()
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(style)
	if renderErr != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", ae.Issue, "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
