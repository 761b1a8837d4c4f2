// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/argkit/argkit/internal/issue"
	"github.com/argkit/argkit/pkg/cmdtree"
	"github.com/argkit/argkit/pkg/completion"
)

func loadErr(t *testing.T, name, content string) error {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	_, err := cmdtree.Load(context.Background(), path)
	if err == nil {
		t.Fatalf("cmdtree.Load(%s) expected error", name)
	}
	return err
}

func TestDefinitionErrorIssue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  func(t *testing.T) error
		want issue.Id
	}{
		{
			name: "missing file",
			err: func(t *testing.T) error {
				return fmt.Errorf("read: %w", fs.ErrNotExist)
			},
			want: issue.DefinitionNotFoundId,
		},
		{
			name: "unsupported format",
			err: func(t *testing.T) error {
				return &cmdtree.UnsupportedFormatError{Path: "defs.json"}
			},
			want: issue.UnsupportedFormatId,
		},
		{
			name: "required flag",
			err: func(t *testing.T) error {
				return loadErr(t, "defs.cue", `command: {name: "t", args: [{name: "f", long: "f", required: true}]}`)
			},
			want: issue.InvalidArgumentId,
		},
		{
			name: "duplicate command",
			err: func(t *testing.T) error {
				return loadErr(t, "defs.yaml", "command:\n  name: t\n  subcommands:\n    - name: a\n      subcommands: [{name: b}]\n    - name: b\n")
			},
			want: issue.DuplicateCommandId,
		},
		{
			name: "schema violation",
			err: func(t *testing.T) error {
				return loadErr(t, "defs.toml", "[command]\nname = \"t\"\nunknown = 1\n")
			},
			want: issue.DefinitionParseErrorId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cause := tt.err(t)
			err := definitionError("defs", cause)

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("definitionError() = %T, want *issue.ActionableError", err)
			}
			if ae.Issue != tt.want {
				t.Errorf("Issue = %d, want %d (cause: %v)", ae.Issue, tt.want, cause)
			}
			if !errors.Is(err, cause) {
				t.Error("definitionError() must wrap the cause")
			}
			if ae.Operation != "load definitions" || ae.Resource != "defs" {
				t.Errorf("Operation/Resource = %q/%q", ae.Operation, ae.Resource)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	t.Run("actionable with catalog entry", func(t *testing.T) {
		t.Parallel()

		_, parseErr := completion.ParseShell("fish")
		var buf bytes.Buffer
		renderError(&buf, shellError(parseErr), false, "notty")

		out := buf.String()
		for _, want := range []string{
			`failed to generate completions: unsupported shell "fish"`,
			"argkit completion powershell",
			"Unsupported shell",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("renderError() output missing %q\n%s", want, out)
			}
		}
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderError(&buf, errors.New("boom"), false, "notty")
		if !strings.Contains(buf.String(), "boom") {
			t.Errorf("renderError() = %q", buf.String())
		}
	})

	t.Run("reported exit error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderError(&buf, &ExitError{Code: 2}, false, "notty")
		if buf.Len() != 0 {
			t.Errorf("renderError() should print nothing, got %q", buf.String())
		}
	})

	t.Run("verbose chain", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := outputError("/nope/out.ps1", fmt.Errorf("open: %w", fs.ErrPermission))
		renderError(&buf, err, true, "notty")
		if !strings.Contains(buf.String(), "Error chain:") {
			t.Errorf("verbose renderError() should print the chain\n%s", buf.String())
		}
	})
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("Error() = %q", got)
	}
	cause := errors.New("cause")
	e := &ExitError{Code: 1, Err: cause}
	if e.Error() != "cause" || !errors.Is(e, cause) {
		t.Errorf("ExitError should wrap its cause")
	}
}
