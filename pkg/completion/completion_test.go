// SPDX-License-Identifier: MPL-2.0

package completion

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testNode struct {
	name     string
	children []*testNode
	shorts   []rune
	longs    []string
}

func (n *testNode) Name() string     { return n.name }
func (n *testNode) Shorts() []rune   { return n.shorts }
func (n *testNode) Longs() []string  { return n.longs }
func (n *testNode) Subcommands() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func gitTree() *testNode {
	return &testNode{
		name:     "git",
		children: []*testNode{{name: "commit"}},
	}
}

func TestWalkCaseCounts(t *testing.T) {
	t.Parallel()

	for _, shell := range Shells() {
		t.Run(shell.String(), func(t *testing.T) {
			t.Parallel()

			root := &testNode{name: "app", children: []*testNode{{name: "sub"}}}
			var f fragments
			if err := f.walk(shell.renderer(), root, ""); err != nil {
				t.Fatalf("walk() unexpected error: %v", err)
			}

			var marker string
			switch shell {
			case ShellPowerShell:
				marker = "$command += "
			case ShellBash:
				marker = "command+="
			}
			if got := strings.Count(f.detection.String(), marker); got != 1 {
				t.Errorf("detection cases = %d, want 1\n%s", got, f.detection.String())
			}
			completion := f.completion.String()
			for _, id := range []string{"_app", "_app_sub"} {
				if !strings.Contains(completion, id) {
					t.Errorf("completion cases missing %q\n%s", id, completion)
				}
			}
			caseMarker := "$completions = @("
			if shell == ShellBash {
				caseMarker = "completions=("
			}
			if got := strings.Count(completion, caseMarker); got != 2 {
				t.Errorf("completion cases = %d, want 2\n%s", got, completion)
			}
		})
	}
}

func TestCandidatesOrder(t *testing.T) {
	t.Parallel()

	n := &testNode{
		name:     "app",
		children: []*testNode{{name: "zeta"}, {name: "alpha"}},
		shorts:   []rune{'v', 'a'},
		longs:    []string{"verbose", "all", "verbose"},
	}
	want := []string{"zeta", "alpha", "-v", "-a", "--verbose", "--all", "--verbose"}
	if diff := cmp.Diff(want, candidates(n, n.Subcommands())); diff != "" {
		t.Errorf("candidates() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePowerShellGit(t *testing.T) {
	t.Parallel()

	out, err := GenerateString(gitTree(), WithWindowsAliases(false))
	if err != nil {
		t.Fatalf("GenerateString() unexpected error: %v", err)
	}

	wantFragments := []string{
		"@('git', './git') | %{",
		"$command = '_git'",
		`
                    'commit' {
                        $command += '_commit'
                        break
                    }
`,
		`
            '_git' {
                $completions = @('commit')
            }
`,
		`
            '_git_commit' {
                $completions = @()
            }
`,
		`?{ $_ -like "$wordToComplete*" }`,
		"Sort-Object -Unique",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing %q\n%s", frag, out)
		}
	}
	if strings.Contains(out, ".exe") {
		t.Errorf("output registers Windows aliases without WithWindowsAliases(true)\n%s", out)
	}
	if i, j := strings.Index(out, "'_git' {"), strings.Index(out, "'_git_commit' {"); i < 0 || j < i {
		t.Errorf("parent case must precede child case\n%s", out)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	root := &testNode{
		name:   "app",
		shorts: []rune{'h'},
		longs:  []string{"help"},
		children: []*testNode{
			{name: "remote", children: []*testNode{{name: "add", longs: []string{"fetch"}}}},
			{name: "log", shorts: []rune{'n'}},
		},
	}
	for _, shell := range Shells() {
		first, err := GenerateString(root, WithShell(shell))
		if err != nil {
			t.Fatalf("GenerateString(%s) unexpected error: %v", shell, err)
		}
		second, err := GenerateString(root, WithShell(shell))
		if err != nil {
			t.Fatalf("GenerateString(%s) unexpected error: %v", shell, err)
		}
		if first != second {
			t.Errorf("GenerateString(%s) is not deterministic", shell)
		}
	}
}

func TestGenerateWindowsAliases(t *testing.T) {
	t.Parallel()

	out, err := GenerateString(gitTree(), WithWindowsAliases(true))
	if err != nil {
		t.Fatalf("GenerateString() unexpected error: %v", err)
	}
	want := `@('git', './git', 'git.exe', '.\git', '.\git.exe', './git.exe')`
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q\n%s", want, out)
	}
}

func TestGenerateBinName(t *testing.T) {
	t.Parallel()

	out, err := GenerateString(gitTree(), WithBinName("git2"), WithWindowsAliases(false))
	if err != nil {
		t.Fatalf("GenerateString() unexpected error: %v", err)
	}
	if !strings.Contains(out, "@('git2', './git2')") {
		t.Errorf("output not registered for git2\n%s", out)
	}
	if !strings.Contains(out, "$command = '_git'") {
		t.Errorf("command id must follow the root name, not the binary name\n%s", out)
	}
}

func TestGenerateQuoting(t *testing.T) {
	t.Parallel()

	root := &testNode{name: "app", children: []*testNode{{name: "it's"}}}
	out, err := GenerateString(root, WithWindowsAliases(false))
	if err != nil {
		t.Fatalf("GenerateString() unexpected error: %v", err)
	}
	for _, want := range []string{"$completions = @('it''s')", "'_app_it''s' {"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("disk full")
	tests := []struct {
		name    string
		root    Node
		opts    []Option
		wantErr error
	}{
		{name: "nil root", root: nil, wantErr: ErrNilRoot},
		{name: "empty bin name", root: &testNode{}, wantErr: ErrEmptyBinName},
		{name: "unsupported shell", root: gitTree(), opts: []Option{WithShell("fish")}, wantErr: ErrUnsupportedShell},
		{name: "write error", root: gitTree(), wantErr: writeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Generate(failingWriter{err: writeErr}, tt.root, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateWriteErrorVerbatim(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("broken pipe")
	err := Generate(failingWriter{err: writeErr}, gitTree())
	if err != writeErr { //nolint:errorlint // the write error must be returned unwrapped
		t.Errorf("Generate() error = %v, want the writer's error as is", err)
	}
}

func TestParseShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Shell
		wantErr bool
	}{
		{input: "powershell", want: ShellPowerShell},
		{input: "PowerShell", want: ShellPowerShell},
		{input: "pwsh", want: ShellPowerShell},
		{input: "bash", want: ShellBash},
		{input: "zsh", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseShell(tt.input)
			if tt.wantErr {
				var shellErr *UnsupportedShellError
				if !errors.As(err, &shellErr) {
					t.Fatalf("ParseShell(%q) error = %v, want *UnsupportedShellError", tt.input, err)
				}
				if !errors.Is(err, ErrUnsupportedShell) {
					t.Errorf("error does not wrap ErrUnsupportedShell: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShell(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseShell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
