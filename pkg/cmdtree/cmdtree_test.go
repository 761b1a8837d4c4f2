// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/argkit/argkit/pkg/argspec"
	"github.com/argkit/argkit/pkg/completion"
)

// dump renders everything observable about a tree, one line per fact.
func dump(t *testing.T, root *Command) []string {
	t.Helper()

	lines := []string{"bin " + root.BinName()}
	err := Walk(root, func(path []string, c *Command) error {
		p := strings.Join(path, " ")
		lines = append(lines,
			fmt.Sprintf("%s about=%q", p, c.About()),
			fmt.Sprintf("%s shorts=%q", p, string(c.Shorts())),
			fmt.Sprintf("%s longs=%v", p, c.Longs()),
		)
		for _, a := range c.Args() {
			lines = append(lines, fmt.Sprintf("%s arg %s %s %q settings=%s", p, a.Kind(), a.Name(), a.String(), settingsOf(a)))
		}
		usage, err := Usage(root, path[1:]...)
		if err != nil {
			return err
		}
		lines = append(lines, p+" usage="+usage)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() unexpected error: %v", err)
	}
	return lines
}

func settingsOf(a argspec.AnyArg) argspec.Settings {
	switch v := a.(type) {
	case *argspec.Flag:
		return v.Settings()
	case *argspec.Opt:
		return v.Settings()
	case *argspec.Positional:
		return v.Settings()
	}
	return 0
}

func loadGit(t *testing.T, ext string) *Command {
	t.Helper()

	root, err := Load(context.Background(), filepath.Join("testdata", "git."+ext))
	if err != nil {
		t.Fatalf("Load(git.%s) unexpected error: %v", ext, err)
	}
	return root
}

func TestLoadFormatsBuildIdenticalTrees(t *testing.T) {
	t.Parallel()

	want := dump(t, loadGit(t, "cue"))
	for _, ext := range []string{"toml", "yaml"} {
		if diff := cmp.Diff(want, dump(t, loadGit(t, ext))); diff != "" {
			t.Errorf("git.%s tree differs from git.cue (-cue +%s):\n%s", ext, ext, diff)
		}
	}
}

func TestLoadGit(t *testing.T) {
	t.Parallel()

	root := loadGit(t, "cue")

	if root.BinName() != "git" || root.About() != "the stupid content tracker" {
		t.Errorf("root = %q/%q, want git/the stupid content tracker", root.BinName(), root.About())
	}
	if diff := cmp.Diff([]rune{'v', 'C'}, root.Shorts()); diff != "" {
		t.Errorf("root Shorts() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"version", "verbose"}, root.Longs()); diff != "" {
		t.Errorf("root Longs() mismatch (-want +got):\n%s", diff)
	}

	commit, err := Find(root, "commit")
	if err != nil {
		t.Fatalf("Find(commit) unexpected error: %v", err)
	}
	if diff := cmp.Diff([]rune{'v', 'm'}, commit.Shorts()); diff != "" {
		t.Errorf("commit Shorts() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"amend", "redo", "verbose", "message"}, commit.Longs()); diff != "" {
		t.Errorf("commit Longs() mismatch (-want +got):\n%s", diff)
	}

	pathspec, ok := commit.Arg("pathspec")
	if !ok {
		t.Fatal("commit has no pathspec argument")
	}
	pos, ok := pathspec.(*argspec.Positional)
	if !ok || pos.Index() != 1 {
		t.Errorf("pathspec = %T, want positional at index 1", pathspec)
	}

	dir, _ := root.Arg("dir")
	if got := dir.String(); got != "-C <path>" {
		t.Errorf("dir.String() = %q, want %q", got, "-C <path>")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	root := loadGit(t, "yaml")
	tests := []struct {
		path []string
		want string
	}{
		{path: nil, want: "git [--version] [--verbose] [-C <path>]"},
		{path: []string{"commit"}, want: "git commit [--amend] [--verbose] [--message <message>] [<pathspec>...]"},
		{path: []string{"remote", "add"}, want: "git remote add [--verbose] <name> <url>"},
	}
	for _, tt := range tests {
		got, err := Usage(root, tt.path...)
		if err != nil {
			t.Fatalf("Usage(%v) unexpected error: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Usage(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := Usage(root, "push"); !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("Usage(push) error = %v, want ErrCommandNotFound", err)
	}
}

func TestUsageDisplayOrderAndHidden(t *testing.T) {
	t.Parallel()

	def := &Definition{Command: CommandDef{
		Name: "app",
		Args: []ArgDef{
			{Name: "zeta", Long: "zeta"},
			{Name: "alpha", Long: "alpha", DisplayOrder: uintPtr(1)},
			{Name: "secret", Long: "secret", Hidden: true},
			{Name: "second", Index: 2},
			{Name: "first", Index: 1, Required: true},
		},
	}}
	root, err := Build(def)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	got, err := Usage(root)
	if err != nil {
		t.Fatalf("Usage() unexpected error: %v", err)
	}
	if want := "app [--alpha] [--zeta] <first> [<second>]"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha"}, root.Longs()); diff != "" {
		t.Errorf("Longs() must skip hidden arguments (-want +got):\n%s", diff)
	}
}

func uintPtr(n uint) *uint { return &n }

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []ArgDef
		wantErr error
	}{
		{
			name:    "required flag",
			args:    []ArgDef{{Name: "force", Long: "force", Required: true}},
			wantErr: argspec.ErrRequiredFlag,
		},
		{
			name:    "positional with short and long",
			args:    []ArgDef{{Name: "file", Index: 1, Short: "f", Long: "file"}},
			wantErr: argspec.ErrPositionalSwitch,
		},
		{
			name:    "unknown setting",
			args:    []ArgDef{{Name: "x", Long: "x", Settings: []string{"sticky"}}},
			wantErr: argspec.ErrInvalidSetting,
		},
		{
			name:    "bad validation pattern",
			args:    []ArgDef{{Name: "x", Long: "x", Validation: "("}},
			wantErr: ErrInvalidArgDef,
		},
		{
			name:    "multi character short",
			args:    []ArgDef{{Name: "x", Short: "xy"}},
			wantErr: ErrInvalidArgDef,
		},
		{
			name:    "duplicate argument",
			args:    []ArgDef{{Name: "x", Long: "x"}, {Name: "x", Short: "x"}},
			wantErr: ErrDuplicateArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := &Definition{Command: CommandDef{
				Name:        "app",
				Subcommands: []CommandDef{{Name: "run", Args: tt.args}},
			}}
			_, err := Build(def)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			var defErr *ArgDefError
			if errors.As(err, &defErr) && defErr.Command != "app run" {
				t.Errorf("ArgDefError.Command = %q, want %q", defErr.Command, "app run")
			}
		})
	}
}

func TestBuildArgFields(t *testing.T) {
	t.Parallel()

	hidden := false
	def := &Definition{Command: CommandDef{
		Name: "app",
		Args: []ArgDef{{
			Name:           "level",
			Long:           "level",
			Aliases:        []AliasDef{{Name: "lvl", Visible: &hidden}, {Name: "verbosity"}},
			PossibleValues: []string{"low", "high"},
			ValueDelimiter: strPtr(""),
			DefaultValue:   strPtr("low"),
			Validation:     "^[a-z]+$",
			ConflictsWith:  []string{"quiet"},
			Settings:       []string{"require_equals"},
		}},
	}}
	root, err := Build(def)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	a, _ := root.Arg("level")
	o, ok := a.(*argspec.Opt)
	if !ok {
		t.Fatalf("level = %T, want *argspec.Opt", a)
	}
	if diff := cmp.Diff([]string{"verbosity"}, o.Aliases()); diff != "" {
		t.Errorf("Aliases() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := o.ValDelim(); ok {
		t.Error("ValDelim() set although value_delimiter is empty")
	}
	if d, _ := o.DefaultVal(); d != "low" {
		t.Errorf("DefaultVal() = %q, want low", d)
	}
	if !o.IsSet(argspec.RequireEquals) || !o.IsSet(argspec.TakesValue) {
		t.Errorf("Settings() = %s, want require_equals and takes_value", o.Settings())
	}
	if err := o.Validator()("high"); err != nil {
		t.Errorf("Validator()(high) = %v, want nil", err)
	}
	if err := o.Validator()("HIGH"); err == nil {
		t.Error("Validator()(HIGH) accepted a value not matching the pattern")
	}
	if diff := cmp.Diff([]string{"quiet"}, o.Blacklist()); diff != "" {
		t.Errorf("Blacklist() mismatch (-want +got):\n%s", diff)
	}
}

func strPtr(s string) *string { return &s }

func TestGlobalPropagation(t *testing.T) {
	t.Parallel()

	def := &Definition{Command: CommandDef{
		Name: "app",
		Args: []ArgDef{{Name: "config", Long: "config", TakesValue: true, Global: true}},
		Subcommands: []CommandDef{{
			Name:        "db",
			Args:        []ArgDef{{Name: "config", Short: "c", TakesValue: true, Global: true}},
			Subcommands: []CommandDef{{Name: "migrate"}},
		}, {
			Name: "serve",
		}},
	}}
	root, err := Build(def)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	serve, _ := Find(root, "serve")
	if diff := cmp.Diff([]string{"config"}, serve.Longs()); diff != "" {
		t.Errorf("serve Longs() mismatch (-want +got):\n%s", diff)
	}
	migrate, _ := Find(root, "db", "migrate")
	if diff := cmp.Diff([]rune{'c'}, migrate.Shorts()); diff != "" {
		t.Errorf("migrate must inherit the closest declaration (-want +got):\n%s", diff)
	}
	if migrate.Longs() != nil {
		t.Errorf("migrate Longs() = %v, want nil", migrate.Longs())
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{name: "cue short too long", format: FormatCUE, data: `command: {name: "app", args: [{name: "x", short: "xy"}]}`},
		{name: "cue unknown field", format: FormatCUE, data: `command: {name: "app", colour: "red"}`},
		{name: "cue missing command", format: FormatCUE, data: `bin_name: "app"`},
		{name: "toml zero index", format: FormatTOML, data: "[command]\nname = \"app\"\n[[command.args]]\nname = \"x\"\nindex = 0\n"},
		{name: "yaml bad name", format: FormatYAML, data: "command:\n  name: \"-app\"\n"},
		{name: "yaml syntax", format: FormatYAML, data: "command: [\n"},
		{name: "toml syntax", format: FormatTOML, data: "[command\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if def, err := Parse([]byte(tt.data), tt.format, "defs."+tt.format.String()); err == nil {
				t.Errorf("Parse() = %+v, want error", def)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), "defs.json")
	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) || !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(defs.json) error = %v, want *UnsupportedFormatError", err)
	}

	if _, err := Load(context.Background(), filepath.Join("testdata", "missing.cue")); err == nil {
		t.Error("Load(missing.cue) expected error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, filepath.Join("testdata", "git.cue")); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() with canceled context error = %v, want context.Canceled", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("duplicate siblings", func(t *testing.T) {
		t.Parallel()

		root := NewCommand("app")
		root.AddSubcommand(NewCommand("run"))
		root.AddSubcommand(NewCommand("run"))
		var dupErr *DuplicateCommandError
		if err := Validate(root); !errors.As(err, &dupErr) {
			t.Fatalf("Validate() error = %v, want *DuplicateCommandError", err)
		}
		if dupErr.First != "app run" || dupErr.Second != "app run" {
			t.Errorf("DuplicateCommandError = %+v", dupErr)
		}
	})

	t.Run("duplicate at different depths", func(t *testing.T) {
		t.Parallel()

		root := NewCommand("app")
		root.AddSubcommand(NewCommand("list"))
		root.AddSubcommand(NewCommand("remote")).AddSubcommand(NewCommand("list"))
		var dupErr *DuplicateCommandError
		if err := Validate(root); !errors.As(err, &dupErr) {
			t.Fatalf("Validate() error = %v, want *DuplicateCommandError", err)
		}
		if dupErr.Name != "list" || dupErr.Second != "app remote list" {
			t.Errorf("DuplicateCommandError = %+v", dupErr)
		}
	})

	t.Run("child named like root is allowed", func(t *testing.T) {
		t.Parallel()

		root := NewCommand("app")
		root.AddSubcommand(NewCommand("app"))
		if err := Validate(root); err != nil {
			t.Errorf("Validate() unexpected error: %v", err)
		}
	})

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()

		root := NewCommand("app")
		child := root.AddSubcommand(NewCommand("loop"))
		child.AddSubcommand(root)
		var cycleErr *CycleError
		if err := Validate(root); !errors.As(err, &cycleErr) {
			t.Fatalf("Validate() error = %v, want *CycleError", err)
		}
		if diff := cmp.Diff([]string{"app", "loop", "app"}, cycleErr.Path); diff != "" {
			t.Errorf("CycleError.Path mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		root := NewCommand("app")
		root.AddSubcommand(NewCommand(""))
		if err := Validate(root); !errors.Is(err, ErrEmptyCommandName) {
			t.Errorf("Validate() error = %v, want ErrEmptyCommandName", err)
		}
	})

	t.Run("all problems reported", func(t *testing.T) {
		t.Parallel()

		root := NewCommand("app")
		root.AddSubcommand(NewCommand(""))
		root.AddSubcommand(NewCommand("x"))
		root.AddSubcommand(NewCommand("x"))
		err := Validate(root)
		if !errors.Is(err, ErrEmptyCommandName) || !errors.Is(err, ErrDuplicateCommand) {
			t.Errorf("Validate() error = %v, want both problems", err)
		}
	})
}

func TestWalkAndFind(t *testing.T) {
	t.Parallel()

	root := loadGit(t, "cue")

	var visited []string
	err := Walk(root, func(path []string, c *Command) error {
		visited = append(visited, strings.Join(path, "/"))
		if c.Name() == "remote" {
			return SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"git", "git/commit", "git/remote"}, visited); diff != "" {
		t.Errorf("Walk() order mismatch (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	if err := Walk(root, func([]string, *Command) error { return stop }); !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want the callback's error", err)
	}

	add, err := Find(root, "remote", "add")
	if err != nil || add.Name() != "add" {
		t.Fatalf("Find(remote add) = %v, %v", add, err)
	}
	if got, _ := Find(root); got != root {
		t.Error("Find() with no path must return the root")
	}
	var nf *CommandNotFoundError
	if _, err := Find(root, "remote", "rename"); !errors.As(err, &nf) {
		t.Fatalf("Find(remote rename) error = %v, want *CommandNotFoundError", err)
	}
	if diff := cmp.Diff([]string{"remote", "rename"}, nf.Path); diff != "" {
		t.Errorf("CommandNotFoundError.Path mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletionFromDefinition(t *testing.T) {
	t.Parallel()

	root := loadGit(t, "toml")
	out, err := completion.GenerateString(root, completion.WithBinName(root.BinName()), completion.WithWindowsAliases(false))
	if err != nil {
		t.Fatalf("GenerateString() unexpected error: %v", err)
	}
	for _, want := range []string{
		"$completions = @('commit', 'remote', '-v', '-C', '--version', '--verbose')",
		"$completions = @('-v', '-m', '--amend', '--redo', '--verbose', '--message')",
		"'_git_remote_add' {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("completion script missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "fixup") {
		t.Error("completion script lists a hidden alias")
	}
}

func TestAddArgKinds(t *testing.T) {
	t.Parallel()

	c := NewCommand("app")
	f := argspec.NewFlag("all")
	f.SetShort('a')
	if err := c.AddArg(f); err != nil {
		t.Fatalf("AddArg(flag) unexpected error: %v", err)
	}
	o := argspec.NewOpt("out")
	o.SetLong("out")
	if err := c.AddArg(o); err != nil {
		t.Fatalf("AddArg(opt) unexpected error: %v", err)
	}
	if err := c.AddArg(argspec.NewPositional("file", 1)); err != nil {
		t.Fatalf("AddArg(positional) unexpected error: %v", err)
	}
	if len(c.Flags()) != 1 || len(c.Opts()) != 1 || len(c.Positionals()) != 1 {
		t.Errorf("AddArg() sorted kinds into %d/%d/%d, want 1/1/1", len(c.Flags()), len(c.Opts()), len(c.Positionals()))
	}
	if err := c.AddArg(argspec.NewFlag("out")); !errors.Is(err, ErrDuplicateArg) {
		t.Errorf("AddArg(duplicate) error = %v, want ErrDuplicateArg", err)
	}
}
