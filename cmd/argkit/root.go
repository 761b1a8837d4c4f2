// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the argkit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "argkit",
		Short: "Argument specs, usage lines and shell completions from command definitions",
		Long: TitleStyle.Render("argkit") + SubtitleStyle.Render(" - argument specs and shell completions") + `

argkit reads a declarative command tree (CUE, TOML or YAML), checks every
argument against the flag, option and positional rules, renders usage lines
and generates PowerShell or bash completion scripts.

` + SubtitleStyle.Render("Examples:") + `
  argkit validate --file git.cue            Check a definition file
  argkit usage --file git.cue remote add    Show the usage of 'git remote add'
  argkit completion bash --file git.cue     Generate a bash completion script
  argkit config show                        Show current configuration`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.initConfig(cmd.Context())
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/argkit/config.cue)")

	rootCmd.AddCommand(newCompletionCommand(app))
	rootCmd.AddCommand(newUsageCommand(app))
	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes argkit with the process arguments and returns the exit code.
func Run(ctx context.Context, app *App) int {
	rootCmd := NewRootCommand(app)

	// fang styles help and errors; the version is passed through fang because
	// it overrides rootCmd.Version.
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			renderError(w, err, app.verbose, app.glamourStyle())
		}),
	)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Execute runs argkit and exits the process on failure. It is called by main.main().
func Execute() {
	if code := Run(context.Background(), NewApp(Dependencies{})); code != 0 {
		os.Exit(code)
	}
}
