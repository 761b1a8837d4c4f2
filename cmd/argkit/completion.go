// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/argkit/argkit/pkg/cmdtree"
	"github.com/argkit/argkit/pkg/completion"

	"github.com/spf13/cobra"
)

type completionFlags struct {
	file           string
	binName        string
	output         string
	windowsAliases bool
}

// newCompletionCommand creates the `argkit completion` command.
func newCompletionCommand(app *App) *cobra.Command {
	var flags completionFlags

	cmd := &cobra.Command{
		Use:   "completion [powershell|bash]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for a command tree.

With --file, the script completes the commands declared in the definition
file. Without it, the script completes argkit itself. When no shell is given,
completion.default_shell from the configuration is used.

` + SubtitleStyle.Render("PowerShell:") + `
  argkit completion powershell --file git.cue | Out-String | Invoke-Expression

  # Or add to $PROFILE:
  argkit completion powershell --file git.cue >> $PROFILE

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(argkit completion bash --file git.cue)"

  # Or install for the current user:
  argkit completion bash --file git.cue --output ~/.local/share/bash-completion/completions/git
`,
		ValidArgs: []string{"powershell", "pwsh", "bash"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompletion(cmd, app, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "definition file (.cue, .toml, .yaml); defaults to argkit's own commands")
	cmd.Flags().StringVar(&flags.binName, "bin", "", "binary name to register the completer for (default: the definition's bin_name)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the script to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.windowsAliases, "windows-aliases", false, "also register name.exe, .\\name and .\\name.exe")

	return cmd
}

func runCompletion(cmd *cobra.Command, app *App, flags completionFlags, args []string) error {
	shell := app.cfg.Completion.DefaultShell
	if len(args) == 1 {
		parsed, err := completion.ParseShell(args[0])
		if err != nil {
			return shellError(err)
		}
		shell = parsed
	}

	opts := []completion.Option{completion.WithShell(shell)}
	if flags.windowsAliases || app.cfg.Completion.WindowsAliases {
		opts = append(opts, completion.WithWindowsAliases(true))
	}

	var root completion.Node
	if flags.file != "" {
		tree, err := cmdtree.Load(cmd.Context(), flags.file)
		if err != nil {
			return definitionError(flags.file, err)
		}
		root = tree
		opts = append(opts, completion.WithBinName(tree.BinName()))
	} else {
		root = newCobraNode(cmd.Root())
	}
	if flags.binName != "" {
		opts = append(opts, completion.WithBinName(flags.binName))
	}

	slog.Debug("generating completion script", "shell", shell, "file", flags.file, "output", flags.output)

	if flags.output == "" {
		return completion.Generate(cmd.OutOrStdout(), root, opts...)
	}

	// Render first so that a definition error never truncates an existing file.
	var buf bytes.Buffer
	if err := completion.Generate(&buf, root, opts...); err != nil {
		return err
	}
	if err := writeOutput(flags.output, &buf); err != nil {
		return outputError(flags.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Wrote %s completion script to %s\n", successIcon, shell, flags.output)
	return nil
}

func writeOutput(path string, r io.Reader) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(f, r)
	return err
}
