// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/argkit/argkit/internal/config"
	"github.com/argkit/argkit/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `argkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage argkit configuration",
		Long: `Manage argkit configuration.

Configuration is stored in:
  - Linux: ~/.config/argkit/config.cue
  - macOS: ~/Library/Application Support/argkit/config.cue
  - Windows: %APPDATA%\argkit\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.cfgFile
			if path == "" {
				var err error
				if path, err = config.ConfigFilePath(""); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig("", force)
			if errors.Is(err, config.ErrConfigExists) {
				return issue.NewErrorContext().
					WithOperation("create configuration").
					WithResource(path).
					WithSuggestion("Use 'argkit config init --force' to overwrite it").
					Wrap(err).
					BuildError()
			}
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", successIcon, path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()

	cfg, path, err := app.Config.LoadWithPath(cmd.Context(), app.loadOptions())
	if err != nil {
		return err
	}
	slog.Debug("showing configuration", "path", path)

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)
	if path != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("completion"))
	fmt.Fprintf(out, "  default_shell: %s\n", valueStyle.Render(cfg.Completion.DefaultShell.String()))
	fmt.Fprintf(out, "  windows_aliases: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Completion.WindowsAliases)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}
