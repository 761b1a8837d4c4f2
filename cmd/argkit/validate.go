// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/argkit/argkit/pkg/cmdtree"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the `argkit validate` command.
func newValidateCommand(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate --file <definitions>",
		Short: "Check a definition file",
		Long: `Load a definition file, check it against the schema and build every
argument. On success the command tree is listed with each command's usage line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file (.cue, .toml, .yaml)")
	_ = cmd.MarkFlagRequired("file") // flag is registered above

	return cmd
}

func runValidate(cmd *cobra.Command, file string) error {
	stdout := cmd.OutOrStdout()

	tree, err := cmdtree.Load(cmd.Context(), file)
	if err != nil {
		return definitionError(file, err)
	}

	count := 0
	walkErr := cmdtree.Walk(tree, func(path []string, c *cmdtree.Command) error {
		count++
		line, err := cmdtree.Usage(tree, path[1:]...)
		if err != nil {
			return err
		}
		indent := strings.Repeat("  ", len(path)-1)
		fmt.Fprintf(stdout, "%s%s  %s\n", indent, CmdStyle.Render(c.Name()), SubtitleStyle.Render(line))
		return nil
	})
	if walkErr != nil {
		return definitionError(file, walkErr)
	}

	fmt.Fprintf(stdout, "\n%s %s is valid (%d commands)\n", successIcon, file, count)
	return nil
}
