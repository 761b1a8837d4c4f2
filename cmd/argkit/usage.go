// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/argkit/argkit/pkg/argspec"
	"github.com/argkit/argkit/pkg/cmdtree"

	"github.com/spf13/cobra"
)

// newUsageCommand creates the `argkit usage` command.
func newUsageCommand(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "usage --file <definitions> [command path...]",
		Short: "Show the usage line and arguments of a command",
		Long: `Show the usage line of a command declared in a definition file,
followed by each visible argument's rendered form, kind and help text.

` + SubtitleStyle.Render("Examples:") + `
  argkit usage --file git.cue
  argkit usage --file git.cue remote add`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := cmdtree.Load(cmd.Context(), file)
			if err != nil {
				return definitionError(file, err)
			}
			target, err := cmdtree.Find(tree, args...)
			if err != nil {
				return commandNotFoundError(file, err)
			}
			line, err := cmdtree.Usage(tree, args...)
			if err != nil {
				return commandNotFoundError(file, err)
			}
			renderUsage(cmd.OutOrStdout(), line, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file (.cue, .toml, .yaml)")
	_ = cmd.MarkFlagRequired("file") // flag is registered above

	return cmd
}

func renderUsage(w io.Writer, line string, c *cmdtree.Command) {
	fmt.Fprintf(w, "%s %s\n", TitleStyle.Render("Usage:"), CmdStyle.Render(line))
	if c.About() != "" {
		fmt.Fprintf(w, "\n%s\n", c.About())
	}

	var visible []argspec.AnyArg
	for _, a := range c.Args() {
		if !a.IsSet(argspec.Hidden) {
			visible = append(visible, a)
		}
	}
	if len(visible) > 0 {
		fmt.Fprintf(w, "\n%s\n", TitleStyle.Render("Arguments:"))
		for _, a := range visible {
			fmt.Fprintf(w, "  %s%s%s\n",
				argFormStyle.Render(a.String()),
				argKindStyle.Render(a.Kind().String()),
				argDetails(a))
		}
	}

	if children := c.Children(); len(children) > 0 {
		fmt.Fprintf(w, "\n%s\n", TitleStyle.Render("Commands:"))
		for _, child := range children {
			fmt.Fprintf(w, "  %s%s\n", argFormStyle.Render(child.Name()), SubtitleStyle.Render(child.About()))
		}
	}
}

// argDetails renders the help text followed by aliases, possible values and
// the default value, as declared.
func argDetails(a argspec.AnyArg) string {
	parts := []string{a.Help()}

	if s, ok := a.(argspec.SwitchedArg); ok {
		if aliases := s.Aliases(); len(aliases) > 0 {
			parts = append(parts, SubtitleStyle.Render("[aliases: "+strings.Join(aliases, ", ")+"]"))
		}
	}
	if v, ok := a.(argspec.ValuedArg); ok {
		if vals := v.PossibleVals(); len(vals) > 0 && !a.IsSet(argspec.HidePossibleValues) {
			parts = append(parts, SubtitleStyle.Render("[values: "+strings.Join(vals, ", ")+"]"))
		}
		if def, ok := v.DefaultVal(); ok && !a.IsSet(argspec.HideDefaultValue) {
			parts = append(parts, SubtitleStyle.Render("[default: "+def+"]"))
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
