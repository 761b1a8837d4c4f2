// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

const (
	DefinitionNotFoundId Id = iota + 1
	DefinitionParseErrorId
	UnsupportedFormatId
	InvalidArgumentId
	DuplicateCommandId
	CommandNotFoundId
	UnsupportedShellId
	ConfigLoadFailedId
	OutputWriteFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown body of a catalog entry.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a catalog entry: a Markdown page explaining one problem and how to fix it.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the entry for a terminal. stylePath is a glamour style name
// ("auto", "dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		var sb strings.Builder
		sb.WriteString(md)
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			sb.WriteString("\n- <" + string(link) + ">")
		}
		md = sb.String()
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	definitionNotFoundIssue = &Issue{
		id: DefinitionNotFoundId,
		mdMsg: `
# Definition file not found!

The command definition file you passed with ` + "`--file`" + ` does not exist or cannot be read.

## Things you can try:
- Check the path for typos; relative paths are resolved from the current directory
- Make sure the file is readable by your user
- Omit ` + "`--file`" + ` to generate completions for argkit itself:
~~~
$ argkit completion powershell
~~~`,
	}

	definitionParseErrorIssue = &Issue{
		id: DefinitionParseErrorId,
		mdMsg: `
# Failed to parse the definition file!

The file is not valid for its format, or it does not match the definition schema.

## Common issues:
- Unknown field names (the schema is closed)
- ` + "`short`" + ` longer than one character
- ` + "`index`" + ` set to 0 (positional indices start at 1)
- Names starting with a dash

## Minimal example:
~~~cue
bin_name: "git"
command: {
  name: "git"
  args: [{name: "verbose", short: "v", long: "verbose"}]
  subcommands: [{name: "commit"}]
}
~~~`,
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unsupported definition format!

Definition files are recognized by their extension.

## Supported extensions:
- ` + "`.cue`" + `
- ` + "`.toml`" + `
- ` + "`.yaml`" + ` / ` + "`.yml`",
	}

	invalidArgumentIssue = &Issue{
		id: InvalidArgumentId,
		mdMsg: `
# Invalid argument definition!

An argument breaks a rule that holds for every argument kind.

## Rules:
- A flag cannot be ` + "`required`" + `; if it should carry a value, add ` + "`takes_value: true`" + `
- A positional argument cannot have both ` + "`short`" + ` and ` + "`long`" + `
- An argument needs ` + "`short`" + `, ` + "`long`" + ` or ` + "`index`" + `, or none of them to become the next positional
- Setting names must be known, e.g. ` + "`require_equals`" + `, ` + "`hide_default_value`",
	}

	duplicateCommandIssue = &Issue{
		id: DuplicateCommandId,
		mdMsg: `
# Duplicate command name!

Completion scripts recognize subcommands by their bare name, so a name may be
used only once in the whole tree, not just among siblings.

## Things you can try:
- Rename one of the commands (e.g. ` + "`remote-list`" + ` instead of a second ` + "`list`" + `)
- Remove the command if it is redundant`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command path you passed does not exist in the definition file.

## Things you can try:
- List the tree with:
~~~
$ argkit validate --file <definitions>
~~~
- Pass the path as separate words: ` + "`argkit usage --file git.cue remote add`",
	}

	unsupportedShellIssue = &Issue{
		id: UnsupportedShellId,
		mdMsg: `
# Unsupported shell!

argkit generates completion scripts for these shells:
- ` + "`powershell`" + ` (also accepted as ` + "`pwsh`" + `)
- ` + "`bash`" + `

## Things you can try:
- Pick one of the shells above
- Set a default in your config file:
~~~cue
completion: default_shell: "bash"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

The configuration file exists but could not be read or does not match the schema.

## Things you can try:
- Print the location with ` + "`argkit config path`" + `
- Print the effective configuration with ` + "`argkit config show`" + `
- Recreate a default file with ` + "`argkit config init --force`",
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write the output!

The generated script could not be written.

## Things you can try:
- Check that the directory passed to ` + "`--output`" + ` exists and is writable
- Write to stdout and redirect instead:
~~~
$ argkit completion bash > ~/.local/share/bash-completion/completions/git
~~~`,
	}

	issues = map[Id]*Issue{
		definitionNotFoundIssue.Id():   definitionNotFoundIssue,
		definitionParseErrorIssue.Id(): definitionParseErrorIssue,
		unsupportedFormatIssue.Id():    unsupportedFormatIssue,
		invalidArgumentIssue.Id():      invalidArgumentIssue,
		duplicateCommandIssue.Id():     duplicateCommandIssue,
		commandNotFoundIssue.Id():      commandNotFoundIssue,
		unsupportedShellIssue.Id():     unsupportedShellIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		outputWriteFailedIssue.Id():    outputWriteFailedIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
	return vals
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
