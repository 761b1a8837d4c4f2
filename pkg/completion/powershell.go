// SPDX-License-Identifier: MPL-2.0

package completion

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

const powerShellTemplate = `
@({{ psList .BinNames }}) | %{
    Register-ArgumentCompleter -Native -CommandName $_ -ScriptBlock {
        param($wordToComplete, $commandAst, $cursorPosition)

        $command = {{ psQuote .RootID }}
        $commandAst.CommandElements |
            Select-Object -Skip 1 |
            %{
                switch ($_.ToString()) {
{{ .Detection }}
                }
            }

        $completions = @()

        switch ($command) {
{{ .Completion }}
        }

        $completions |
            ?{ $_ -like "$wordToComplete*" } |
            Sort-Object -Unique |
            %{ New-Object System.Management.Automation.CompletionResult $_, $_, 'ParameterValue', $_ }
    }
}
`

var powerShellTmpl = template.Must(template.New("powershell").Funcs(template.FuncMap{
	"psQuote": psQuote,
	"psList":  psList,
}).Parse(powerShellTemplate))

type powerShellRenderer struct{}

func (powerShellRenderer) detectionCase(sb *strings.Builder, name string) error {
	fmt.Fprintf(sb, `
                    %s {
                        $command += %s
                        break
                    }
`, psQuote(name), psQuote("_"+name))
	return nil
}

func (powerShellRenderer) completionCase(sb *strings.Builder, id string, candidates []string) error {
	fmt.Fprintf(sb, `
            %s {
                $completions = @(%s)
            }
`, psQuote(id), psList(candidates))
	return nil
}

func (powerShellRenderer) script(w io.Writer, data scriptData) error {
	return powerShellTmpl.Execute(w, data)
}

// psQuote renders s as a PowerShell single-quoted literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = psQuote(s)
	}
	return strings.Join(quoted, ", ")
}
