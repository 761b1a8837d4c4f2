// SPDX-License-Identifier: MPL-2.0

package completion

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"mvdan.cc/sh/v3/syntax"
)

const bashTemplate = `{{ .FuncName }}() {
    local cur word i command
    local -a completions
    cur="${COMP_WORDS[COMP_CWORD]}"
    command={{ shQuote .RootID }}

    for ((i = 1; i < COMP_CWORD; i++)); do
        word="${COMP_WORDS[i]}"
        case "$word" in
{{ .Detection }}
        esac
    done

    case "$command" in
{{ .Completion }}
    esac

    mapfile -t COMPREPLY < <(compgen -W "${completions[*]}" -- "$cur" | sort -u)
}

complete -F {{ .FuncName }} {{ shList .BinNames }}
`

var bashTmpl = template.Must(template.New("bash").Funcs(template.FuncMap{
	"shQuote": shQuote,
	"shList":  shList,
}).Parse(bashTemplate))

type (
	bashRenderer struct{}

	bashScriptData struct {
		scriptData
		FuncName string
	}
)

func (bashRenderer) detectionCase(sb *strings.Builder, name string) error {
	pattern, err := shQuote(name)
	if err != nil {
		return err
	}
	suffix, err := shQuote("_" + name)
	if err != nil {
		return err
	}
	fmt.Fprintf(sb, "            %s)\n                command+=%s\n                ;;\n", pattern, suffix)
	return nil
}

func (bashRenderer) completionCase(sb *strings.Builder, id string, candidates []string) error {
	pattern, err := shQuote(id)
	if err != nil {
		return err
	}
	words, err := shList(candidates)
	if err != nil {
		return err
	}
	fmt.Fprintf(sb, "        %s)\n            completions=(%s)\n            ;;\n", pattern, words)
	return nil
}

func (bashRenderer) script(w io.Writer, data scriptData) error {
	return bashTmpl.Execute(w, bashScriptData{scriptData: data, FuncName: bashFuncName(data.BinName)})
}

// shQuote quotes s as a single bash word.
func shQuote(s string) (string, error) {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("quoting %q for bash: %w", s, err)
	}
	return q, nil
}

func shList(items []string) (string, error) {
	quoted := make([]string, len(items))
	for i, s := range items {
		q, err := shQuote(s)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

// bashFuncName derives a valid function name from the binary name.
func bashFuncName(binName string) string {
	var sb strings.Builder
	sb.WriteString("_")
	for _, r := range binName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	sb.WriteString("_completion")
	return sb.String()
}
