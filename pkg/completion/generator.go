// SPDX-License-Identifier: MPL-2.0

package completion

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

var (
	// ErrNilRoot is returned when Generate is given no root command.
	ErrNilRoot = errors.New("completion tree has no root command")
	// ErrEmptyBinName is returned when neither WithBinName nor the root command
	// provides a binary name.
	ErrEmptyBinName = errors.New("binary name is empty")
)

type (
	// renderer expresses the generated fragments in one shell's syntax.
	renderer interface {
		detectionCase(sb *strings.Builder, name string) error
		completionCase(sb *strings.Builder, id string, candidates []string) error
		script(w io.Writer, data scriptData) error
	}

	// scriptData is the input of a shell template.
	scriptData struct {
		BinName    string
		BinNames   []string
		RootID     string
		Detection  string
		Completion string
	}

	// fragments accumulates the two case lists during the tree walk.
	fragments struct {
		detection  strings.Builder
		completion strings.Builder
	}
)

// Generate writes a completion script for the tree rooted at root to w.
//
// The whole script is rendered in memory and written with a single call, so a
// failing writer surfaces as exactly one error, returned as is.
func Generate(w io.Writer, root Node, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if root == nil {
		return ErrNilRoot
	}
	if ok, errs := o.shell.IsValid(); !ok {
		return errs[0]
	}
	binName := o.binName
	if binName == "" {
		binName = root.Name()
	}
	if binName == "" {
		return ErrEmptyBinName
	}

	r := o.shell.renderer()
	var f fragments
	if err := f.walk(r, root, ""); err != nil {
		return err
	}

	var buf bytes.Buffer
	err := r.script(&buf, scriptData{
		BinName:    binName,
		BinNames:   invocationNames(binName, o.windowsAliases),
		RootID:     qualifiedID("", root.Name()),
		Detection:  f.detection.String(),
		Completion: f.completion.String(),
	})
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// GenerateString is like Generate but returns the script.
func GenerateString(root Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Generate(&sb, root, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// walk appends n's cases, then those of its descendants depth first.
// An empty parentID marks the root, which has no detection case.
func (f *fragments) walk(r renderer, n Node, parentID string) error {
	id := qualifiedID(parentID, n.Name())
	if parentID != "" {
		if err := r.detectionCase(&f.detection, n.Name()); err != nil {
			return err
		}
	}

	children := n.Subcommands()
	if err := r.completionCase(&f.completion, id, candidates(n, children)); err != nil {
		return err
	}
	for _, child := range children {
		if err := f.walk(r, child, id); err != nil {
			return err
		}
	}
	return nil
}

// candidates lists, in order, the child names, "-x" for every short form and
// "--name" for every long form. Nothing is sorted or deduplicated here.
func candidates(n Node, children []Node) []string {
	shorts := n.Shorts()
	longs := n.Longs()
	out := make([]string, 0, len(children)+len(shorts)+len(longs))
	for _, child := range children {
		out = append(out, child.Name())
	}
	for _, s := range shorts {
		out = append(out, "-"+string(s))
	}
	for _, l := range longs {
		out = append(out, "--"+l)
	}
	return out
}

func qualifiedID(parentID, name string) string {
	return parentID + "_" + name
}

// invocationNames returns the names the completer is registered under.
func invocationNames(binName string, windows bool) []string {
	names := []string{binName, "./" + binName}
	if windows {
		names = append(names,
			binName+".exe",
			`.\`+binName,
			`.\`+binName+".exe",
			"./"+binName+".exe",
		)
	}
	return names
}
