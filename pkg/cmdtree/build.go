// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/argkit/argkit/pkg/argspec"
)

// Build converts a decoded definition into a validated command tree.
func Build(def *Definition) (*Command, error) {
	root, err := buildCommand(&def.Command, nil)
	if err != nil {
		return nil, err
	}
	root.SetBinName(def.BinName)
	propagateGlobals(root, nil)
	if err := Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

func buildCommand(cd *CommandDef, parent []string) (*Command, error) {
	path := slices.Concat(parent, []string{cd.Name})
	cmdPath := strings.Join(path, " ")

	cmd := NewCommand(cd.Name)
	cmd.SetAbout(cd.About)

	nextIndex := uint64(1)
	for i := range cd.Args {
		ad := &cd.Args[i]
		a, err := ad.toArg()
		if err != nil {
			return nil, &ArgDefError{Command: cmdPath, Arg: ad.Name, Err: err}
		}
		if a.Index == 0 && a.Short == 0 && a.Long == "" {
			a.Index = nextIndex
		}
		if a.Index >= nextIndex {
			nextIndex = a.Index + 1
		}
		built, err := argspec.Build(a)
		if err != nil {
			return nil, &ArgDefError{Command: cmdPath, Arg: ad.Name, Err: err}
		}
		if err := cmd.AddArg(built); err != nil {
			return nil, err
		}
	}

	for i := range cd.Subcommands {
		child, err := buildCommand(&cd.Subcommands[i], path)
		if err != nil {
			return nil, err
		}
		cmd.AddSubcommand(child)
	}
	return cmd, nil
}

// propagateGlobals copies arguments marked Global down to every descendant
// that does not declare an argument of the same name. The closest declaration
// wins.
func propagateGlobals(c *Command, inherited []argspec.AnyArg) {
	for _, a := range inherited {
		if _, exists := c.Arg(a.Name()); exists {
			continue
		}
		switch v := a.(type) {
		case *argspec.Flag:
			c.flags = append(c.flags, v.Clone())
		case *argspec.Opt:
			c.opts = append(c.opts, v.Clone())
		}
	}

	globals := slices.Clone(inherited)
	for _, a := range c.Args() {
		if !a.IsSet(argspec.Global) || a.Kind() == argspec.KindPositional {
			continue
		}
		i := slices.IndexFunc(globals, func(g argspec.AnyArg) bool { return g.Name() == a.Name() })
		if i >= 0 {
			globals[i] = a
		} else {
			globals = append(globals, a)
		}
	}
	for _, child := range c.children {
		propagateGlobals(child, globals)
	}
}

// toArg converts the file form into an argspec.Arg, resolving the parts that
// can fail before any kind is chosen.
func (ad *ArgDef) toArg() (argspec.Arg, error) {
	a := argspec.NewArg(ad.Name)
	a.Help = ad.Help
	a.Long = ad.Long
	a.Index = ad.Index

	if ad.Short != "" {
		r, size := utf8.DecodeRuneInString(ad.Short)
		if size != len(ad.Short) || r == '-' {
			return a, fmt.Errorf("short form %q must be a single character other than '-'", ad.Short)
		}
		a.Short = r
	}
	for _, al := range ad.Aliases {
		visible := al.Visible == nil || *al.Visible
		a.Aliases = append(a.Aliases, argspec.Alias{Name: al.Name, Visible: visible})
	}

	for _, named := range []struct {
		on      bool
		setting argspec.Setting
	}{
		{ad.TakesValue, argspec.TakesValue},
		{ad.Required, argspec.Required},
		{ad.Multiple, argspec.Multiple},
		{ad.Hidden, argspec.Hidden},
		{ad.Global, argspec.Global},
	} {
		if named.on {
			a.Settings.Set(named.setting)
		}
	}
	for _, name := range ad.Settings {
		s, err := argspec.ParseSetting(name)
		if err != nil {
			return a, err
		}
		a.Settings.Set(s)
	}

	a.PossibleVals = ad.PossibleValues
	a.ValNames = argspec.NewValNames(ad.ValueNames...)
	a.NumVals = ad.NumValues
	a.MinVals = ad.MinValues
	a.MaxVals = ad.MaxValues
	a.DefaultVal = ad.DefaultValue
	if ad.ValueDelimiter != nil {
		a.ValDelim, _ = utf8.DecodeRuneInString(*ad.ValueDelimiter)
		if *ad.ValueDelimiter == "" {
			a.ValDelim = 0
		}
	}
	if ad.Validation != "" {
		re, err := regexp.Compile(ad.Validation)
		if err != nil {
			return a, fmt.Errorf("validation pattern: %w", err)
		}
		a.Validator = regexValidator(re)
	}

	a.Blacklist = ad.ConflictsWith
	a.RequiredUnless = ad.RequiredUnless
	a.Overrides = ad.Overrides
	a.Requires = ad.Requires
	a.Groups = ad.Groups
	if ad.DisplayOrder != nil {
		a.DispOrder = *ad.DisplayOrder
	}
	return a, nil
}

func regexValidator(re *regexp.Regexp) argspec.Validator {
	return func(value string) error {
		if !re.MatchString(value) {
			return fmt.Errorf("value %q does not match %s", value, re)
		}
		return nil
	}
}
