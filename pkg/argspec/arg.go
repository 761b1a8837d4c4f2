// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"fmt"
	"maps"
	"slices"
)

const (
	// KindFlag is a switched argument without values.
	KindFlag Kind = iota + 1
	// KindOpt is a switched argument that takes values.
	KindOpt
	// KindPositional is an argument identified by its position.
	KindPositional
)

const (
	// DefaultDispOrder is the display order of arguments without an explicit one;
	// such arguments sort last.
	DefaultDispOrder uint = 999

	// DefaultValDelim is the delimiter used to split one token into several values.
	DefaultValDelim = ','
)

type (
	// Kind identifies the concrete kind of an argument.
	Kind int

	// Validator checks a single candidate value at matching time. A nil return
	// accepts the value; the error message is shown to the user otherwise.
	//
	// Validators are stateless and are shared, not copied, between clones.
	Validator func(value string) error

	// Alias is an alternative long name. Hidden aliases (Visible == false) keep
	// old spellings working but never appear in help, usage or completion output.
	Alias struct {
		Name    string
		Visible bool
	}

	// ValNames maps value slot indices to display names, e.g. {0: "file", 1: "name"}
	// for an option used as "--copy <file> <name>".
	ValNames map[int]string

	// Arg is the kind-agnostic argument definition produced by the command
	// definition layer. It carries every declarable field; the *FromArg
	// constructors copy the relevant ones into the facets of a concrete kind.
	//
	// Start from NewArg so that ValDelim gets its default. A literal Arg has
	// ValDelim 0, which means values are never split.
	Arg struct {
		Name     string
		Help     string
		Settings Settings

		Blacklist      []string
		RequiredUnless []string
		Overrides      []string
		Requires       []string
		Groups         []string

		// Short is the single-character form; 0 means none.
		Short rune
		// Long is the long form without leading dashes; "" means none.
		Long      string
		Aliases []Alias
		// DispOrder is the display order; 0 means DefaultDispOrder.
		DispOrder uint

		PossibleVals []string
		ValNames     ValNames
		NumVals      *uint64
		MinVals      *uint64
		MaxVals      *uint64
		Validator    Validator
		// ValDelim is the value delimiter; 0 means values are never split.
		ValDelim   rune
		DefaultVal *string

		// Index is the 1-based positional index; 0 means not positional.
		Index uint64
	}

	// AnyArg is implemented by every concrete kind.
	AnyArg interface {
		BaseArg
		fmt.Stringer
		Kind() Kind
	}
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOpt:
		return "option"
	case KindPositional:
		return "positional"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NewArg returns an Arg with the given name and default display order and delimiter.
func NewArg(name string) Arg {
	return Arg{
		Name:      name,
		DispOrder: DefaultDispOrder,
		ValDelim:  DefaultValDelim,
	}
}

// Uint returns a pointer to n, for the optional cardinality fields of Arg.
func Uint(n uint64) *uint64 {
	return &n
}

// StringPtr returns a pointer to s, for Arg.DefaultVal.
func StringPtr(s string) *string {
	return &s
}

// NewValNames builds a ValNames from names in slot order.
func NewValNames(names ...string) ValNames {
	if len(names) == 0 {
		return nil
	}
	vn := make(ValNames, len(names))
	for i, n := range names {
		vn[i] = n
	}
	return vn
}

// Ordered returns the names sorted by slot index.
func (vn ValNames) Ordered() []string {
	if len(vn) == 0 {
		return nil
	}
	out := make([]string, 0, len(vn))
	for _, idx := range slices.Sorted(maps.Keys(vn)) {
		out = append(out, vn[idx])
	}
	return out
}

func (vn ValNames) clone() ValNames {
	if len(vn) == 0 {
		return nil
	}
	return maps.Clone(vn)
}

// hasValueFacet reports whether any Valued field was declared.
func (a *Arg) hasValueFacet() bool {
	return len(a.PossibleVals) > 0 ||
		len(a.ValNames) > 0 ||
		a.NumVals != nil ||
		a.MinVals != nil ||
		a.MaxVals != nil ||
		a.Validator != nil ||
		a.DefaultVal != nil
}

// Build converts a into the concrete kind it describes:
//
//   - a non-zero Index makes a Positional
//   - TakesValue, or any declared value field, makes an Opt (TakesValue is then set)
//   - anything else makes a Flag
//
// A non-positional argument without a short or long form is rejected with
// ErrMissingSwitch.
func Build(a Arg) (AnyArg, error) {
	if a.Index > 0 {
		return PositionalFromArg(a, a.Index)
	}
	if a.Short == 0 && a.Long == "" {
		kind := KindFlag
		if a.Settings.IsSet(TakesValue) || a.hasValueFacet() {
			kind = KindOpt
		}
		return nil, invalidArg(a.Name, kind, ErrMissingSwitch, "set short, long or index")
	}
	if a.Settings.IsSet(TakesValue) || a.hasValueFacet() {
		a.Settings.Set(TakesValue)
		return OptFromArg(a)
	}
	return FlagFromArg(a)
}

// cloneNames copies a name list, normalizing empty to nil.
func cloneNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	return slices.Clone(names)
}

func cloneUint(p *uint64) *uint64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
