// SPDX-License-Identifier: MPL-2.0

package argspec

import "strings"

// Positional is an argument identified by its 1-based position among the
// non-switch tokens of a command line.
type Positional struct {
	Base
	Valued
	index uint64
}

var (
	_ AnyArg    = (*Positional)(nil)
	_ ValuedArg = (*Positional)(nil)
)

// NewPositional returns a Positional with the given name and index.
func NewPositional(name string, index uint64) *Positional {
	return &Positional{Base: NewBase(name), Valued: NewValued(), index: index}
}

// PositionalFromArg builds a Positional at index from a generic definition.
// Declaring both a short and a long form is an error. Multiple is set when the
// cardinality fields imply more than one value.
func PositionalFromArg(a Arg, index uint64) (*Positional, error) {
	if a.Name == "" {
		return nil, invalidArg(a.Name, KindPositional, ErrEmptyName, "")
	}
	if a.Short != 0 && a.Long != "" {
		return nil, invalidArg(a.Name, KindPositional, ErrPositionalSwitch, "remove short and long, or drop the index")
	}
	if index == 0 {
		return nil, invalidArg(a.Name, KindPositional, ErrZeroIndex, "")
	}
	p := &Positional{Base: baseFromArg(&a), Valued: valuedFromArg(&a), index: index}
	if p.cardinalityMultiple() {
		p.Set(Multiple)
	}
	return p, nil
}

// Kind returns KindPositional.
func (p *Positional) Kind() Kind { return KindPositional }

// Index returns the 1-based position.
func (p *Positional) Index() uint64 { return p.index }

// MultipleSuffix returns "..." when the argument is Multiple and has no value names.
func (p *Positional) MultipleSuffix() string {
	if p.IsSet(Multiple) && len(p.valNames) == 0 {
		return "..."
	}
	return ""
}

// NameNoBrackets returns the bracketed value names joined by spaces, or the
// bare name when none are declared.
func (p *Positional) NameNoBrackets() string {
	if len(p.valNames) == 0 {
		return p.name
	}
	var sb strings.Builder
	writeBracketed(&sb, p.valNames.Ordered())
	return sb.String()
}

// String renders "<a> <b>" for declared value names, else "<name>" followed
// by "..." when Multiple.
func (p *Positional) String() string {
	if len(p.valNames) > 0 {
		return p.NameNoBrackets()
	}
	return "<" + p.name + ">" + p.MultipleSuffix()
}

// Clone returns a deep copy of p. The validator is shared.
func (p *Positional) Clone() *Positional {
	return &Positional{Base: p.Base.clone(), Valued: p.Valued.clone(), index: p.index}
}
