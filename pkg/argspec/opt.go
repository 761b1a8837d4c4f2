// SPDX-License-Identifier: MPL-2.0

package argspec

import "strings"

// Opt is a switched argument that takes one or more values, e.g. --output <file>.
type Opt struct {
	Base
	Switched
	Valued
}

var (
	_ AnyArg      = (*Opt)(nil)
	_ SwitchedArg = (*Opt)(nil)
	_ ValuedArg   = (*Opt)(nil)
)

// NewOpt returns an Opt with the given name and no forms or constraints.
func NewOpt(name string) *Opt {
	return &Opt{Base: NewBase(name), Switched: NewSwitched(), Valued: NewValued()}
}

// OptFromArg builds an Opt from a generic definition. When more than one value
// name is declared the exact value count is set to their number. The validator
// is shared with a, not copied.
func OptFromArg(a Arg) (*Opt, error) {
	if a.Name == "" {
		return nil, invalidArg(a.Name, KindOpt, ErrEmptyName, "")
	}
	o := &Opt{Base: baseFromArg(&a), Switched: switchedFromArg(&a), Valued: valuedFromArg(&a)}
	if n := len(o.valNames); n > 1 {
		o.SetNumVals(uint64(n))
	}
	return o, nil
}

// Kind returns KindOpt.
func (o *Opt) Kind() Kind { return KindOpt }

// String renders the switch form followed by the value placeholders:
//
//	--copy <src> <dst>
//	--file <file>...
//	-o <opt> <opt>
func (o *Opt) String() string {
	var sb strings.Builder
	if form := o.switchForm(); form != "" {
		sb.WriteString(form)
	} else {
		sb.WriteString("--" + o.name)
	}
	if placeholder := o.placeholder(); placeholder != "" {
		sb.WriteString(" " + placeholder)
	}
	return sb.String()
}

// placeholder renders the value part of String; it is empty when NumVals is 0.
func (o *Opt) placeholder() string {
	var sb strings.Builder
	multiple := o.IsSet(Multiple)
	switch {
	case len(o.valNames) > 0:
		names := o.valNames.Ordered()
		writeBracketed(&sb, names)
		if multiple && len(names) == 1 {
			sb.WriteString("...")
		}
	case o.numVals != nil:
		for i := range *o.numVals {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("<" + o.name + ">")
		}
	default:
		sb.WriteString("<" + o.name + ">")
		if multiple {
			sb.WriteString("...")
		}
	}
	return sb.String()
}

// Clone returns a deep copy of o. The validator is shared.
func (o *Opt) Clone() *Opt {
	return &Opt{Base: o.Base.clone(), Switched: o.Switched.clone(), Valued: o.Valued.clone()}
}

func writeBracketed(sb *strings.Builder, names []string) {
	for i, n := range names {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("<" + n + ">")
	}
}
