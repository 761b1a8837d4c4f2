// SPDX-License-Identifier: MPL-2.0

package argspec

// Flag is a switched argument that signals presence only, e.g. --verbose.
type Flag struct {
	Base
	Switched
}

var (
	_ AnyArg      = (*Flag)(nil)
	_ SwitchedArg = (*Flag)(nil)
)

// NewFlag returns a Flag with the given name and no forms.
func NewFlag(name string) *Flag {
	return &Flag{Base: NewBase(name), Switched: NewSwitched()}
}

// FlagFromArg builds a Flag from a generic definition. A Required flag is
// rejected: flags carry no value, so the caller most likely meant an option.
func FlagFromArg(a Arg) (*Flag, error) {
	if a.Name == "" {
		return nil, invalidArg(a.Name, KindFlag, ErrEmptyName, "")
	}
	if a.Settings.IsSet(Required) {
		return nil, invalidArg(a.Name, KindFlag, ErrRequiredFlag, "perhaps you forgot TakesValue")
	}
	return &Flag{Base: baseFromArg(&a), Switched: switchedFromArg(&a)}, nil
}

// Kind returns KindFlag.
func (f *Flag) Kind() Kind { return KindFlag }

// String renders "--long", else "-short".
func (f *Flag) String() string {
	if form := f.switchForm(); form != "" {
		return form
	}
	return "--" + f.name
}

// Clone returns a deep copy of f.
func (f *Flag) Clone() *Flag {
	return &Flag{Base: f.Base.clone(), Switched: f.Switched.clone()}
}
