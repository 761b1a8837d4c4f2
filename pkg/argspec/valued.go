// SPDX-License-Identifier: MPL-2.0

package argspec

type (
	// ValuedArg is the view of arguments that consume values.
	ValuedArg interface {
		PossibleVals() []string
		ValNames() ValNames
		NumVals() (uint64, bool)
		MinVals() (uint64, bool)
		MaxVals() (uint64, bool)
		Validator() Validator
		ValDelim() (rune, bool)
		DefaultVal() (string, bool)
	}

	// Valued holds the value constraints of an option or positional argument.
	Valued struct {
		possibleVals []string
		valNames     ValNames
		numVals      *uint64
		minVals      *uint64
		maxVals      *uint64
		validator    Validator
		valDelim     rune
		defaultVal   *string
	}
)

// NewValued returns a Valued with no constraints and the default delimiter.
func NewValued() Valued {
	return Valued{valDelim: DefaultValDelim}
}

func valuedFromArg(a *Arg) Valued {
	v := Valued{
		possibleVals: cloneNames(a.PossibleVals),
		valNames:     a.ValNames.clone(),
		numVals:      cloneUint(a.NumVals),
		minVals:      cloneUint(a.MinVals),
		maxVals:      cloneUint(a.MaxVals),
		validator:    a.Validator,
		valDelim:     a.ValDelim,
	}
	if a.DefaultVal != nil {
		d := *a.DefaultVal
		v.defaultVal = &d
	}
	return v
}

// PossibleVals returns the accepted values, or nil when any value is accepted.
func (v *Valued) PossibleVals() []string { return v.possibleVals }

// ValNames returns the per-slot display names, or nil.
func (v *Valued) ValNames() ValNames { return v.valNames }

// NumVals returns the exact number of values, if constrained.
func (v *Valued) NumVals() (uint64, bool) { return deref(v.numVals) }

// MinVals returns the minimum number of values, if constrained.
func (v *Valued) MinVals() (uint64, bool) { return deref(v.minVals) }

// MaxVals returns the maximum number of values, if constrained.
func (v *Valued) MaxVals() (uint64, bool) { return deref(v.maxVals) }

// Validator returns the value validator, or nil.
func (v *Valued) Validator() Validator { return v.validator }

// ValDelim returns the value delimiter, if values are split.
func (v *Valued) ValDelim() (rune, bool) { return v.valDelim, v.valDelim != 0 }

// DefaultVal returns the default value, if declared.
func (v *Valued) DefaultVal() (string, bool) {
	if v.defaultVal == nil {
		return "", false
	}
	return *v.defaultVal, true
}

// SetValNames replaces the value display names.
func (v *Valued) SetValNames(names ...string) { v.valNames = NewValNames(names...) }

// SetNumVals constrains the exact number of values.
func (v *Valued) SetNumVals(n uint64) { v.numVals = &n }

// SetDefaultVal sets the default value.
func (v *Valued) SetDefaultVal(s string) { v.defaultVal = &s }

// SetValidator installs fn as the value validator.
func (v *Valued) SetValidator(fn Validator) { v.validator = fn }

// cardinalityMultiple reports whether the declared counts imply several values.
func (v *Valued) cardinalityMultiple() bool {
	if v.maxVals != nil || v.minVals != nil {
		return true
	}
	return v.numVals != nil && *v.numVals > 1
}

func (v Valued) clone() Valued {
	v.possibleVals = cloneNames(v.possibleVals)
	v.valNames = v.valNames.clone()
	v.numVals = cloneUint(v.numVals)
	v.minVals = cloneUint(v.minVals)
	v.maxVals = cloneUint(v.maxVals)
	if v.defaultVal != nil {
		d := *v.defaultVal
		v.defaultVal = &d
	}
	return v
}

func deref(p *uint64) (uint64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
