// SPDX-License-Identifier: MPL-2.0

package argspec

import "slices"

type (
	// SwitchedArg is the view of arguments reachable through -x or --name.
	SwitchedArg interface {
		// Short returns the single-character form, if any.
		Short() (rune, bool)
		// Long returns the long form without dashes, if any.
		Long() (string, bool)
		// Aliases returns the visible alias names in declaration order, or nil.
		Aliases() []string
		DispOrder() uint
	}

	// Switched holds the short/long forms, aliases and ordering of a switched argument.
	Switched struct {
		short      rune
		long       string
		aliases    []Alias
		dispOrd    uint
		unifiedOrd uint
	}
)

// NewSwitched returns a Switched with no forms and the default ordering.
func NewSwitched() Switched {
	return Switched{dispOrd: DefaultDispOrder, unifiedOrd: DefaultDispOrder}
}

func switchedFromArg(a *Arg) Switched {
	return Switched{
		short:      a.Short,
		long:       a.Long,
		aliases:    slices.Clone(a.Aliases),
		dispOrd:    dispOrderOrDefault(a.DispOrder),
		unifiedOrd: DefaultDispOrder,
	}
}

// dispOrderOrDefault maps the unset order 0 to DefaultDispOrder.
func dispOrderOrDefault(ord uint) uint {
	if ord == 0 {
		return DefaultDispOrder
	}
	return ord
}

// Short returns the single-character form, if any.
func (s *Switched) Short() (rune, bool) { return s.short, s.short != 0 }

// Long returns the long form without dashes, if any.
func (s *Switched) Long() (string, bool) { return s.long, s.long != "" }

// Aliases returns the visible alias names in declaration order, or nil.
func (s *Switched) Aliases() []string {
	var names []string
	for _, a := range s.aliases {
		if a.Visible {
			names = append(names, a.Name)
		}
	}
	return names
}

// AllAliases returns every alias, visible or not.
func (s *Switched) AllAliases() []Alias {
	if len(s.aliases) == 0 {
		return nil
	}
	return slices.Clone(s.aliases)
}

// DispOrder returns the display order within the argument's own kind.
func (s *Switched) DispOrder() uint { return s.dispOrd }

// UnifiedOrd returns the display order used when all switched kinds share one listing.
func (s *Switched) UnifiedOrd() uint { return s.unifiedOrd }

// SetShort sets the single-character form; 0 clears it.
func (s *Switched) SetShort(r rune) { s.short = r }

// SetLong sets the long form; "" clears it.
func (s *Switched) SetLong(name string) { s.long = name }

// AddAlias appends an alias.
func (s *Switched) AddAlias(name string, visible bool) {
	s.aliases = append(s.aliases, Alias{Name: name, Visible: visible})
}

// switchForm renders "--long", else "-short", else "".
func (s *Switched) switchForm() string {
	if s.long != "" {
		return "--" + s.long
	}
	if s.short != 0 {
		return "-" + string(s.short)
	}
	return ""
}

func (s Switched) clone() Switched {
	s.aliases = slices.Clone(s.aliases)
	return s
}
