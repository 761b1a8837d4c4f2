// SPDX-License-Identifier: MPL-2.0

package argspec

type (
	// BaseArg is the view shared by every argument kind.
	// Name-list accessors return nil when the list is empty.
	BaseArg interface {
		Name() string
		Help() string
		Blacklist() []string
		RequiredUnless() []string
		Overrides() []string
		Groups() []string
		Requires() []string
		IsSet(s Setting) bool
	}

	// Base holds the facet every argument has: identity, help and the relationship
	// lists the matching engine enforces.
	Base struct {
		name           string
		help           string
		settings       Settings
		blacklist      []string
		requiredUnless []string
		overrides      []string
		requires       []string
		groups         []string
	}
)

var _ BaseArg = (*Base)(nil)

// NewBase returns a Base with the given name and nothing else set.
func NewBase(name string) Base {
	return Base{name: name}
}

func baseFromArg(a *Arg) Base {
	return Base{
		name:           a.Name,
		help:           a.Help,
		settings:       a.Settings,
		blacklist:      cloneNames(a.Blacklist),
		requiredUnless: cloneNames(a.RequiredUnless),
		overrides:      cloneNames(a.Overrides),
		requires:       cloneNames(a.Requires),
		groups:         cloneNames(a.Groups),
	}
}

// Name returns the argument's identifier.
func (b *Base) Name() string { return b.name }

// Help returns the help text, possibly empty.
func (b *Base) Help() string { return b.help }

// Blacklist returns the names of arguments this one conflicts with.
func (b *Base) Blacklist() []string { return b.blacklist }

// RequiredUnless returns the names whose presence waives Required.
func (b *Base) RequiredUnless() []string { return b.requiredUnless }

// Overrides returns the names this argument overrides when both are present.
func (b *Base) Overrides() []string { return b.overrides }

// Requires returns the names that must accompany this argument.
func (b *Base) Requires() []string { return b.requires }

// Groups returns the names of the groups this argument belongs to.
func (b *Base) Groups() []string { return b.groups }

// IsSet reports whether s is in the argument's settings.
func (b *Base) IsSet(s Setting) bool { return b.settings.IsSet(s) }

// Settings returns the full setting set.
func (b *Base) Settings() Settings { return b.settings }

// Set adds s to the argument's settings.
func (b *Base) Set(s Setting) { b.settings.Set(s) }

// Unset removes s from the argument's settings.
func (b *Base) Unset(s Setting) { b.settings.Unset(s) }

// SetHelp replaces the help text.
func (b *Base) SetHelp(help string) { b.help = help }

func (b Base) clone() Base {
	b.blacklist = cloneNames(b.blacklist)
	b.requiredUnless = cloneNames(b.requiredUnless)
	b.overrides = cloneNames(b.overrides)
	b.requires = cloneNames(b.requires)
	b.groups = cloneNames(b.groups)
	return b
}
