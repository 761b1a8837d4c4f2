// SPDX-License-Identifier: MPL-2.0

package cmdtree

type (
	// Definition is a decoded definition file.
	Definition struct {
		// BinName is the executable name; the root command name when empty.
		BinName string `json:"bin_name,omitempty"`
		// Command is the root command.
		Command CommandDef `json:"command"`
	}

	// CommandDef declares a command and, recursively, its subcommands.
	CommandDef struct {
		Name        string       `json:"name"`
		About       string       `json:"about,omitempty"`
		Args        []ArgDef     `json:"args,omitempty"`
		Subcommands []CommandDef `json:"subcommands,omitempty"`
	}

	// AliasDef declares an alternative long name. Aliases are visible unless
	// visible is explicitly false.
	AliasDef struct {
		Name    string `json:"name"`
		Visible *bool  `json:"visible,omitempty"`
	}

	// ArgDef is the file form of argspec.Arg.
	//
	// An argument with an index is positional. One without short, long or
	// index is positional too and takes the next free index. Otherwise it is
	// an option when it takes a value or declares any value field, and a flag
	// when it does not.
	ArgDef struct {
		Name string `json:"name"`
		Help string `json:"help,omitempty"`

		Short   string     `json:"short,omitempty"`
		Long    string     `json:"long,omitempty"`
		Aliases []AliasDef `json:"aliases,omitempty"`
		Index   uint64     `json:"index,omitempty"`

		TakesValue bool `json:"takes_value,omitempty"`
		Required   bool `json:"required,omitempty"`
		Multiple   bool `json:"multiple,omitempty"`
		Hidden     bool `json:"hidden,omitempty"`
		Global     bool `json:"global,omitempty"`
		// Settings names further settings in snake_case, e.g. "require_equals".
		Settings []string `json:"settings,omitempty"`

		PossibleValues []string `json:"possible_values,omitempty"`
		ValueNames     []string `json:"value_names,omitempty"`
		NumValues      *uint64  `json:"num_values,omitempty"`
		MinValues      *uint64  `json:"min_values,omitempty"`
		MaxValues      *uint64  `json:"max_values,omitempty"`
		// ValueDelimiter overrides the default ','; "" disables splitting.
		ValueDelimiter *string `json:"value_delimiter,omitempty"`
		DefaultValue   *string `json:"default_value,omitempty"`
		// Validation is a regular expression every value must match.
		Validation string `json:"validation,omitempty"`

		ConflictsWith  []string `json:"conflicts_with,omitempty"`
		RequiredUnless []string `json:"required_unless,omitempty"`
		Overrides      []string `json:"overrides,omitempty"`
		Requires       []string `json:"requires,omitempty"`
		Groups         []string `json:"groups,omitempty"`

		DisplayOrder *uint `json:"display_order,omitempty"`
	}
)
