// SPDX-License-Identifier: MPL-2.0

package completion

import "runtime"

type (
	// Option configures Generate.
	Option func(*options)

	options struct {
		shell          Shell
		binName        string
		windowsAliases bool
	}
)

func defaultOptions() options {
	return options{
		shell:          ShellPowerShell,
		windowsAliases: runtime.GOOS == "windows",
	}
}

// WithShell selects the target shell. The default is PowerShell.
func WithShell(s Shell) Option {
	return func(o *options) { o.shell = s }
}

// WithBinName sets the binary name the completer is registered for.
// The default is the root command's name.
func WithBinName(name string) Option {
	return func(o *options) { o.binName = name }
}

// WithWindowsAliases controls whether the Windows invocation forms
// (name.exe, .\name, .\name.exe, ./name.exe) are registered as well.
// The default is true only when running on Windows.
func WithWindowsAliases(enabled bool) Option {
	return func(o *options) { o.windowsAliases = enabled }
}
