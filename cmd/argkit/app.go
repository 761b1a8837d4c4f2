// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/argkit/argkit/internal/config"
)

type (
	// App wires CLI services and shared state. Every cobra handler receives
	// the same App.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer

		// Flag-backed state, filled in by cobra.
		verbose bool
		cfgFile string

		// cfg is the configuration loaded before each command runs.
		cfg *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

// loadOptions returns the options selected by the global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.cfgFile}
}

// initConfig loads the configuration and applies it to the App. A broken
// configuration is reported as a warning and the defaults are used, so that
// commands unrelated to configuration keep working.
func (a *App) initConfig(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		a.cfg = config.DefaultConfig()
		configureLogging(a.stderr, a.verbose)
		slog.Warn("using default configuration", "error", formatErrorForDisplay(err, a.verbose))
		return
	}
	a.cfg = cfg

	// --verbose wins; the config can only turn verbosity on.
	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	configureLogging(a.stderr, a.verbose)
	slog.Debug("configuration loaded", "default_shell", cfg.Completion.DefaultShell, "color_scheme", cfg.UI.ColorScheme)
}

// glamourStyle is the style used for issue catalog pages.
func (a *App) glamourStyle() string {
	return a.cfg.UI.ColorScheme.GlamourStyle()
}
