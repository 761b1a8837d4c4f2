// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// configureLogging installs a charmbracelet/log handler as the slog default.
// Warnings and errors are always shown; debug output needs --verbose.
func configureLogging(w io.Writer, verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "argkit",
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(logger))
}
