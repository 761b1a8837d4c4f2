// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for success states.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and argument kinds.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for commands and argument forms.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names and code.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// argFormStyle renders an argument's usage form in the usage table.
	argFormStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Width(28)

	// argKindStyle renders an argument's kind in the usage table.
	argKindStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Width(12)

	successIcon = SuccessStyle.Render("✓")
)
