// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple, used for the command title.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for descriptions.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red, used for usage errors.
	ColorError = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle is for the program name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for the message printed before the usage block.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)
