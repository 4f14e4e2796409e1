package ui

import "charm.land/lipgloss/v2"

// Color palette. Calm, exam-hall neutral.
var (
	primary = lipgloss.Color("#2DD4BF") // Teal
	text    = lipgloss.Color("#E2E8F0") // Light slate
	textDim = lipgloss.Color("#64748B") // Slate
	warn    = lipgloss.Color("#FBBF24") // Amber
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	progressStyle = lipgloss.NewStyle().
			Foreground(textDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warn)
)
