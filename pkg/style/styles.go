package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a2e", Dark: "#e0e0ff"}
	KeyColor     = lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#5fd7ff"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#5f5f87", Dark: "#afafd7"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#6c6c6c"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#d70000", Dark: "#ff5f5f"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(KeyColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
