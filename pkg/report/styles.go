package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor     = lipgloss.Color("#6c6c6c")
	SuccessColor = lipgloss.Color("#9ece6a")
	WarnColor    = lipgloss.Color("#e0af68")
	ErrorColor   = lipgloss.Color("#f7768e")
)

// Status line styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	SkipStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(WarnColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Status glyphs
const (
	SuccessGlyph = "✓"
	SkipGlyph    = "⊗"
	WarnGlyph    = "⚠"
	ErrorGlyph   = "✗"
)
