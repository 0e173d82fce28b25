package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// BlitzTheme contains all configurable visual styles for the menus and
// help screens around the game.
type BlitzTheme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style

	// Legend styles for the how-to-play screen
	LegendShip    lipgloss.Style
	LegendSeeker  lipgloss.Style
	LegendWander  lipgloss.Style
	LegendSpinner lipgloss.Style
	LegendBoss    lipgloss.Style
	LegendText    lipgloss.Style

	// Scoreboard styles
	BoardHeader lipgloss.Style
	BoardRank   lipgloss.Style
	BoardValue  lipgloss.Style
	BoardMuted  lipgloss.Style
}

// DefaultBlitzTheme returns the default visual theme.
func DefaultBlitzTheme() BlitzTheme {
	return BlitzTheme{
		// Menus - cyan title over neutral items
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		// Legend - matches the in-game glyph colors
		LegendShip:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		LegendSeeker:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		LegendWander:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		LegendSpinner: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		LegendBoss:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		LegendText:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		// Scoreboard
		BoardHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		BoardRank:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		BoardValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		BoardMuted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NeonBlitzTheme returns a louder neon variant.
func NeonBlitzTheme() BlitzTheme {
	theme := DefaultBlitzTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.BoardHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.BoardRank = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	return theme
}

// MonochromeBlitzTheme returns a grayscale variant for spartan terminals.
func MonochromeBlitzTheme() BlitzTheme {
	theme := DefaultBlitzTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.LegendShip = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.LegendSeeker = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.LegendWander = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.LegendSpinner = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.LegendBoss = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.BoardHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.BoardRank = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// ThemeByName resolves a theme flag value to a theme.
// Unknown names fall back to the default.
func ThemeByName(name string) BlitzTheme {
	switch name {
	case "neon":
		return NeonBlitzTheme()
	case "mono", "monochrome":
		return MonochromeBlitzTheme()
	default:
		return DefaultBlitzTheme()
	}
}

// Global theme variable (can be changed at runtime)
var blitzTheme = DefaultBlitzTheme()

// SetBlitzTheme sets the global theme.
func SetBlitzTheme(theme BlitzTheme) {
	blitzTheme = theme
}

// GetBlitzTheme returns the current global theme.
func GetBlitzTheme() BlitzTheme {
	return blitzTheme
}
