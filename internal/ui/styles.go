package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "75"  // Blue - for titles, links, badges
	ColorHighlight = "141" // Violet - for focus, selected cards, borders
	ColorSuccess   = "78"  // Green - completed degrees, confirmations
	ColorDanger    = "203" // Red - validation errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "236" // Backdrop fill
)

// Styles contains shared style definitions used across sections and overlays.
var Styles = struct {
	Brand   lipgloss.Style // Name in the navigation bar
	Title   lipgloss.Style // Section headings
	Eyebrow lipgloss.Style // Small uppercase line above the hero title
	Hero    lipgloss.Style // Hero name

	NavItem     lipgloss.Style
	NavSelected lipgloss.Style

	Card         lipgloss.Style // Project/skill card
	CardSelected lipgloss.Style // Focused project card
	CardTitle    lipgloss.Style

	Badge        lipgloss.Style // Technology badge
	BadgeMuted   lipgloss.Style // Highlight/skill badge
	BadgeSuccess lipgloss.Style

	Modal    lipgloss.Style // Detail panel
	Backdrop lipgloss.Style // Fill behind the panel

	Button      lipgloss.Style
	ButtonFocus lipgloss.Style

	Normal lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Link   lipgloss.Style
	Error  lipgloss.Style
	Toast  lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Eyebrow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hero: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	NavSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	BadgeMuted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	BadgeSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(modalPadY, modalPadX),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ButtonFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Toast: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true),
}
