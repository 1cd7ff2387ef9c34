// Package styles defines the visual appearance for the HookTerm TUI.
// Using Catppuccin Mocha color palette.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Catppuccin Mocha color palette
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Yellow   = lipgloss.Color("#F9E2AF")
	Green    = lipgloss.Color("#A6E3A1")
	Sapphire = lipgloss.Color("#74C7EC")
	Blue     = lipgloss.Color("#89B4FA")
	Lavender = lipgloss.Color("#B4BEFE")

	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors (using the palette)
var (
	Primary     = Mauve
	Accent      = Sapphire
	Danger      = Red
	Warning     = Peach
	Success     = Green
	Muted       = Overlay0
	SurfaceCol  = Surface0
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Base styles
var (
	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)
)

// Panel styles
var (
	// PanelTitle for panel headers
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	// PanelTitleFocused for focused panel headers
	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)
)

// List item styles
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			Padding(0, 1)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(SurfaceCol).
				Bold(true).
				Padding(0, 1)

	ListItemDim = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)
)

// Chat transcript styles
var (
	UserLabel = lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true)

	SystemText = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)

	MessageText = lipgloss.NewStyle().
			Foreground(TextCol)

	Timestamp = lipgloss.NewStyle().
			Foreground(Muted)

	Placeholder = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)
)

// Dialog styles
var (
	DialogBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			Background(SurfaceCol)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			MarginBottom(1)
)

// Logo and branding styles
var (
	LogoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Overlay0)
)

// RenderStatusDot returns a colored readiness indicator.
func RenderStatusDot(ok bool) string {
	if ok {
		return lipgloss.NewStyle().Foreground(Success).Render(IconDot)
	}
	return lipgloss.NewStyle().Foreground(Danger).Render(IconDotEmpty)
}

// TruncateWithEllipsis truncates s to maxWidth display cells with an ellipsis.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Spinner frames for the pending indicator
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Icons
var (
	IconChat      = "💬"
	IconWebhook   = "🔗"
	IconWarning   = "⚠️"
	IconDot       = "●"
	IconDotEmpty  = "○"
	IconUnread    = "✦"
	IconArrowR    = "→"
	IconStar      = "★"
	IconStarEmpty = "☆"
)

// RenderFancyHeader renders title centered on a decorated rule.
func RenderFancyHeader(title string, width int) string {
	left := lipgloss.NewStyle().Foreground(Mauve).Render("╭─")
	right := lipgloss.NewStyle().Foreground(Mauve).Render("─╮")
	titleStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(TextCol).
		Background(Surface0).
		Padding(0, 1).
		Render(title)

	fillWidth := width - lipgloss.Width(titleStyled) - lipgloss.Width(left) - lipgloss.Width(right)
	if fillWidth < 0 {
		fillWidth = 0
	}

	leftFill := fillWidth / 2
	rightFill := fillWidth - leftFill

	rule := lipgloss.NewStyle().Foreground(Surface1)
	return left + rule.Render(strings.Repeat("─", leftFill)) + titleStyled + rule.Render(strings.Repeat("─", rightFill)) + right
}
