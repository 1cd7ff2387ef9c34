// Package statusbar provides the status bar UI component.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/hookterm/internal/ui/keys"
	"github.com/lazyvibe/hookterm/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width     int
	message   string
	isError   bool
	keyMap    keys.KeyMap
	modeLabel string
	accent    lipgloss.Color
	pending   int
	windowTag string
}

// New creates a new status bar component.
func New() Model {
	return Model{
		keyMap: keys.DefaultKeyMap(),
		accent: styles.Accent,
	}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// Message returns the current message.
func (m Model) Message() (string, bool) {
	return m.message, m.isError
}

// SetMode updates the mode badge.
func (m *Model) SetMode(label string, accent lipgloss.Color) {
	m.modeLabel = strings.ToUpper(strings.TrimSpace(label))
	m.accent = accent
}

// SetPending sets the number of requests awaiting a reply.
func (m *Model) SetPending(n int) {
	m.pending = n
}

// SetWindowTag sets a short chat window state label such as "MAX".
func (m *Model) SetWindowTag(tag string) {
	m.windowTag = tag
}

// View renders the status bar.
func (m Model) View() string {
	brand := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Render(" HookTerm ")

	modeLabel := m.modeLabel
	if modeLabel == "" {
		modeLabel = "CHAT"
	}
	modeBadge := lipgloss.NewStyle().
		Foreground(styles.Base).
		Background(m.accent).
		Bold(true).
		Padding(0, 1).
		Render(modeLabel)

	leftContent := brand + modeBadge
	if m.windowTag != "" {
		leftContent += " " + lipgloss.NewStyle().
			Foreground(styles.Base).
			Background(styles.Lavender).
			Padding(0, 1).
			Render(m.windowTag)
	}
	if m.pending > 0 {
		leftContent += lipgloss.NewStyle().
			Foreground(styles.Warning).
			Render(fmt.Sprintf(" %s %d waiting ", styles.SpinnerFrames[0], m.pending))
	}

	helpItems := make([]string, 0, len(m.keyMap.ShortHelp()))
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		helpItems = append(helpItems, m.renderKey(h.Key, h.Desc))
	}
	rightContent := strings.Join(helpItems, " ")

	var middleContent string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		middleContent = msgStyle.Render(" " + m.message + " ")
	}

	leftWidth := lipgloss.Width(leftContent)
	middleWidth := lipgloss.Width(middleContent)

	// Drop the key hints before the message when space runs out
	if leftWidth+middleWidth+lipgloss.Width(rightContent) > m.width {
		rightContent = ""
	}
	if avail := m.width - leftWidth; middleWidth > avail {
		middleContent = styles.TruncateWithEllipsis(middleContent, avail)
		middleWidth = lipgloss.Width(middleContent)
	}
	rightWidth := lipgloss.Width(rightContent)

	padding := m.width - leftWidth - middleWidth - rightWidth
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	content := leftContent +
		strings.Repeat(" ", leftPad) +
		middleContent +
		strings.Repeat(" ", rightPad) +
		rightContent

	return lipgloss.NewStyle().
		Background(styles.Mantle).
		Foreground(styles.TextMuted).
		Width(m.width).
		MaxHeight(1).
		Render(content)
}

// renderKey renders a key binding hint.
func (m Model) renderKey(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.Overlay0)
	return keyStyle.Render(key) + descStyle.Render(":"+desc)
}
