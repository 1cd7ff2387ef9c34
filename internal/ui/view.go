package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/hookterm/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		bye := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Primary).
			Render("👋 Goodbye from HookTerm!")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(bye)
	}

	if !a.ready {
		loading := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render("⚡ Loading HookTerm...")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(loading)
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small, need at least %dx%d (now %dx%d)", minAppWidth, minAppHeight, a.width, a.height)
		notice := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render(msg)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(notice)
	}

	state := a.windowState()
	bodyHeight := a.bodyHeight()
	chatWidth := a.width
	showPanel := a.showPanel(state)
	if showPanel {
		chatWidth -= panelWidth
	}

	// Minimized wins over expanded: the chat collapses to a single bar
	var chatArea string
	if state.Minimized {
		chatArea = lipgloss.JoinVertical(
			lipgloss.Left,
			a.renderIdleArea(chatWidth, bodyHeight-1),
			a.chat.MinimizedView(chatWidth),
		)
	} else {
		chatArea = a.chat.View()
	}

	body := chatArea
	if showPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, chatArea, a.panel.View())
	}

	fullView := lipgloss.JoinVertical(
		lipgloss.Left,
		a.tabs.View(),
		body,
		a.statusBar.View(),
	)

	if a.showPicker {
		return a.renderWithDialog(fullView)
	}
	return fullView
}

// renderIdleArea fills the space left by a minimized chat.
func (a App) renderIdleArea(width, height int) string {
	if height < 1 {
		return ""
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Render("HookTerm")

	subtitle := lipgloss.NewStyle().
		Foreground(styles.Accent).
		Italic(true).
		Render("Webhook-backed assistants in your terminal")

	hint := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render("Press Alt+Z or Esc to restore the chat")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.RenderFancyHeader(logo, min(width-4, 48)),
		"",
		subtitle,
		"",
		hint,
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderWithDialog overlays the mode picker on top of the main view.
func (a App) renderWithDialog(_ string) string {
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		a.picker.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#00000000")),
	)
}
