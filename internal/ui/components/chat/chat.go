// Package chat provides the transcript and composer of the chat window.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/ui/keys"
	"github.com/lazyvibe/hookterm/internal/ui/styles"
)

const (
	singleLineHeight = 1
	multiLineHeight  = 5
)

// Model is the chat window body.
type Model struct {
	viewport viewport.Model
	composer textarea.Model
	keyMap   keys.KeyMap
	mode     modes.Config
	messages []model.Message
	pending  bool
	width    int
	height   int
}

// New creates a chat window for mode.
func New(mode modes.Config) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = styles.Placeholder
	ta.BlurredStyle.Placeholder = styles.Placeholder

	m := Model{
		viewport: viewport.New(0, 0),
		composer: ta,
		keyMap:   keys.DefaultKeyMap(),
	}
	m.SetMode(mode)
	m.composer.Focus()
	return m
}

// SetMode switches the prompt, placeholder and newline handling to mode.
func (m *Model) SetMode(mode modes.Config) {
	m.mode = mode
	m.composer.Prompt = mode.Prompt + " "
	m.composer.Placeholder = mode.Placeholder
	m.composer.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(mode.Accent)).Bold(true)
	m.composer.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(styles.Muted)

	// Enter always sends; multi-line modes insert newlines with Ctrl+J
	m.composer.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys(m.keyMap.Newline.Keys()...),
		key.WithHelp(m.keyMap.Newline.Help().Key, "newline"),
	)
	m.composer.KeyMap.InsertNewline.SetEnabled(mode.MultiLine)
	m.layout()
}

// Mode returns the mode the window is showing.
func (m Model) Mode() modes.Config {
	return m.mode
}

// SetSize updates the outer dimensions, borders included.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.layout()
}

// SetMessages replaces the transcript and scrolls to the newest message.
func (m *Model) SetMessages(msgs []model.Message) {
	m.messages = msgs
	m.refresh(true)
}

// SetPending toggles the waiting indicator in the header and the
// minimized bar.
func (m *Model) SetPending(pending bool) {
	m.pending = pending
}

// Value returns the composer text.
func (m Model) Value() string {
	return m.composer.Value()
}

// SetValue replaces the composer text.
func (m *Model) SetValue(s string) {
	m.composer.SetValue(s)
}

// Reset clears the composer.
func (m *Model) Reset() {
	m.composer.Reset()
}

// Focus focuses the composer.
func (m *Model) Focus() tea.Cmd {
	return m.composer.Focus()
}

// Blur removes focus from the composer.
func (m *Model) Blur() {
	m.composer.Blur()
}

// Update routes scroll keys to the transcript and everything else to the
// composer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.ScrollUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keyMap.ScrollDown):
			m.viewport.HalfViewDown()
			return m, nil
		}
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// View renders the bordered chat window.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	innerWidth := m.width - 2

	accent := lipgloss.Color(m.mode.Accent)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(styles.IconChat + " " + m.mode.Label)
	desc := styles.ListItemDim.Render(m.mode.Description)
	if m.pending {
		desc = styles.Placeholder.Render(styles.SpinnerFrames[0] + " waiting for reply…")
	}
	header := styles.TruncateWithEllipsis(title+" "+desc, innerWidth)

	rule := lipgloss.NewStyle().Foreground(styles.Border).Render(strings.Repeat("─", max(innerWidth, 0)))

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewport.View(),
		rule,
		m.composer.View(),
	)

	return styles.FocusedBorderStyle.
		BorderForeground(accent).
		Width(innerWidth).
		Height(m.height - 2).
		Render(body)
}

// MinimizedView renders the one-line bar shown while the chat is minimized.
func (m Model) MinimizedView(width int) string {
	parts := []string{
		styles.IconChat + " " + m.mode.Label,
		fmt.Sprintf("%d messages", len(m.messages)),
	}
	if m.pending {
		parts = append(parts, styles.SpinnerFrames[0]+" waiting for reply")
	}
	parts = append(parts, "Alt+Z to restore")

	content := styles.TruncateWithEllipsis(strings.Join(parts, " · "), max(width-2, 0))
	return lipgloss.NewStyle().
		Foreground(styles.Base).
		Background(lipgloss.Color(m.mode.Accent)).
		Bold(true).
		Padding(0, 1).
		Width(width).
		MaxHeight(1).
		Render(content)
}

func (m *Model) composerHeight() int {
	if m.mode.MultiLine {
		return multiLineHeight
	}
	return singleLineHeight
}

func (m *Model) layout() {
	innerWidth := m.width - 2
	innerHeight := m.height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return
	}

	composerHeight := m.composerHeight()
	// header, rule
	vpHeight := innerHeight - composerHeight - 2
	if vpHeight < 1 {
		composerHeight = max(innerHeight-3, 1)
		vpHeight = 1
	}

	m.composer.SetWidth(innerWidth)
	m.composer.SetHeight(composerHeight)
	m.viewport.Width = innerWidth
	m.viewport.Height = vpHeight
	m.refresh(true)
}

func (m *Model) refresh(follow bool) {
	width := m.viewport.Width
	if width <= 0 {
		return
	}
	m.viewport.SetContent(renderTranscript(m.messages, m.mode, width))
	if follow {
		m.viewport.GotoBottom()
	}
}

// renderTranscript formats msgs for a column of width cells.
func renderTranscript(msgs []model.Message, mode modes.Config, width int) string {
	accent := lipgloss.Color(mode.Accent)
	bodyWidth := max(width-2, 1)

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}

		var label string
		body := ansi.Wrap(msg.Content, bodyWidth, " -")
		switch msg.Role {
		case model.RoleUser:
			label = styles.UserLabel.Render(mode.Prompt + " You")
			body = styles.MessageText.Render(body)
		case model.RoleSystem:
			label = styles.SystemText.Render(styles.IconWarning + " System")
			body = styles.SystemText.Render(body)
		default:
			label = lipgloss.NewStyle().Foreground(accent).Bold(true).Render(mode.Label)
			body = styles.MessageText.Render(body)
		}
		stamp := ""
		if !msg.CreatedAt.IsZero() {
			stamp = " " + styles.Timestamp.Render(msg.CreatedAt.Format("15:04"))
		}

		b.WriteString(label + stamp + "\n")
		b.WriteString(indent(body, "  "))
	}

	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
