// Package modetabs provides the mode tab bar shown above the chat.
package modetabs

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/ui/styles"
)

// Tab represents a single mode tab.
type Tab struct {
	Mode    modes.ID
	Label   string
	Accent  lipgloss.Color
	Ready   bool // webhook configured
	Unread  bool // reply arrived while the mode was in the background
	Pending bool // request in flight
}

// Model is the mode tabs component.
type Model struct {
	tabs        []Tab
	activeIndex int
	offset      int
	width       int
	styles      TabStyles
}

// TabStyles defines the visual appearance of tabs.
type TabStyles struct {
	Container   lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	TabUnread   lipgloss.Style
	StatusDot   lipgloss.Style
	StatusReady lipgloss.Color
	StatusMiss  lipgloss.Color
	StatusBusy  lipgloss.Color
}

// DefaultTabStyles returns the tab styles.
func DefaultTabStyles() TabStyles {
	return TabStyles{
		Container: lipgloss.NewStyle().
			Background(styles.Base).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(styles.Muted).
			Background(styles.Surface0).
			Padding(0, 2).
			MarginRight(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface0),

		TabActive: lipgloss.NewStyle().
			Foreground(styles.TextCol).
			Background(styles.Base).
			Bold(true).
			Padding(0, 2).
			MarginRight(1).
			Border(lipgloss.RoundedBorder()),

		TabUnread: lipgloss.NewStyle().
			Foreground(styles.Accent).
			Background(styles.Surface0).
			Padding(0, 2).
			MarginRight(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Lavender),

		StatusDot: lipgloss.NewStyle().
			Bold(true),

		StatusReady: styles.Success,
		StatusMiss:  styles.Danger,
		StatusBusy:  styles.Yellow,
	}
}

// New creates a tab for every mode in display order.
func New(all []modes.Config) Model {
	tabs := make([]Tab, len(all))
	for i, cfg := range all {
		tabs[i] = Tab{
			Mode:   cfg.ID,
			Label:  cfg.Label,
			Accent: lipgloss.Color(cfg.Accent),
		}
	}
	return Model{
		tabs:   tabs,
		styles: DefaultTabStyles(),
	}
}

// SetWidth sets the component width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetActive makes the tab for id active and clears its unread marker.
func (m *Model) SetActive(id modes.ID) {
	if i := m.index(id); i >= 0 {
		m.activeIndex = i
		m.tabs[i].Unread = false
	}
}

// MarkUnread flags a background tab as having a new reply.
func (m *Model) MarkUnread(id modes.ID) {
	if i := m.index(id); i >= 0 && i != m.activeIndex {
		m.tabs[i].Unread = true
	}
}

// SetPending marks whether a request is in flight for id.
func (m *Model) SetPending(id modes.ID, pending bool) {
	if i := m.index(id); i >= 0 {
		m.tabs[i].Pending = pending
	}
}

// SetReady updates the readiness dot for id.
func (m *Model) SetReady(id modes.ID, ready bool) {
	if i := m.index(id); i >= 0 {
		m.tabs[i].Ready = ready
	}
}

// ActiveMode returns the mode of the active tab.
func (m Model) ActiveMode() modes.ID {
	return m.tabs[m.activeIndex].Mode
}

// Tab returns the tab for id.
func (m Model) Tab(id modes.ID) (Tab, bool) {
	if i := m.index(id); i >= 0 {
		return m.tabs[i], true
	}
	return Tab{}, false
}

// UnreadCount returns how many tabs carry an unread marker.
func (m Model) UnreadCount() int {
	n := 0
	for _, t := range m.tabs {
		if t.Unread {
			n++
		}
	}
	return n
}

func (m Model) index(id modes.ID) int {
	for i, t := range m.tabs {
		if t.Mode == id {
			return i
		}
	}
	return -1
}

// View renders the mode tabs.
func (m *Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(m.tabs))
	widths := make([]int, 0, len(m.tabs))

	for i, t := range m.tabs {
		var dotColor lipgloss.Color
		switch {
		case t.Pending:
			dotColor = m.styles.StatusBusy
		case t.Ready:
			dotColor = m.styles.StatusReady
		default:
			dotColor = m.styles.StatusMiss
		}
		dot := m.styles.StatusDot.Foreground(dotColor).Render(styles.IconDot)

		content := fmt.Sprintf("%d: %s %s", i+1, dot, t.Label)
		if t.Unread {
			content += " " + styles.IconUnread
		}

		var tabStyle lipgloss.Style
		if i == m.activeIndex {
			tabStyle = m.styles.TabActive.BorderForeground(t.Accent)
		} else if t.Unread {
			tabStyle = m.styles.TabUnread
		} else {
			tabStyle = m.styles.Tab
		}

		tab := tabStyle.Render(content)
		rendered = append(rendered, tab)
		widths = append(widths, lipgloss.Width(tab))
	}

	start, end := m.visibleRange(widths)
	if start < 0 || end <= start {
		return m.styles.Container.Width(m.width).Render("")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...)
	return m.styles.Container.Width(m.width).Render(row)
}

func (m *Model) visibleRange(widths []int) (int, int) {
	if len(widths) == 0 || m.width <= 0 {
		return 0, 0
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= m.width {
		m.offset = 0
		return 0, len(widths)
	}

	start := m.offset
	if start < 0 {
		start = 0
	}
	if start >= len(widths) {
		start = len(widths) - 1
	}

	end := m.fitFrom(start, widths)

	if m.activeIndex < start {
		start = m.activeIndex
		end = m.fitFrom(start, widths)
	} else if m.activeIndex >= end {
		start = m.shiftLeftToFit(m.activeIndex, widths)
		end = m.fitFrom(start, widths)
	}

	if end > len(widths) {
		end = len(widths)
	}
	m.offset = start
	return start, end
}

func (m *Model) fitFrom(start int, widths []int) int {
	used := 0
	end := start
	for end < len(widths) && used+widths[end] <= m.width {
		used += widths[end]
		end++
	}
	return end
}

func (m *Model) shiftLeftToFit(active int, widths []int) int {
	used := 0
	start := active
	for start >= 0 && used+widths[start] <= m.width {
		used += widths[start]
		start--
	}
	return start + 1
}
