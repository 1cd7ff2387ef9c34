// Package modepicker provides the mode selection dialog.
package modepicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/ui/styles"
	"github.com/lazyvibe/hookterm/internal/webhook"
)

// Item represents a mode in the list.
type Item struct {
	Mode  modes.Config
	Ready bool
}

// Model is the mode picker component.
type Model struct {
	items   []Item
	cursor  int
	current modes.ID
	width   int
	height  int
	offset  int
}

// New creates a picker listing every mode.
func New(all []modes.Config) Model {
	items := make([]Item, len(all))
	for i, cfg := range all {
		items[i] = Item{Mode: cfg}
	}
	return Model{items: items}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Open places the cursor on the active mode.
func (m *Model) Open(current modes.ID) {
	m.current = current
	for i, item := range m.items {
		if item.Mode.ID == current {
			m.cursor = i
		}
	}
	m.ensureVisible()
}

// SetReadiness updates the webhook readiness shown next to each mode.
func (m *Model) SetReadiness(r webhook.Readiness) {
	for i := range m.items {
		m.items[i].Ready = r.Ready(m.items[i].Mode.Integration)
	}
}

// Selected returns the mode under the cursor.
func (m Model) Selected() modes.ID {
	if m.cursor >= 0 && m.cursor < len(m.items) {
		return m.items[m.cursor].Mode.ID
	}
	return m.current
}

// HandleKey processes a key event.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
		return true
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
			m.ensureVisible()
		}
		return true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(m.items) {
			m.cursor = idx
			m.ensureVisible()
		}
		return true
	}
	return false
}

// View renders the picker.
func (m Model) View() string {
	innerWidth := m.width - 8
	if innerWidth < 10 {
		innerWidth = 10
	}

	title := styles.DialogTitle.Render(styles.IconChat + " Switch mode")

	visibleRows := m.visibleRows()
	endIdx := m.offset + visibleRows
	if endIdx > len(m.items) {
		endIdx = len(m.items)
	}

	var rows []string
	for i := m.offset; i < endIdx; i++ {
		rows = append(rows, m.renderItem(i, innerWidth))
	}
	if len(m.items) > visibleRows {
		rows = append(rows, styles.ListItemDim.Render(fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.items))))
	}

	help := styles.ListItemDim.Render("↑/↓: move - 1-3: jump - Enter: select - Esc: close")

	return styles.DialogBox.
		Width(m.width).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			strings.Join(rows, "\n"),
			"",
			help,
		))
}

func (m Model) renderItem(i, maxWidth int) string {
	item := m.items[i]
	mark := styles.IconStarEmpty
	if item.Mode.ID == m.current {
		mark = styles.IconStar
	}
	content := fmt.Sprintf("%s %d %s %s - %s",
		mark, i+1, styles.RenderStatusDot(item.Ready), item.Mode.Label, item.Mode.Description)
	content = styles.TruncateWithEllipsis(content, maxWidth)

	if i == m.cursor {
		return styles.ListItemSelected.
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(item.Mode.Accent)).
			Render(content)
	}
	return styles.ListItem.Render(content)
}

func (m Model) visibleRows() int {
	rows := m.height - 8
	if rows < 1 || m.height == 0 {
		return len(m.items)
	}
	return rows
}

func (m *Model) ensureVisible() {
	visibleRows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if visibleRows > 0 && m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}
