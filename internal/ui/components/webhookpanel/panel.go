// Package webhookpanel renders the webhook configuration status panel.
package webhookpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/ui/styles"
	"github.com/lazyvibe/hookterm/internal/webhook"
)

// Model is the webhook status panel.
type Model struct {
	readiness webhook.Readiness
	checked   bool
	active    model.Integration
	width     int
	height    int
}

// New creates an empty panel. Nothing is reported until SetReadiness.
func New() Model {
	return Model{}
}

// SetSize updates the outer dimensions, borders included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetReadiness records the latest validation result.
func (m *Model) SetReadiness(r webhook.Readiness) {
	m.readiness = r
	m.checked = true
}

// SetActive highlights the integration used by the active mode.
func (m *Model) SetActive(integration model.Integration) {
	m.active = integration
}

// View renders the panel.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	innerWidth := m.width - 4

	header := styles.PanelTitleFocused.Render(styles.IconWebhook + " Webhooks")

	var rows []string
	if !m.checked {
		rows = append(rows, styles.Placeholder.Render("checking…"))
	} else {
		for _, cfg := range modes.All() {
			rows = append(rows, m.renderRow(cfg, innerWidth)...)
		}
		summary := fmt.Sprintf("%d/%d configured", m.readiness.Count(), len(model.Integrations))
		summaryStyle := lipgloss.NewStyle().Foreground(styles.Success)
		if !m.readiness.All() {
			summaryStyle = lipgloss.NewStyle().Foreground(styles.Warning)
		}
		rows = append(rows, "", summaryStyle.Render(summary))
	}

	help := styles.ListItemDim.Render("Alt+R: re-check")

	return styles.BorderStyle.
		Width(m.width-2).
		Height(m.height-2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", max(innerWidth, 0)),
			strings.Join(rows, "\n"),
			"",
			help,
		))
}

func (m Model) renderRow(cfg modes.Config, width int) []string {
	ready := m.readiness.Ready(cfg.Integration)

	nameStyle := styles.ListItem.Padding(0)
	if cfg.Integration == m.active {
		nameStyle = nameStyle.Foreground(lipgloss.Color(cfg.Accent)).Bold(true)
	}
	name := styles.RenderStatusDot(ready) + " " + nameStyle.Render(string(cfg.Integration))

	state := "ok"
	if !ready {
		state = "Not set"
	}
	detail := styles.ListItemDim.Padding(0).Render(
		styles.TruncateWithEllipsis(fmt.Sprintf("  %s: %s", webhook.EnvVar(cfg.Integration), state), width),
	)
	return []string{name, detail}
}
