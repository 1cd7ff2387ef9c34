package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/notify"
	"github.com/lazyvibe/hookterm/internal/webhook"
)

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// While the picker is open it owns key input; other messages pass through.
	if a.showPicker {
		if msg, ok := msg.(tea.KeyMsg); ok {
			return a.handlePickerKeys(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeys(msg)

	case WebhookStatusMsg:
		a.applyReadiness(msg.Readiness)
		webhook.LogStatus(a.log, msg.Readiness, a.env)
		if msg.Readiness.All() {
			a.statusBar.SetMessage("All webhooks configured", false)
		} else {
			missing := len(modes.IDs()) - msg.Readiness.Count()
			a.statusBar.SetMessage(pluralize(missing, "webhook")+" not configured", true)
		}
		return a, nil

	case ReplyMsg:
		return a.handleReply(msg)

	case WindowStateMsg:
		a.layout()
		return a, WaitForWindowState(a.windowCh)

	case WindowClosedMsg:
		return a, nil
	}

	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		cmd := a.quit()
		return a, cmd

	case key.Matches(msg, a.keys.Picker):
		a.picker.Open(a.modes.Mode())
		a.showPicker = true
		return a, nil

	case key.Matches(msg, a.keys.NextMode):
		a.switchMode(a.modes.Next())
		return a, nil

	case key.Matches(msg, a.keys.PrevMode):
		a.switchMode(a.modes.Prev())
		return a, nil

	case key.Matches(msg, a.keys.SelectMode):
		if id, ok := modeForKey(msg.String()); ok {
			a.switchMode(id)
		}
		return a, nil

	case key.Matches(msg, a.keys.ToggleExpand):
		if err := a.window.ToggleExpanded(); err != nil {
			a.log.Warn().Err(err).Msg("toggle expanded")
		}
		a.layout()
		return a, nil

	case key.Matches(msg, a.keys.ToggleMinimize):
		cmd := a.toggleMinimized()
		return a, cmd

	case key.Matches(msg, a.keys.Recheck):
		a.statusBar.SetMessage("Re-checking webhooks…", false)
		return a, ValidateWebhooks(a.validator)

	case key.Matches(msg, a.keys.Close):
		state := a.windowState()
		if state.Minimized {
			cmd := a.toggleMinimized()
			return a, cmd
		}
		if state.Expanded {
			if err := a.window.SetExpanded(false); err != nil {
				a.log.Warn().Err(err).Msg("collapse chat window")
			}
			a.layout()
		}
		return a, nil
	}

	// Everything below needs a visible composer
	if a.windowState().Minimized {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Send):
		return a.submit()

	case key.Matches(msg, a.keys.Clear):
		current := a.modes.Mode()
		if err := a.store.Clear(a.ctx, current); err != nil {
			a.statusBar.SetMessage("Could not clear chat: "+err.Error(), true)
			return a, nil
		}
		a.ensureGreeting(current)
		a.refreshChat()
		a.statusBar.SetMessage("Chat cleared", false)
		return a, nil
	}

	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

func (a App) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		cmd := a.quit()
		return a, cmd
	case key.Matches(msg, a.keys.Close), key.Matches(msg, a.keys.Picker):
		a.showPicker = false
	case key.Matches(msg, a.keys.Send):
		a.showPicker = false
		a.switchMode(a.picker.Selected())
	default:
		a.picker.HandleKey(msg.String())
	}
	return a, nil
}

func (a *App) toggleMinimized() tea.Cmd {
	if err := a.window.ToggleMinimized(); err != nil {
		a.log.Warn().Err(err).Msg("toggle minimized")
		return nil
	}
	a.layout()
	if a.windowState().Minimized {
		a.chat.Blur()
		return nil
	}
	return a.chat.Focus()
}

// submit sends the composer text to the active mode's webhook.
func (a App) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(a.chat.Value())
	if text == "" {
		return a, nil
	}

	current := a.modes.Mode()
	cfg := a.modes.CurrentConfig()
	if a.pending[current] {
		a.statusBar.SetMessage("Still waiting for the "+cfg.Label+" reply", true)
		return a, nil
	}

	a.chat.Reset()
	a.drafts[current] = ""
	a.appendMessage(current, model.NewMessage(model.RoleUser, text))

	if !a.readiness.Ready(cfg.Integration) {
		a.appendMessage(current, model.NewMessage(model.RoleSystem, notConfiguredText(cfg)))
		a.statusBar.SetMessage(webhook.EnvVar(cfg.Integration)+" is not set", true)
		return a, nil
	}

	placeholder := model.NewMessage(model.RoleAssistant, placeholderText)
	a.appendMessage(current, placeholder)
	a.setPending(current, true)
	a.statusBar.ClearMessage()
	a.log.Debug().
		Str("mode", cfg.Key).
		Int("chars", len(text)).
		Msg("sending chat input")

	req := webhook.Request{
		SessionID: a.sessionID,
		ChatInput: text,
		Mode:      cfg.Key,
	}
	return a, SendMessage(a.ctx, a.client, cfg.Integration, req, current, placeholder.ID)
}

func (a App) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	if !msg.Mode.Valid() {
		return a, nil
	}
	a.setPending(msg.Mode, false)

	cfg := modes.Lookup(msg.Mode)
	background := msg.Mode != a.modes.Mode()
	event := newEvent(cfg, background)

	if msg.Err != nil {
		a.log.Warn().Err(msg.Err).Str("mode", cfg.Key).Int("status", msg.Reply.StatusCode).Msg("webhook request failed")
		a.replaceMessage(msg.Mode, msg.MessageID, model.RoleSystem, "Request failed: "+msg.Err.Error())
		event.Type = notify.EventError
		event.Message = msg.Err.Error()
	} else {
		text := msg.Reply.Text
		if text == "" {
			text = "(empty reply)"
		}
		a.log.Debug().Str("mode", cfg.Key).Dur("took", msg.Reply.Duration).Msg("reply received")
		a.replaceMessage(msg.Mode, msg.MessageID, model.RoleAssistant, text)
		event.Type = notify.EventReply
		event.Message = text
	}

	if background {
		a.tabs.MarkUnread(msg.Mode)
		a.statusBar.SetMessage("New reply in "+cfg.Label, false)
	}
	cmd := a.dispatchNotification(event)
	return a, cmd
}

// modeForKey maps "alt+N" to the Nth mode.
func modeForKey(k string) (modes.ID, bool) {
	if len(k) == 0 {
		return 0, false
	}
	idx := int(k[len(k)-1] - '1')
	ids := modes.IDs()
	if idx < 0 || idx >= len(ids) {
		return 0, false
	}
	return ids[idx], true
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
