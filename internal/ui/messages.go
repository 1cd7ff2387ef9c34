// Package ui provides the terminal user interface for HookTerm.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/hookterm/internal/chatwindow"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/webhook"
)

// ---------- Webhook Messages ----------

// WebhookStatusMsg carries the result of a webhook configuration check.
type WebhookStatusMsg struct {
	Readiness webhook.Readiness
}

// ReplyMsg is sent when a webhook request for Mode completes. MessageID is
// the placeholder the reply replaces.
type ReplyMsg struct {
	Mode      modes.ID
	MessageID string
	Reply     webhook.Reply
	Err       error
}

// ---------- Chat Window Messages ----------

// WindowStateMsg is sent when the chat window flags change.
type WindowStateMsg struct {
	State chatwindow.State
}

// WindowClosedMsg is sent when the chat window provider goes away.
type WindowClosedMsg struct{}

// ---------- Command Functions ----------

// ValidateWebhooks returns a command that re-checks webhook configuration.
func ValidateWebhooks(v *webhook.Validator) tea.Cmd {
	return func() tea.Msg {
		return WebhookStatusMsg{Readiness: v.Validate()}
	}
}

// SendMessage returns a command that posts req to the integration's webhook.
func SendMessage(ctx context.Context, sender Sender, integration model.Integration, req webhook.Request, mode modes.ID, messageID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := sender.Send(ctx, integration, req)
		return ReplyMsg{Mode: mode, MessageID: messageID, Reply: reply, Err: err}
	}
}

// WaitForWindowState returns a command that waits for the next chat window
// state change.
func WaitForWindowState(ch <-chan chatwindow.State) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return WindowClosedMsg{}
		}
		return WindowStateMsg{State: state}
	}
}
