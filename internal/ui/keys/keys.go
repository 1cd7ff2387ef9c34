// Package keys defines keyboard shortcuts for the HookTerm TUI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	NextMode   key.Binding
	PrevMode   key.Binding
	SelectMode key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Actions
	Send    key.Binding
	Newline key.Binding
	Picker  key.Binding
	Clear   key.Binding
	Recheck key.Binding
	Close   key.Binding
	Quit    key.Binding

	// Chat window
	ToggleExpand   key.Binding
	ToggleMinimize key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev mode"),
		),
		SelectMode: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3"),
			key.WithHelp("Alt+1..3", "jump to mode"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Newline: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("Ctrl+J", "newline"),
		),
		Picker: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("Ctrl+P", "modes"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear chat"),
		),
		Recheck: key.NewBinding(
			key.WithKeys("alt+r"),
			key.WithHelp("Alt+R", "re-check webhooks"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
		ToggleExpand: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("Alt+X", "expand"),
		),
		ToggleMinimize: key.NewBinding(
			key.WithKeys("alt+z"),
			key.WithHelp("Alt+Z", "minimize"),
		),
	}
}

// ShortHelp returns short help text for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Send,
		k.NextMode,
		k.Picker,
		k.ToggleExpand,
		k.ToggleMinimize,
		k.Recheck,
		k.Quit,
	}
}

// FullHelp returns complete help text.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextMode, k.PrevMode, k.SelectMode, k.Picker},
		{k.Send, k.Newline, k.Clear, k.ScrollUp, k.ScrollDown},
		{k.ToggleExpand, k.ToggleMinimize, k.Recheck, k.Quit},
	}
}
