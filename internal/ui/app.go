package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/lazyvibe/hookterm/internal/app"
	"github.com/lazyvibe/hookterm/internal/chatwindow"
	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/notify"
	"github.com/lazyvibe/hookterm/internal/store"
	"github.com/lazyvibe/hookterm/internal/ui/components/chat"
	"github.com/lazyvibe/hookterm/internal/ui/components/modepicker"
	"github.com/lazyvibe/hookterm/internal/ui/components/modetabs"
	"github.com/lazyvibe/hookterm/internal/ui/components/statusbar"
	"github.com/lazyvibe/hookterm/internal/ui/components/webhookpanel"
	"github.com/lazyvibe/hookterm/internal/ui/keys"
	"github.com/lazyvibe/hookterm/internal/webhook"
)

// placeholderText stands in for a reply until it arrives.
const placeholderText = "…"

const (
	minAppWidth  = 40
	minAppHeight = 10

	tabsHeight   = 3
	statusHeight = 1
	panelWidth   = 36
	minChatWidth = 44
)

// Sender posts chat input to a webhook.
type Sender interface {
	Send(ctx context.Context, integration model.Integration, req webhook.Request) (webhook.Reply, error)
}

// Options are the dependencies of the application model.
type Options struct {
	Config    *app.Config
	Store     store.ConversationStore
	Client    Sender
	Validator *webhook.Validator
	Env       webhook.Env
	Logger    *logging.Logger
	// Notify replaces the desktop notification backend when set.
	Notify notify.NotifyFunc
}

// App is the main application model.
type App struct {
	// Components
	tabs      modetabs.Model
	picker    modepicker.Model
	chat      chat.Model
	panel     webhookpanel.Model
	statusBar statusbar.Model

	// State
	width      int
	height     int
	ready      bool
	quitting   bool
	showPicker bool
	readiness  webhook.Readiness
	pending    map[modes.ID]bool
	drafts     map[modes.ID]string
	sessionID  string

	// Chat window scope
	provider *chatwindow.Provider
	window   *chatwindow.Coordinator
	windowCh <-chan chatwindow.State

	// Dependencies
	modes     *modes.Controller
	store     store.ConversationStore
	client    Sender
	validator *webhook.Validator
	env       webhook.Env
	notifier  *notify.Dispatcher
	log       *logging.Logger
	keys      keys.KeyMap
	ctx       context.Context
}

// New creates a new application instance. The chat window provider opens
// here and closes when the app quits.
func New(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = app.DefaultConfig("")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	validator := opts.Validator
	if validator == nil {
		validator = webhook.NewValidator(opts.Env.Lookup)
	}
	st := opts.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	var client Sender = opts.Client
	if client == nil {
		client = webhook.NewClient(opts.Env, cfg.Webhook.Timeout, log.Sub("webhook"))
	}

	provider := chatwindow.NewProvider()
	ctx := chatwindow.WithProvider(context.Background(), provider)
	window, err := chatwindow.FromContext(ctx)
	if err != nil {
		// unreachable with a freshly opened provider
		window = provider.Coordinator()
	}
	windowCh, _, err := window.Subscribe()
	if err != nil {
		log.Warn().Err(err).Msg("chat window subscription failed")
	}

	notifier := notify.NewDispatcher(cfg.Notifications.Desktop, window, log.Sub("notify"))
	if opts.Notify != nil {
		notifier.SetNotifyFunc(opts.Notify)
	}

	controller := modes.NewController(cfg.Mode())
	current := controller.CurrentConfig()

	a := App{
		tabs:      modetabs.New(controller.AllModes()),
		picker:    modepicker.New(controller.AllModes()),
		chat:      chat.New(current),
		panel:     webhookpanel.New(),
		statusBar: statusbar.New(),
		pending:   make(map[modes.ID]bool),
		drafts:    make(map[modes.ID]string),
		sessionID: uuid.NewString(),
		provider:  provider,
		window:    window,
		windowCh:  windowCh,
		modes:     controller,
		store:     st,
		client:    client,
		validator: validator,
		env:       opts.Env,
		notifier:  notifier,
		log:       log.Sub("ui"),
		keys:      keys.DefaultKeyMap(),
		ctx:       ctx,
	}

	readiness := validator.Validate()
	webhook.LogStatus(a.log, readiness, a.env)
	a.applyReadiness(readiness)
	a.switchMode(current.ID)

	a.log.Info().
		Str("session", a.sessionID).
		Str("mode", current.Key).
		Msg("chat session started")
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		WaitForWindowState(a.windowCh),
		textarea.Blink,
	)
}

// Close ends the chat window scope. It is safe to call more than once.
func (a App) Close() {
	a.provider.Close()
}

// SessionID returns the identifier sent with every webhook request.
func (a App) SessionID() string {
	return a.sessionID
}

// Mode returns the active mode.
func (a App) Mode() modes.ID {
	return a.modes.Mode()
}

// Window returns the chat window coordinator of this app.
func (a App) Window() *chatwindow.Coordinator {
	return a.window
}

// SetSize updates the window dimensions.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

func (a *App) layout() {
	a.statusBar.SetWidth(a.width)
	state := a.windowState()
	a.statusBar.SetWindowTag(windowTag(state))
	if a.windowTooSmall() {
		return
	}

	a.tabs.SetWidth(a.width)
	bodyHeight := a.bodyHeight()
	chatWidth := a.width
	if a.showPanel(state) {
		chatWidth -= panelWidth
		a.panel.SetSize(panelWidth, bodyHeight)
	}
	a.chat.SetSize(chatWidth, bodyHeight)
	a.picker.SetSize(min(a.width-4, 72), min(a.height-2, 16))
}

func (a App) bodyHeight() int {
	return a.height - tabsHeight - statusHeight
}

// showPanel reports whether the webhook panel fits next to the chat. An
// expanded chat takes the whole width.
func (a App) showPanel(state chatwindow.State) bool {
	return !state.Expanded && a.width-panelWidth >= minChatWidth
}

func (a App) windowState() chatwindow.State {
	state, err := a.window.State()
	if err != nil {
		return chatwindow.State{}
	}
	return state
}

func windowTag(state chatwindow.State) string {
	switch {
	case state.Minimized:
		return "MIN"
	case state.Expanded:
		return "MAX"
	default:
		return ""
	}
}

// switchMode activates id, restoring its draft and transcript.
func (a *App) switchMode(id modes.ID) {
	previous := a.modes.Mode()
	a.drafts[previous] = a.chat.Value()

	a.modes.SetMode(id)
	cfg := a.modes.CurrentConfig()

	a.tabs.SetActive(cfg.ID)
	a.panel.SetActive(cfg.Integration)
	a.statusBar.SetMode(cfg.Label, lipgloss.Color(cfg.Accent))
	a.chat.SetMode(cfg)
	a.chat.SetValue(a.drafts[cfg.ID])
	a.ensureGreeting(cfg.ID)
	a.refreshChat()
}

// ensureGreeting seeds an empty transcript with the mode greeting.
func (a *App) ensureGreeting(id modes.ID) {
	n, err := a.store.Len(a.ctx, id)
	if err != nil {
		a.log.Warn().Err(err).Str("mode", id.String()).Msg("reading transcript failed")
		return
	}
	if n > 0 {
		return
	}
	cfg := modes.Lookup(id)
	a.appendMessage(id, model.NewMessage(model.RoleAssistant, cfg.Greeting))
}

func (a *App) appendMessage(id modes.ID, msg model.Message) {
	if err := a.store.Append(a.ctx, id, msg); err != nil {
		a.log.Error().Err(err).Str("mode", id.String()).Msg("storing message failed")
		a.statusBar.SetMessage("Could not store message: "+err.Error(), true)
		return
	}
	if id == a.modes.Mode() {
		a.refreshChat()
	}
}

// replaceMessage fills the placeholder id with the final reply. If the
// placeholder is gone (the chat was cleared meanwhile) the reply is appended.
func (a *App) replaceMessage(mode modes.ID, id string, role model.Role, content string) {
	msg := model.NewMessage(role, content)
	if id == "" {
		a.appendMessage(mode, msg)
		return
	}
	msg.ID = id
	err := a.store.Update(a.ctx, mode, msg)
	switch {
	case errors.Is(err, store.ErrNotFound):
		a.appendMessage(mode, msg)
	case err != nil:
		a.log.Error().Err(err).Str("mode", mode.String()).Msg("updating message failed")
		a.statusBar.SetMessage("Could not store reply: "+err.Error(), true)
	case mode == a.modes.Mode():
		a.refreshChat()
	}
}

func (a *App) refreshChat() {
	current := a.modes.Mode()
	msgs, err := a.store.Messages(a.ctx, current)
	if err != nil {
		a.statusBar.SetMessage("Could not load messages: "+err.Error(), true)
		return
	}
	a.chat.SetMessages(msgs)
	a.chat.SetPending(a.pending[current])
}

func (a *App) applyReadiness(r webhook.Readiness) {
	a.readiness = r
	a.panel.SetReadiness(r)
	a.picker.SetReadiness(r)
	for _, cfg := range a.modes.AllModes() {
		a.tabs.SetReady(cfg.ID, r.Ready(cfg.Integration))
	}
}

func (a *App) setPending(id modes.ID, pending bool) {
	if pending {
		a.pending[id] = true
	} else {
		delete(a.pending, id)
	}
	a.tabs.SetPending(id, pending)
	a.statusBar.SetPending(len(a.pending))
	if id == a.modes.Mode() {
		a.chat.SetPending(pending)
	}
}

func (a *App) dispatchNotification(event notify.Event) tea.Cmd {
	if a.notifier == nil {
		return nil
	}
	return func() tea.Msg {
		a.notifier.Dispatch(event)
		return nil
	}
}

// quit closes the chat window scope and stops the program.
func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.provider.Close()
	a.log.Info().Str("session", a.sessionID).Msg("chat session ended")
	return tea.Quit
}

func notConfiguredText(cfg modes.Config) string {
	return fmt.Sprintf("The %s webhook is not configured. Set %s in the environment or env file, then restart HookTerm.",
		cfg.Integration, webhook.EnvVar(cfg.Integration))
}

func newEvent(cfg modes.Config, background bool) notify.Event {
	return notify.Event{
		ModeKey:    cfg.Key,
		ModeLabel:  cfg.Label,
		Background: background,
		Timestamp:  time.Now(),
	}
}
