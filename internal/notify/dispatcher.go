// Package notify raises desktop notifications for replies the user cannot see.
package notify

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gen2brain/beeep"
	"github.com/lazyvibe/hookterm/internal/chatwindow"
	"github.com/lazyvibe/hookterm/internal/logging"
)

// maxMessageWidth bounds the notification body, ellipsis included.
const maxMessageWidth = 800

// EventType represents a notification event type.
type EventType string

const (
	EventReply EventType = "reply"
	EventError EventType = "error"
)

// Event describes a notification event.
type Event struct {
	ModeKey   string
	ModeLabel string
	Type      EventType
	Message   string
	// Background is true when the event belongs to a mode that is not on
	// screen.
	Background bool
	Timestamp  time.Time
}

// NotifyFunc has the signature of beeep.Notify.
type NotifyFunc func(title, message string, icon any) error

// Dispatcher sends desktop notifications when the chat window hides the
// event from the user.
type Dispatcher struct {
	enabled bool
	window  *chatwindow.Coordinator
	notify  NotifyFunc
	log     *logging.Logger
}

// NewDispatcher creates a Dispatcher reading visibility from window.
func NewDispatcher(enabled bool, window *chatwindow.Coordinator, log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Dispatcher{
		enabled: enabled,
		window:  window,
		notify:  beeep.Notify,
		log:     log,
	}
}

// SetNotifyFunc replaces the desktop backend.
func (d *Dispatcher) SetNotifyFunc(fn NotifyFunc) {
	d.notify = fn
}

// Dispatch notifies about event if it would otherwise go unseen. It reports
// whether a notification was sent.
func (d *Dispatcher) Dispatch(event Event) bool {
	if !d.enabled {
		return false
	}
	if !d.shouldNotify(event) {
		return false
	}

	title := strings.TrimSpace(event.ModeLabel)
	if title == "" {
		title = "HookTerm"
	} else {
		title = "HookTerm · " + title
	}
	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	if ansi.StringWidth(message) > maxMessageWidth {
		message = ansi.Truncate(message, maxMessageWidth, "...")
	}

	if err := d.notify(title, message, ""); err != nil {
		d.log.Warn().Err(err).Str("mode", event.ModeKey).Msg("desktop notification failed")
		return false
	}
	d.log.Debug().Str("mode", event.ModeKey).Str("event", string(event.Type)).Msg("desktop notification sent")
	return true
}

func (d *Dispatcher) shouldNotify(event Event) bool {
	if event.Background {
		return true
	}
	minimized, err := d.window.Minimized()
	if err != nil {
		// the UI tree is gone; nobody is looking
		d.log.Debug().Err(err).Msg("chat window out of scope")
		return true
	}
	return minimized
}
