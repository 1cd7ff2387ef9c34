package notify

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lazyvibe/hookterm/internal/chatwindow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	titles   []string
	messages []string
	err      error
}

func (r *recorder) notify(title, message string, _ any) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return r.err
}

func newTestDispatcher(enabled bool) (*Dispatcher, *chatwindow.Provider, *recorder) {
	p := chatwindow.NewProvider()
	rec := &recorder{}
	d := NewDispatcher(enabled, p.Coordinator(), nil)
	d.SetNotifyFunc(rec.notify)
	return d, p, rec
}

func TestDispatchVisibleReplyIsSilent(t *testing.T) {
	d, _, rec := newTestDispatcher(true)

	sent := d.Dispatch(Event{ModeKey: "project", ModeLabel: "Project", Type: EventReply, Message: "hi"})
	assert.False(t, sent)
	assert.Empty(t, rec.titles)
}

func TestDispatchBackgroundMode(t *testing.T) {
	d, _, rec := newTestDispatcher(true)

	sent := d.Dispatch(Event{
		ModeKey:    "summarizer",
		ModeLabel:  "Summarizer",
		Type:       EventReply,
		Message:    "  summary ready  ",
		Background: true,
	})
	require.True(t, sent)
	assert.Equal(t, []string{"HookTerm · Summarizer"}, rec.titles)
	assert.Equal(t, []string{"summary ready"}, rec.messages)
}

func TestDispatchWhileMinimized(t *testing.T) {
	d, p, rec := newTestDispatcher(true)
	require.NoError(t, p.Coordinator().SetMinimized(true))

	assert.True(t, d.Dispatch(Event{ModeKey: "project", Type: EventError, Message: "timeout"}))
	assert.Equal(t, []string{"HookTerm"}, rec.titles)
}

func TestDispatchAfterProviderClosed(t *testing.T) {
	d, p, rec := newTestDispatcher(true)
	p.Close()

	assert.True(t, d.Dispatch(Event{ModeKey: "project", Type: EventReply}))
	assert.Equal(t, []string{"reply"}, rec.messages)
}

func TestDispatchDisabled(t *testing.T) {
	d, _, rec := newTestDispatcher(false)

	assert.False(t, d.Dispatch(Event{ModeKey: "project", Background: true, Message: "x"}))
	assert.Empty(t, rec.titles)
}

func TestDispatchTruncatesLongMessages(t *testing.T) {
	d, _, rec := newTestDispatcher(true)

	d.Dispatch(Event{Background: true, Message: strings.Repeat("a", 2000)})
	require.Len(t, rec.messages, 1)
	assert.Len(t, rec.messages[0], 800)
	assert.True(t, strings.HasSuffix(rec.messages[0], "..."))
}

func TestDispatchTruncatesOnCharacterBoundary(t *testing.T) {
	d, _, rec := newTestDispatcher(true)
	d.Dispatch(Event{Background: true, Message: "a" + strings.Repeat("é", 1000)})
	require.Len(t, rec.messages, 1)

	msg := rec.messages[0]
	assert.True(t, utf8.ValidString(msg))
	assert.True(t, strings.HasSuffix(msg, "é..."))
	assert.Equal(t, 800, utf8.RuneCountInString(msg))
}

func TestDispatchBackendFailure(t *testing.T) {
	d, _, rec := newTestDispatcher(true)
	rec.err = errors.New("no dbus")

	assert.False(t, d.Dispatch(Event{Background: true, Message: "x"}))
	assert.Len(t, rec.titles, 1)
}
