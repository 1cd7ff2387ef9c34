package modepicker

import (
	"testing"

	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/webhook"
	"github.com/stretchr/testify/assert"
)

func TestOpenSelectsCurrent(t *testing.T) {
	m := New(modes.All())
	m.Open(modes.BusinessQA)
	assert.Equal(t, modes.BusinessQA, m.Selected())
}

func TestHandleKeyMovesCursor(t *testing.T) {
	m := New(modes.All())
	m.Open(modes.Project)

	assert.True(t, m.HandleKey("down"))
	assert.Equal(t, modes.BusinessQA, m.Selected())
	assert.True(t, m.HandleKey("j"))
	assert.True(t, m.HandleKey("j"))
	assert.Equal(t, modes.Summarizer, m.Selected(), "cursor stops at the last mode")

	assert.True(t, m.HandleKey("home"))
	assert.Equal(t, modes.Project, m.Selected())
	assert.True(t, m.HandleKey("3"))
	assert.Equal(t, modes.Summarizer, m.Selected())
	assert.True(t, m.HandleKey("9"))
	assert.Equal(t, modes.Summarizer, m.Selected())

	assert.False(t, m.HandleKey("x"))
}

func TestViewShowsEveryMode(t *testing.T) {
	m := New(modes.All())
	m.SetSize(80, 20)
	m.SetReadiness(webhook.Readiness{ProjectData: true})
	m.Open(modes.Project)

	out := m.View()
	assert.Contains(t, out, "Switch mode")
	for _, cfg := range modes.All() {
		assert.Contains(t, out, cfg.Label)
	}
	assert.True(t, m.items[0].Ready)
	assert.False(t, m.items[1].Ready)
}
