// Package store keeps chat transcripts for the lifetime of a session.
package store

import (
	"context"
	"errors"

	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
)

// ErrNotFound is returned when a message is not found.
var ErrNotFound = errors.New("not found")

// ConversationStore defines the interface for per-mode transcripts.
type ConversationStore interface {
	// Messages returns the transcript of mode, oldest first.
	Messages(ctx context.Context, mode modes.ID) ([]model.Message, error)
	// Append adds a message to the transcript of mode.
	Append(ctx context.Context, mode modes.ID, msg model.Message) error
	// Update replaces the message with the same ID.
	Update(ctx context.Context, mode modes.ID, msg model.Message) error
	// Clear empties the transcript of mode.
	Clear(ctx context.Context, mode modes.ID) error
	// Len returns how many messages mode holds.
	Len(ctx context.Context, mode modes.ID) (int, error)
}
