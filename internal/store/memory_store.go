package store

import (
	"context"
	"sync"

	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/modes"
)

// maxMessages bounds each transcript; the oldest messages are dropped.
const maxMessages = 500

// MemoryStore implements ConversationStore in memory. Nothing survives
// the process.
type MemoryStore struct {
	mu    sync.RWMutex
	convs map[modes.ID][]model.Message
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		convs: make(map[modes.ID][]model.Message),
	}
}

// Messages returns a copy of the transcript of mode.
func (s *MemoryStore) Messages(_ context.Context, mode modes.ID) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.convs[mode]
	result := make([]model.Message, len(msgs))
	copy(result, msgs)
	return result, nil
}

// Append adds msg to the end of the transcript of mode.
func (s *MemoryStore) Append(_ context.Context, mode modes.ID, msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append(s.convs[mode], msg)
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}
	s.convs[mode] = msgs
	return nil
}

// Update replaces the message with msg.ID.
func (s *MemoryStore) Update(_ context.Context, mode modes.ID, msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.convs[mode]
	for i := range msgs {
		if msgs[i].ID == msg.ID {
			msgs[i] = msg
			return nil
		}
	}
	return ErrNotFound
}

// Clear removes every message of mode.
func (s *MemoryStore) Clear(_ context.Context, mode modes.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.convs, mode)
	return nil
}

// Len returns the transcript length of mode.
func (s *MemoryStore) Len(_ context.Context, mode modes.ID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.convs[mode]), nil
}
