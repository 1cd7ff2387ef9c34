// Package model defines core data structures for HookTerm.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Integration names one externally hosted webhook endpoint.
type Integration string

const (
	// IntegrationBusinessQA answers questions about the business.
	IntegrationBusinessQA Integration = "businessQA"
	// IntegrationProjectData answers questions about project data.
	IntegrationProjectData Integration = "projectData"
	// IntegrationSummarizer summarizes pasted text.
	IntegrationSummarizer Integration = "summarizer"
)

// Integrations lists every known integration in display order.
var Integrations = []Integration{
	IntegrationBusinessQA,
	IntegrationProjectData,
	IntegrationSummarizer,
}

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser is a message typed by the user.
	RoleUser Role = "user"
	// RoleAssistant is a reply from a webhook or a mode greeting.
	RoleAssistant Role = "assistant"
	// RoleSystem is a local notice (errors, missing configuration).
	RoleSystem Role = "system"
)

// Message is a single entry in a mode transcript.
type Message struct {
	// ID is the unique identifier for this message.
	ID string `json:"id"`
	// Role is who wrote the message.
	Role Role `json:"role"`
	// Content is the message text.
	Content string `json:"content"`
	// CreatedAt is when the message was added.
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message with a generated UUID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
