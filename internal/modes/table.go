// Package modes defines the closed set of assistant modes and the selector
// that tracks which one is active.
package modes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lazyvibe/hookterm/internal/model"
)

// ErrUnknownMode is returned by Parse for names outside the closed set.
var ErrUnknownMode = errors.New("unknown mode")

// ID identifies one assistant mode. Only the constants below are valid.
type ID int

const (
	// Project answers questions about project data.
	Project ID = iota
	// BusinessQA answers questions about the business.
	BusinessQA
	// Summarizer condenses pasted text.
	Summarizer

	numModes
)

// Default is the mode selected when no valid initial mode is supplied.
const Default = Project

// Config is the display and behavioral configuration of a mode.
type Config struct {
	// ID is the mode this record describes.
	ID ID
	// Key is the stable name used in config files, CLI flags and webhook payloads.
	Key string
	// Label is the short name shown on tabs.
	Label string
	// Description is shown in the mode picker.
	Description string
	// Greeting is the first assistant message of an empty transcript.
	Greeting string
	// Placeholder is the composer hint text.
	Placeholder string
	// Prompt is the glyph rendered before user messages.
	Prompt string
	// Integration is the webhook this mode sends to.
	Integration model.Integration
	// Accent is the hex color used for the active tab and prompt.
	Accent string
	// MultiLine lets the composer grow for pasted documents.
	MultiLine bool
}

// table is indexed by ID, so every constant below numModes must have an
// entry; Valid and the table tests enforce it.
var table = [numModes]Config{
	Project: {
		ID:          Project,
		Key:         "project",
		Label:       "Project",
		Description: "Ask about project status, owners and milestones",
		Greeting:    "Hi! Ask me anything about your projects.",
		Placeholder: "Which projects are behind schedule?",
		Prompt:      "❯",
		Integration: model.IntegrationProjectData,
		Accent:      "#89B4FA",
	},
	BusinessQA: {
		ID:          BusinessQA,
		Key:         "businessQA",
		Label:       "Business Q&A",
		Description: "Ask about policies, customers and processes",
		Greeting:    "Hello! What would you like to know about the business?",
		Placeholder: "What is our refund policy?",
		Prompt:      "?",
		Integration: model.IntegrationBusinessQA,
		Accent:      "#A6E3A1",
	},
	Summarizer: {
		ID:          Summarizer,
		Key:         "summarizer",
		Label:       "Summarizer",
		Description: "Paste a document and get a short summary",
		Greeting:    "Paste the text you want summarized.",
		Placeholder: "Paste text here...",
		Prompt:      "≡",
		Integration: model.IntegrationSummarizer,
		Accent:      "#FAB387",
		MultiLine:   true,
	},
}

// Valid reports whether id is a member of the closed set.
func (id ID) Valid() bool {
	return id >= 0 && id < numModes
}

// String returns the mode key, or a placeholder for invalid IDs.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("mode(%d)", int(id))
	}
	return table[id].Key
}

// Lookup returns the configuration of id. It panics for IDs outside the
// closed set, like an out-of-range index.
func Lookup(id ID) Config {
	if !id.Valid() {
		panic(fmt.Sprintf("modes: lookup of invalid %s", id))
	}
	return table[id]
}

// All returns every mode configuration in declaration order.
func All() []Config {
	out := make([]Config, len(table))
	copy(out, table[:])
	return out
}

// IDs returns every mode ID in declaration order.
func IDs() []ID {
	ids := make([]ID, 0, numModes)
	for id := ID(0); id < numModes; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Parse resolves a mode key. Matching ignores case and surrounding space.
func Parse(s string) (ID, error) {
	name := strings.TrimSpace(s)
	for _, cfg := range table {
		if strings.EqualFold(cfg.Key, name) {
			return cfg.ID, nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Keys returns the keys of every mode in declaration order.
func Keys() []string {
	keys := make([]string, 0, numModes)
	for _, cfg := range table {
		keys = append(keys, cfg.Key)
	}
	return keys
}
