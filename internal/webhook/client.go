package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/version"
)

// ErrNotConfigured is returned by Send when the integration has no URL.
var ErrNotConfigured = errors.New("webhook not configured")

// maxReplyBytes caps how much of a reply body is read.
const maxReplyBytes = 1 << 20

// Request is the JSON body posted to a webhook.
type Request struct {
	SessionID string `json:"sessionId"`
	ChatInput string `json:"chatInput"`
	Mode      string `json:"mode"`
}

// Reply is the parsed response of a webhook.
type Reply struct {
	Text       string
	StatusCode int
	Duration   time.Duration
}

// Client posts chat input to webhook endpoints. It makes exactly one
// attempt per call.
type Client struct {
	env    Env
	client *http.Client
	log    *logging.Logger
}

// NewClient creates a Client resolving URLs from env.
func NewClient(env Env, timeout time.Duration, log *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		env: env,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send posts req to the endpoint of integration and returns the reply text.
func (c *Client) Send(ctx context.Context, integration model.Integration, req Request) (Reply, error) {
	url := c.env.URL(integration)
	if url == "" {
		return Reply{}, fmt.Errorf("%s: %w", integration, ErrNotConfigured)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Reply{}, fmt.Errorf("encoding request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json, text/plain")
	httpReq.Header.Set("User-Agent", version.UserAgent())

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Str("integration", string(integration)).Msg("webhook request failed")
		return Reply{}, fmt.Errorf("calling %s webhook: %w", integration, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return Reply{}, fmt.Errorf("reading %s reply: %w", integration, err)
	}
	elapsed := time.Since(start)

	c.log.Debug().
		Str("integration", string(integration)).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("webhook replied")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reply{StatusCode: resp.StatusCode, Duration: elapsed},
			fmt.Errorf("%s webhook returned %s", integration, resp.Status)
	}

	return Reply{
		Text:       parseReply(data),
		StatusCode: resp.StatusCode,
		Duration:   elapsed,
	}, nil
}

// replyFields are checked in order for the answer text.
var replyFields = []string{"output", "text", "message", "response"}

// parseReply extracts the answer from a JSON object, the first element of
// a JSON array, or falls back to the raw body.
func parseReply(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		if text, ok := pickField(obj); ok {
			return text
		}
		return string(trimmed)
	}

	var list []map[string]any
	if err := json.Unmarshal(trimmed, &list); err == nil && len(list) > 0 {
		if text, ok := pickField(list[0]); ok {
			return text
		}
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	return strings.TrimSpace(string(data))
}

func pickField(obj map[string]any) (string, bool) {
	for _, field := range replyFields {
		if v, ok := obj[field].(string); ok {
			return v, true
		}
	}
	return "", false
}
