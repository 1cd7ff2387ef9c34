package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestValidateAllSet(t *testing.T) {
	v := NewValidator(mapLookup(map[string]string{
		EnvBusinessQA:  "https://hooks.example.com/qa",
		EnvProjectData: "https://hooks.example.com/project",
		EnvSummarizer:  "https://hooks.example.com/sum",
	}))
	assert.Equal(t, Readiness{BusinessQA: true, ProjectData: true, Summarizer: true}, v.Validate())
}

func TestValidateBusinessQAMissing(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"unset": {
			EnvProjectData: "https://hooks.example.com/project",
			EnvSummarizer:  "https://hooks.example.com/sum",
		},
		"empty": {
			EnvBusinessQA:  "",
			EnvProjectData: "https://hooks.example.com/project",
			EnvSummarizer:  "https://hooks.example.com/sum",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := NewValidator(mapLookup(vars)).Validate()
			assert.Equal(t, Readiness{BusinessQA: false, ProjectData: true, Summarizer: true}, got)
		})
	}
}

func TestValidateNoTrimming(t *testing.T) {
	got := NewValidator(mapLookup(map[string]string{EnvSummarizer: "  "})).Validate()
	assert.True(t, got.Summarizer)
	assert.False(t, got.BusinessQA)
}

func TestValidateIsIdempotent(t *testing.T) {
	v := NewValidator(mapLookup(map[string]string{EnvProjectData: "https://x"}))
	assert.Equal(t, v.Validate(), v.Validate())
}

func TestValidateProcessEnv(t *testing.T) {
	t.Setenv(EnvBusinessQA, "https://hooks.example.com/qa")
	t.Setenv(EnvProjectData, "")
	t.Setenv(EnvSummarizer, "https://hooks.example.com/sum")

	got := NewValidator(nil).Validate()
	assert.Equal(t, Readiness{BusinessQA: true, ProjectData: false, Summarizer: true}, got)
}

func TestReadinessHelpers(t *testing.T) {
	r := Readiness{BusinessQA: true, Summarizer: true}
	assert.True(t, r.Ready(model.IntegrationBusinessQA))
	assert.False(t, r.Ready(model.IntegrationProjectData))
	assert.False(t, r.Ready("unknown"))
	assert.Equal(t, 2, r.Count())
	assert.False(t, r.All())
	assert.True(t, Readiness{true, true, true}.All())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, EnvBusinessQA, EnvVar(model.IntegrationBusinessQA))
	assert.Equal(t, EnvProjectData, EnvVar(model.IntegrationProjectData))
	assert.Equal(t, EnvSummarizer, EnvVar(model.IntegrationSummarizer))
	assert.Empty(t, EnvVar("other"))
}

func TestResolveEnvPrefersLookup(t *testing.T) {
	env := ResolveEnv(
		mapLookup(map[string]string{EnvBusinessQA: "from-process"}),
		map[string]string{
			EnvBusinessQA: "from-file",
			EnvSummarizer: "file-only",
			"UNRELATED":   "ignored",
		},
	)
	assert.Equal(t, "from-process", env.URL(model.IntegrationBusinessQA))
	assert.Equal(t, "file-only", env.URL(model.IntegrationSummarizer))
	assert.Empty(t, env.URL(model.IntegrationProjectData))

	_, ok := env.Lookup("UNRELATED")
	assert.False(t, ok)
}

func TestResolveEnvFeedsValidator(t *testing.T) {
	env := ResolveEnv(mapLookup(nil), map[string]string{
		EnvBusinessQA:  "https://qa",
		EnvProjectData: "https://project",
	})
	got := NewValidator(env.Lookup).Validate()
	assert.Equal(t, Readiness{BusinessQA: true, ProjectData: true}, got)
}

func TestStatusLine(t *testing.T) {
	env := ResolveEnv(mapLookup(map[string]string{EnvBusinessQA: "https://qa"}), nil)
	line := StatusLine(Readiness{BusinessQA: true}, env)
	assert.Contains(t, line, "businessQA=ok (https://qa)")
	assert.Contains(t, line, "projectData=missing")

	line = StatusLine(Readiness{}, Env{})
	assert.Contains(t, line, "businessQA=missing (Not set)")
}

func TestLogStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "info")

	LogStatus(log, Readiness{ProjectData: true}, Env{})
	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"projectData":true`)
	assert.Contains(t, out, "Not set")

	buf.Reset()
	LogStatus(log, Readiness{true, true, true}, Env{})
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestSendPostsJSON(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, version.UserAgent(), r.Header.Get("User-Agent"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"42 projects"}`))
	}))
	defer srv.Close()

	env := ResolveEnv(mapLookup(map[string]string{EnvProjectData: srv.URL}), nil)
	client := NewClient(env, time.Second, nil)

	reply, err := client.Send(context.Background(), model.IntegrationProjectData, Request{
		SessionID: "sess-1",
		ChatInput: "how many projects?",
		Mode:      "project",
	})
	require.NoError(t, err)
	assert.Equal(t, "42 projects", reply.Text)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.Equal(t, Request{SessionID: "sess-1", ChatInput: "how many projects?", Mode: "project"}, got)
}

func TestSendNotConfigured(t *testing.T) {
	client := NewClient(Env{}, time.Second, nil)
	_, err := client.Send(context.Background(), model.IntegrationSummarizer, Request{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendErrorStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	env := ResolveEnv(mapLookup(map[string]string{EnvBusinessQA: srv.URL}), nil)
	reply, err := NewClient(env, time.Second, nil).Send(context.Background(), model.IntegrationBusinessQA, Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, http.StatusBadGateway, reply.StatusCode)
	assert.Equal(t, 1, calls, "no retries")
}

func TestSendHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	env := ResolveEnv(mapLookup(map[string]string{EnvSummarizer: srv.URL}), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(env, time.Second, nil).Send(ctx, model.IntegrationSummarizer, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"output field", `{"output":"a"}`, "a"},
		{"text field", `{"text":"b"}`, "b"},
		{"message field", `{"message":"c"}`, "c"},
		{"response field", `{"response":"d"}`, "d"},
		{"array", `[{"output":"e"}]`, "e"},
		{"json string", `"f"`, "f"},
		{"plain text", "  plain answer \n", "plain answer"},
		{"unknown object", `{"foo":1}`, `{"foo":1}`},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseReply([]byte(tt.body)))
		})
	}
}
