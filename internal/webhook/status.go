package webhook

import (
	"fmt"

	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/model"
)

// notSet replaces an absent URL in the status line.
const notSet = "Not set"

// StatusLine renders readiness as one human-readable line. Only the
// business Q&A URL is echoed, for quick operator checks.
func StatusLine(r Readiness, env Env) string {
	url := env.URL(model.IntegrationBusinessQA)
	if url == "" {
		url = notSet
	}
	return fmt.Sprintf("webhook status: businessQA=%s (%s) projectData=%s summarizer=%s",
		mark(r.BusinessQA), url, mark(r.ProjectData), mark(r.Summarizer))
}

// LogStatus logs the readiness record, warning when any URL is missing.
func LogStatus(log *logging.Logger, r Readiness, env Env) {
	ev := log.Info()
	if !r.All() {
		ev = log.Warn()
	}
	ev.Bool("businessQA", r.BusinessQA).
		Bool("projectData", r.ProjectData).
		Bool("summarizer", r.Summarizer).
		Msg(StatusLine(r, env))
}

func mark(ok bool) string {
	if ok {
		return "ok"
	}
	return "missing"
}
