// Package webhook resolves, validates and calls the per-mode webhook endpoints.
package webhook

import (
	"os"

	"github.com/lazyvibe/hookterm/internal/model"
)

// Environment variables holding each integration's endpoint URL.
const (
	EnvBusinessQA  = "BUSINESS_QA_WEBHOOK_URL"
	EnvProjectData = "PROJECT_DATA_WEBHOOK_URL"
	EnvSummarizer  = "SUMMARIZER_WEBHOOK_URL"
)

// EnvVar returns the variable name that configures integration.
func EnvVar(integration model.Integration) string {
	switch integration {
	case model.IntegrationBusinessQA:
		return EnvBusinessQA
	case model.IntegrationProjectData:
		return EnvProjectData
	case model.IntegrationSummarizer:
		return EnvSummarizer
	default:
		return ""
	}
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Env is a resolved, read-only view of the host environment.
type Env struct {
	vars map[string]string
}

// ResolveEnv snapshots the variables this package cares about. Values from
// lookup take precedence over fallback, which usually holds a dotenv file.
func ResolveEnv(lookup LookupFunc, fallback map[string]string) Env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	vars := make(map[string]string, len(model.Integrations))
	for _, integration := range model.Integrations {
		key := EnvVar(integration)
		if v, ok := lookup(key); ok {
			vars[key] = v
			continue
		}
		if v, ok := fallback[key]; ok {
			vars[key] = v
		}
	}
	return Env{vars: vars}
}

// Lookup implements LookupFunc over the snapshot.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// URL returns the configured endpoint of integration, or "".
func (e Env) URL(integration model.Integration) string {
	return e.vars[EnvVar(integration)]
}
