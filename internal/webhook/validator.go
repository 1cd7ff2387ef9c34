package webhook

import (
	"os"

	"github.com/lazyvibe/hookterm/internal/model"
)

// Readiness reports which integrations have an endpoint URL configured.
type Readiness struct {
	BusinessQA  bool `json:"businessQA"`
	ProjectData bool `json:"projectData"`
	Summarizer  bool `json:"summarizer"`
}

// Ready returns the flag for integration.
func (r Readiness) Ready(integration model.Integration) bool {
	switch integration {
	case model.IntegrationBusinessQA:
		return r.BusinessQA
	case model.IntegrationProjectData:
		return r.ProjectData
	case model.IntegrationSummarizer:
		return r.Summarizer
	default:
		return false
	}
}

// All reports whether every integration is configured.
func (r Readiness) All() bool {
	return r.BusinessQA && r.ProjectData && r.Summarizer
}

// Count returns how many integrations are configured.
func (r Readiness) Count() int {
	n := 0
	for _, integration := range model.Integrations {
		if r.Ready(integration) {
			n++
		}
	}
	return n
}

// Validator checks endpoint URL presence. It never contacts the endpoints.
type Validator struct {
	lookup LookupFunc
}

// NewValidator returns a validator reading from lookup (os.LookupEnv if nil).
func NewValidator(lookup LookupFunc) *Validator {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Validator{lookup: lookup}
}

// Validate reports, per integration, whether its variable is set to a
// non-empty string. Values are not trimmed: "  " counts as configured.
func (v *Validator) Validate() Readiness {
	return Readiness{
		BusinessQA:  v.present(EnvBusinessQA),
		ProjectData: v.present(EnvProjectData),
		Summarizer:  v.present(EnvSummarizer),
	}
}

func (v *Validator) present(key string) bool {
	value, ok := v.lookup(key)
	return ok && value != ""
}
