package app

import (
	"fmt"
	"os"

	"github.com/lazyvibe/hookterm/internal/webhook"
	"github.com/lazyvibe/hookterm/pkg/utils"
)

// ResolveWebhookEnv snapshots the webhook variables once. Precedence is
// overrides, then the process environment, then the configured dotenv file.
func ResolveWebhookEnv(cfg *Config, overrides map[string]string) (webhook.Env, error) {
	var fallback map[string]string
	if cfg.EnvFile != "" {
		vars, err := utils.LoadDotEnv(cfg.EnvFile)
		if err != nil {
			return webhook.Env{}, fmt.Errorf("loading env file %s: %w", cfg.EnvFile, err)
		}
		fallback = vars
	}

	lookup := func(key string) (string, bool) {
		if v, ok := overrides[key]; ok {
			return v, true
		}
		return os.LookupEnv(key)
	}
	return webhook.ResolveEnv(lookup, fallback), nil
}
