package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lazyvibe/hookterm/internal/model"
	"github.com/lazyvibe/hookterm/internal/version"
	"github.com/lazyvibe/hookterm/internal/webhook"
	"github.com/spf13/cobra"
)

type statusReport struct {
	Config    string            `json:"config"`
	EnvFile   string            `json:"envFile"`
	LogFile   string            `json:"logFile"`
	Readiness webhook.Readiness `json:"webhooks"`
}

func newStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which webhooks are configured",
		Long:  "Show which webhooks are configured. Missing webhooks are reported but do not cause a failure.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := loadSettings()
			if err != nil {
				return err
			}

			readiness := webhook.NewValidator(env.Lookup).Validate()
			webhook.LogStatus(consoleLogger(cmd, cfg.Logging.Level), readiness, env)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(statusReport{
					Config:    configPath(),
					EnvFile:   cfg.EnvFile,
					LogFile:   cfg.Logging.File,
					Readiness: readiness,
				})
			}

			fmt.Fprintf(out, "HookTerm %s\n\n", version.Version)

			configState := ""
			if _, err := os.Stat(configPath()); os.IsNotExist(err) {
				configState = " (not found, using defaults)"
			}
			fmt.Fprintf(out, "Config:   %s%s\n", configPath(), configState)
			fmt.Fprintf(out, "Env file: %s\n", cfg.EnvFile)
			fmt.Fprintf(out, "Log file: %s\n\n", cfg.Logging.File)

			fmt.Fprintf(out, "Webhooks (%d/%d configured):\n", readiness.Count(), len(model.Integrations))
			for _, integration := range model.Integrations {
				state := "ok"
				if !readiness.Ready(integration) {
					state = "Not set"
				}
				fmt.Fprintf(out, "  %-12s %-26s %s\n", integration, webhook.EnvVar(integration), state)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the status as JSON")
	return cmd
}
