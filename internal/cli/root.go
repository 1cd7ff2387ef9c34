// Package cli implements the hookterm command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/lazyvibe/hookterm/internal/app"
	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/webhook"
	"github.com/lazyvibe/hookterm/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	envFile  string
	envVars  string
	logLevel string

	// resolved in PersistentPreRunE
	configDir string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hookterm",
		Short: "Chat with webhook-backed assistants from the terminal",
		Long: "HookTerm is a terminal chat client. Each mode (project data, business Q&A, " +
			"summarizer) forwards your messages to its own webhook and shows the reply.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.ConfigDir()
			if err != nil {
				return fmt.Errorf("resolving config directory: %w", err)
			}
			configDir = dir
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/hookterm/config.yaml)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with webhook URLs (overrides env_file)")
	cmd.PersistentFlags().StringVar(&envVars, "env", "", "webhook variables as KEY=VALUE pairs separated by commas")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level ("+strings.Join(logging.Levels, ", ")+")")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newModesCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return app.ConfigPath(configDir)
}

// loadSettings loads the config, applies flag overrides and resolves the
// webhook environment once.
func loadSettings() (*app.Config, webhook.Env, error) {
	cfg, err := app.LoadConfig(configDir, configPath())
	if err != nil {
		return nil, webhook.Env{}, err
	}
	if logLevel != "" {
		cfg.Logging.Level = strings.ToLower(logLevel)
	}
	if envFile != "" {
		cfg.EnvFile = envFile
	}

	if issues := app.Validate(cfg); len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, webhook.Env{}, fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}

	overrides, err := utils.ParseEnvVars(envVars)
	if err != nil {
		return nil, webhook.Env{}, fmt.Errorf("parsing --env: %w", err)
	}
	env, err := app.ResolveWebhookEnv(cfg, overrides)
	if err != nil {
		return nil, webhook.Env{}, err
	}
	return cfg, env, nil
}

// consoleLogger logs human-readable lines to the command's stderr.
func consoleLogger(cmd *cobra.Command, level string) *logging.Logger {
	return logging.NewConsole(cmd.ErrOrStderr(), level)
}
