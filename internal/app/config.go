// Package app provides application-level configuration and initialization.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/modes"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimeout = 30 * time.Second
	defaultEnvFile = ".env"
)

// Config holds the application configuration.
type Config struct {
	// DefaultMode is the mode key selected at startup.
	DefaultMode string `yaml:"default_mode,omitempty"`
	// EnvFile is a dotenv file consulted for webhook URLs missing from the
	// process environment.
	EnvFile string `yaml:"env_file,omitempty"`
	// Logging controls the log file.
	Logging LoggingConfig `yaml:"logging,omitempty"`
	// Notifications configures desktop alerts.
	Notifications NotificationConfig `yaml:"notifications"`
	// Webhook configures outgoing requests.
	Webhook WebhookConfig `yaml:"webhook,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	File  string `yaml:"file,omitempty"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	// Desktop enables desktop notifications for replies hidden from view.
	Desktop bool `yaml:"desktop"`
}

// WebhookConfig holds webhook request settings.
type WebhookConfig struct {
	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout,omitempty"`
}

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig(configDir string) *Config {
	return &Config{
		DefaultMode: modes.Default.String(),
		EnvFile:     defaultEnvFile,
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(configDir, "hookterm.log"),
		},
		Notifications: NotificationConfig{
			Desktop: true,
		},
		Webhook: WebhookConfig{
			Timeout:    defaultTimeout,
			TimeoutRaw: defaultTimeout.String(),
		},
	}
}

// ConfigDir returns the HookTerm configuration directory.
func ConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "hookterm"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// LoadConfig loads the configuration from path. A missing file yields the
// defaults; environment overrides apply either way.
func LoadConfig(configDir, path string) (*Config, error) {
	config := DefaultConfig(configDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		applyEnvOverrides(config)
		return config, nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	applyEnvOverrides(config)
	if err := parseDurations(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if config.Webhook.Timeout > 0 {
		config.Webhook.TimeoutRaw = config.Webhook.Timeout.String()
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Mode returns the configured default mode, falling back to modes.Default.
func (c *Config) Mode() modes.ID {
	id, err := modes.Parse(c.DefaultMode)
	if err != nil {
		return modes.Default
	}
	return id
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.DefaultMode != "" {
		if _, err := modes.Parse(cfg.DefaultMode); err != nil {
			issues = append(issues, ValidationIssue{
				Path:    "default_mode",
				Message: fmt.Sprintf("must be one of %v, got %q", modes.Keys(), cfg.DefaultMode),
			})
		}
	}

	if cfg.Logging.Level != "" && !logging.ValidLevel(cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", logging.Levels, cfg.Logging.Level),
		})
	}

	if cfg.Webhook.Timeout < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "webhook.timeout",
			Message: fmt.Sprintf("must not be negative, got %s", cfg.Webhook.Timeout),
		})
	}

	return issues
}

// applyEnvOverrides reads HOOKTERM_* environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOOKTERM_DEFAULT_MODE"); v != "" {
		cfg.DefaultMode = v
	}
	if v := os.Getenv("HOOKTERM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}

// parseDurations converts the raw duration strings into time.Duration values.
func parseDurations(cfg *Config) error {
	if cfg.Webhook.TimeoutRaw == "" {
		cfg.Webhook.Timeout = defaultTimeout
		return nil
	}
	d, err := time.ParseDuration(cfg.Webhook.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("parsing webhook.timeout %q: %w", cfg.Webhook.TimeoutRaw, err)
	}
	cfg.Webhook.Timeout = d
	return nil
}
