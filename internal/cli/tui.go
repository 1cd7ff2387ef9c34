package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/hookterm/internal/logging"
	"github.com/lazyvibe/hookterm/internal/store"
	"github.com/lazyvibe/hookterm/internal/ui"
	"github.com/lazyvibe/hookterm/internal/webhook"
)

func runTUI() error {
	cfg, env, err := loadSettings()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	log, closer, err := logging.NewFile(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	application := ui.New(ui.Options{
		Config:    cfg,
		Store:     store.NewMemoryStore(),
		Client:    webhook.NewClient(env, cfg.Webhook.Timeout, log.Sub("webhook")),
		Validator: webhook.NewValidator(env.Lookup),
		Env:       env,
		Logger:    log,
	})
	defer application.Close()

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
