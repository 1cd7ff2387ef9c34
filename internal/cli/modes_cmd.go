package cli

import (
	"fmt"

	"github.com/lazyvibe/hookterm/internal/modes"
	"github.com/lazyvibe/hookterm/internal/webhook"
	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the available modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, cfg := range modes.All() {
				fmt.Fprintf(out, "%d  %-11s %-13s %-12s %s\n",
					i+1, cfg.Key, cfg.Label, cfg.Integration, webhook.EnvVar(cfg.Integration))
			}
			return nil
		},
	}
}
