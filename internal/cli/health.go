package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the server and report its storage backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			var health HealthResult
			if err := client.Get("/api/health", &health); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(health)
			return nil
		},
	}
}
