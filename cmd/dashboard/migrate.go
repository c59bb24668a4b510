package main

import (
	"github.com/deppfellow/invoice-dashboard/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := bootstrap()
			defer rt.close()

			if err := database.Migrate(cmd.Context(), &rt.log, rt.cfg); err != nil {
				rt.log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
			return nil
		},
	}
}
