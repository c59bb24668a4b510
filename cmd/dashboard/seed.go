package main

import (
	"github.com/deppfellow/invoice-dashboard/internal/database"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the placeholder customers, invoices and revenue",
		Long:  "Loads the placeholder data set. Rows that already exist are kept, and invoices are only loaded into an empty table.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := bootstrap()
			defer rt.close()

			db, err := database.New(rt.cfg, &rt.log, rt.loggerService)
			if err != nil {
				rt.log.Error().Err(err).Msg("failed to connect to database")
				return err
			}
			defer db.Close()

			if _, err := database.Seed(cmd.Context(), db.Pool, &rt.log); err != nil {
				rt.log.Error().Err(err).Msg("failed to seed database")
				return err
			}
			return nil
		},
	}
}
