package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/mediahub/config"
	sqlitestore "github.com/bnema/mediahub/internal/adapter/storage/sqlite"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *sqlitestore.Store) error {
				version, err := store.SchemaVersion()
				if err != nil {
					return fmt.Errorf("read schema version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Database %s is at schema version %d\n", cfg.DataDir, version)
				return nil
			})
		},
	}
}
