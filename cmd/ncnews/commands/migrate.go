package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nc-news-api/internal/database"
)

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		Long: `Create any missing tables and columns for topics, users, articles and comments.
Existing rows are kept.

Examples:
  ncnews migrate
  ncnews migrate --driver sqlite --dsn ./nc_news.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := opts.connect()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.AutoMigrate(db, log); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
