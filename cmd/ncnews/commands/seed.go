package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nc-news-api/internal/database"
	"nc-news-api/internal/seed"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Drop, recreate and fill the schema from a bundled dataset",
		Long: `Drop every NC News table, recreate the schema and insert a bundled dataset.
All existing rows are lost.

Examples:
  ncnews seed                       # development dataset
  ncnews seed --dataset test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(dataset)
			if err != nil {
				return err
			}

			db, log, err := opts.connect()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := seed.Seed(cmd.Context(), db, data, log); err != nil {
				return fmt.Errorf("seed %s: %w", dataset, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s dataset: %d topics, %d users, %d articles, %d comments\n",
				dataset, len(data.Topics), len(data.Users), len(data.Articles), len(data.Comments))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", seed.DatasetDevelopment, "Dataset to load (test or development)")
	return cmd
}
