package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/config"
	"nc-news-api/internal/database"
	"nc-news-api/internal/logger"
)

// globalOptions are the flags shared by every subcommand
type globalOptions struct {
	configPath string
	driver     string
	dsn        string
	verbose    bool
}

// NewRootCmd builds the ncnews command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "ncnews",
		Short: "Administration tool for the NC News database",
		Long: `ncnews manages the NC News database outside the API server.

Commands:
  migrate  - Create or update the schema
  seed     - Drop, recreate and fill the schema from a bundled dataset`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs/config.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Database driver override (postgres or sqlite)")
	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "Database connection string override")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log SQL statements")

	rootCmd.AddCommand(newMigrateCmd(opts))
	rootCmd.AddCommand(newSeedCmd(opts))
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads configuration, applies flag overrides and opens the database
func (o *globalOptions) connect() (*gorm.DB, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.driver != "" {
		cfg.Database.Driver = o.driver
	}
	if o.dsn != "" {
		cfg.Database.URL = o.dsn
	}
	if o.verbose {
		cfg.Database.Debug = true
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg.Database.Options())
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
