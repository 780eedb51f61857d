package main

import (
	"errors" // Flag validation
	"fmt"    // Output and error wrapping
	"os"     // Exit codes

	"kasir/internal/config" // Custom import path (Config)
	"kasir/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
	"github.com/spf13/cobra"     // CLI flags
)

var (
	skipViews bool
	viewsOnly bool
)

// rootCmd creates the tables and report views
var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the kasir schema",
	Long: `Create or update the kasir tables (toko, users, pembeli, penjualan, penjualan_detail)
and recreate the report views.

Examples:
  migrate                 # tables and views
  migrate --skip-views    # tables only
  migrate --views-only    # recreate views after a manual schema change`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&skipViews, "skip-views", false, "Only migrate tables")
	rootCmd.Flags().BoolVar(&viewsOnly, "views-only", false, "Only recreate the report views")
}

func run() error {
	if skipViews && viewsOnly {
		return errors.New("--skip-views and --views-only cannot be combined")
	}
	cfg := config.LoadConfig() // Load configuration
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	// Migrations need the database settings only, not the session secret
	if err := cfg.ValidateDB(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if !viewsOnly {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}
	if !skipViews {
		if err := db.CreateViews(gdb); err != nil {
			return err
		}
	}
	logrus.WithField("driver", cfg.DBDriver).Info("Migration completed")
	return nil
}

// Main entry point for migration
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
