package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/labeler-api/internal/database"
	"github.com/killallgit/labeler-api/internal/models"
	"github.com/killallgit/labeler-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Text Labeling API.

The schema is managed with GORM auto-migration. These commands only
apply to the sqlite backend; the file and supabase backends store plain
blobs and have no schema.

Available subcommands:
  up      - Apply the schema
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Long: `Create or update all application tables.

Auto-migration is additive: new tables and columns are created, existing
data is left untouched.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long:  `Display which application tables currently exist in the database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// openMigrationDB connects to the configured sqlite database, rejecting
// the blob backends which have nothing to migrate.
func openMigrationDB() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Storage.Backend != config.BackendSQLite {
		return nil, fmt.Errorf("migrations only apply to the sqlite backend (configured: %s)", cfg.Storage.Backend)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Bootstrap(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Schema Status")
	fmt.Println(strings.Repeat("=", 40))

	tables := []interface{}{
		&models.Paragraph{},
		&models.Sentence{},
		&models.LabeledEntry{},
	}
	migrator := db.DB.Migrator()
	for _, table := range tables {
		state := "missing"
		if migrator.HasTable(table) {
			state = "present"
		}
		fmt.Printf("  %-20T %s\n", table, state)
	}

	return nil
}
