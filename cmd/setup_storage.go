package cmd

import (
	"fmt"

	"github.com/killallgit/labeler-api/internal/storage"
	"github.com/killallgit/labeler-api/pkg/config"
	"github.com/spf13/cobra"
)

// setupStorageCmd provisions the Supabase storage buckets
var setupStorageCmd = &cobra.Command{
	Use:   "setup-storage",
	Short: "Provision object storage buckets",
	Long: `Create the storage buckets the supabase backend writes to.

The command is idempotent: buckets that already exist are left alone.
It only applies to the supabase backend; the sqlite and file backends
need no provisioning.

Example:
  labeler-api setup-storage`,
	RunE: runSetupStorage,
}

func init() {
	rootCmd.AddCommand(setupStorageCmd)
}

func runSetupStorage(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Storage.Backend != config.BackendSupabase {
		return fmt.Errorf("storage provisioning only applies to the supabase backend (configured: %s)", cfg.Storage.Backend)
	}

	client := storage.NewSupabaseClient(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey)
	if err := storage.EnsureBuckets(client, cfg.Storage.TextBucket, cfg.Storage.DataBucket); err != nil {
		return err
	}

	fmt.Println("Storage buckets ready")
	return nil
}
