package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/labeler-api/api"
	"github.com/killallgit/labeler-api/api/types"
	"github.com/killallgit/labeler-api/internal/database"
	"github.com/killallgit/labeler-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Text Labeling API server with the configured settings.

The server ingests paragraphs, serves sentences to labelers and collects
labeled training data on the configured storage backend.

Example:
  labeler-api serve
  labeler-api serve --port 9090
  labeler-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))

	// The relational backend owns the schema; blob backends have no
	// database at all
	if cfg.Storage.Backend == config.BackendSQLite {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		if err := db.Bootstrap(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		server.SetDependencies(&types.Dependencies{DB: db})
	}

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Text Labeling API server on %s:%d (backend: %s, policy: %s)\n",
		serverHost, serverPort, cfg.Storage.Backend, cfg.Pipeline.Policy)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
