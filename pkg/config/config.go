package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("LABELER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	backend := viper.GetString("storage.backend")
	switch backend {
	case BackendSQLite, BackendFile, BackendSupabase:
	default:
		return fmt.Errorf("invalid storage backend: %q (expected sqlite, file or supabase)", backend)
	}

	policy := viper.GetString("pipeline.policy")
	switch policy {
	case PolicyFlagged, PolicyFIFO, PolicyRandom:
	default:
		return fmt.Errorf("invalid pipeline policy: %q (expected flagged, fifo or random)", policy)
	}

	// The flagged policy needs individually addressable sentence rows
	if policy == PolicyFlagged && backend != BackendSQLite {
		return fmt.Errorf("pipeline policy %q requires the sqlite backend, got %q", policy, backend)
	}
	if backend == BackendSQLite && policy != PolicyFlagged {
		return fmt.Errorf("the sqlite backend only supports the flagged policy, got %q", policy)
	}

	if backend == BackendSupabase {
		if viper.GetString("storage.supabase_url") == "" || viper.GetString("storage.supabase_key") == "" {
			return fmt.Errorf("supabase backend requires storage.supabase_url and storage.supabase_key")
		}
	}

	if backend == BackendSQLite && viper.GetString("database.path") == "" {
		return fmt.Errorf("sqlite backend requires database.path")
	}

	// Auto-correct implausible values rather than failing startup
	if viper.GetInt("prediction.cache_size") <= 0 {
		viper.Set("prediction.cache_size", 50)
	}
	if viper.GetDuration("prediction.timeout") <= 0 {
		viper.Set("prediction.timeout", 10*time.Second)
	}

	return warnPlaceholderCredentials()
}

// warnPlaceholderCredentials warns when admin credentials are left at the
// shipped defaults; in production this is an error.
func warnPlaceholderCredentials() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{"admin123", "password123", "changeme", "CHANGEME", ""}

	code := viper.GetString("auth.admin_code")
	password := viper.GetString("auth.admin_password")
	secret := viper.GetString("auth.jwt_secret")

	for _, placeholder := range placeholders {
		if code == placeholder || password == placeholder || secret == placeholder {
			if isProduction {
				return fmt.Errorf("admin credentials are using placeholder values; set LABELER_AUTH_ADMIN_CODE, LABELER_AUTH_ADMIN_PASSWORD and LABELER_AUTH_JWT_SECRET")
			}
			fmt.Println("Warning: admin credentials are using placeholder values")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendSupabase:
	default:
		return fmt.Errorf("invalid storage backend: %q", c.Storage.Backend)
	}
	if c.Pipeline.Policy == PolicyFlagged && c.Storage.Backend != BackendSQLite {
		return fmt.Errorf("pipeline policy %q requires the sqlite backend", c.Pipeline.Policy)
	}
	if c.Prediction.CacheSize <= 0 {
		c.Prediction.CacheSize = 50
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults (relational backend)
	viper.SetDefault("database.path", "./data/labeler.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.backend", BackendSQLite)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("storage.supabase_url", "")
	viper.SetDefault("storage.supabase_key", "")
	viper.SetDefault("storage.text_bucket", "text-files")
	viper.SetDefault("storage.data_bucket", "csv-data")

	// Pipeline defaults
	viper.SetDefault("pipeline.policy", PolicyFlagged)

	// Prediction defaults
	viper.SetDefault("prediction.endpoint", "")
	viper.SetDefault("prediction.timeout", 10*time.Second)
	viper.SetDefault("prediction.cache_size", 50)

	// Auth defaults
	viper.SetDefault("auth.admin_code", "admin123")
	viper.SetDefault("auth.admin_password", "password123")
	viper.SetDefault("auth.jwt_secret", "changeme")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
