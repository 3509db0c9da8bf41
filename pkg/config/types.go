package config

import "time"

// Storage backend identifiers
const (
	BackendSQLite   = "sqlite"
	BackendFile     = "file"
	BackendSupabase = "supabase"
)

// Pipeline consumption policies
const (
	PolicyFlagged = "flagged"
	PolicyFIFO    = "fifo"
	PolicyRandom  = "random"
)

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Pipeline     PipelineConfig   `mapstructure:"pipeline"`
	Prediction   PredictionConfig `mapstructure:"prediction"`
	Auth         AuthConfig       `mapstructure:"auth"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains relational backend settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend     string `mapstructure:"backend"`
	DataDir     string `mapstructure:"data_dir"`
	SupabaseURL string `mapstructure:"supabase_url"`
	SupabaseKey string `mapstructure:"supabase_key"`
	TextBucket  string `mapstructure:"text_bucket"`
	DataBucket  string `mapstructure:"data_bucket"`
}

// PipelineConfig contains sentence pipeline settings
type PipelineConfig struct {
	Policy string `mapstructure:"policy"`
}

// PredictionConfig contains external classifier settings
type PredictionConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheSize int           `mapstructure:"cache_size"`
}

// AuthConfig contains admin authentication settings
type AuthConfig struct {
	AdminCode     string        `mapstructure:"admin_code"`
	AdminPassword string        `mapstructure:"admin_password"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool `mapstructure:"enable_cors"`
	EnableRequestID bool `mapstructure:"enable_request_id"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
