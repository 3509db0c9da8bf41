package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestValidateBackendPolicyPairing(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		policy  string
		wantErr bool
	}{
		{"sqlite with flagged", BackendSQLite, PolicyFlagged, false},
		{"file with fifo", BackendFile, PolicyFIFO, false},
		{"file with random", BackendFile, PolicyRandom, false},
		{"flagged requires sqlite", BackendFile, PolicyFlagged, true},
		{"sqlite only supports flagged", BackendSQLite, PolicyFIFO, true},
		{"unknown backend", "redis", PolicyFIFO, true},
		{"unknown policy", BackendFile, "lifo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			setDefaults()
			viper.Set("storage.backend", tt.backend)
			viper.Set("pipeline.policy", tt.policy)

			err := validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSupabaseCredentials(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.Set("storage.backend", BackendSupabase)
	viper.Set("pipeline.policy", PolicyFIFO)

	// Missing URL and key
	assert.Error(t, validate())

	viper.Set("storage.supabase_url", "https://example.supabase.co")
	viper.Set("storage.supabase_key", "service-role-key")
	assert.NoError(t, validate())
}

func TestValidatePort(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.Set("server.port", 0)
	assert.Error(t, validate())

	viper.Reset()
	setDefaults()
	viper.Set("server.port", 70000)
	assert.Error(t, validate())
}

func TestValidateCorrectsPredictionSettings(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.Set("prediction.cache_size", -5)
	viper.Set("prediction.timeout", "0s")

	assert.NoError(t, validate())
	assert.Equal(t, 50, viper.GetInt("prediction.cache_size"))
	assert.Positive(t, viper.GetDuration("prediction.timeout"))
}

func TestPlaceholderCredentialsFailInProduction(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.Set("environment", "production")

	// Shipped defaults are placeholders
	assert.Error(t, validate())

	viper.Set("auth.admin_code", "real-code")
	viper.Set("auth.admin_password", "real-password")
	viper.Set("auth.jwt_secret", "real-secret")
	assert.NoError(t, validate())
}

func TestDefaults(t *testing.T) {
	viper.Reset()
	setDefaults()

	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, BackendSQLite, viper.GetString("storage.backend"))
	assert.Equal(t, PolicyFlagged, viper.GetString("pipeline.policy"))
	assert.Equal(t, "text-files", viper.GetString("storage.text_bucket"))
	assert.Equal(t, "csv-data", viper.GetString("storage.data_bucket"))
	assert.True(t, viper.GetBool("rate_limiting.enabled"))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 8080},
				Storage:  StorageConfig{Backend: BackendSQLite},
				Pipeline: PipelineConfig{Policy: PolicyFlagged},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server:  ServerConfig{Host: "localhost", Port: 0},
				Storage: StorageConfig{Backend: BackendSQLite},
			},
			wantErr: true,
		},
		{
			name: "flagged policy on blob backend",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 8080},
				Storage:  StorageConfig{Backend: BackendFile},
				Pipeline: PipelineConfig{Policy: PolicyFlagged},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
