package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey aborts startup when the model API key is absent.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY environment variable is not set")

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Listen      string
	WorkDir     string
	Timeout     time.Duration
	Temperature float32
}

// Load reads configuration from the environment. GOOGLE_API_KEY is
// required; everything else defaults. CODETIDY_* variables override the
// defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CODETIDY")
	v.AutomaticEnv()

	if err := v.BindEnv("api_key", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key: %w", err)
	}

	v.SetDefault("model", "gemini-1.5-flash")
	v.SetDefault("base_url", "")
	v.SetDefault("listen", ":8080")
	v.SetDefault("workdir", filepath.Join(os.TempDir(), "codetidy"))
	v.SetDefault("timeout", "90s")
	v.SetDefault("temperature", 0.2)

	apiKey := v.GetString("api_key")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		APIKey:      apiKey,
		Model:       v.GetString("model"),
		BaseURL:     v.GetString("base_url"),
		Listen:      v.GetString("listen"),
		WorkDir:     v.GetString("workdir"),
		Timeout:     v.GetDuration("timeout"),
		Temperature: float32(v.GetFloat64("temperature")),
	}, nil
}
