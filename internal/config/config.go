package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runner configuration loaded from files and environment variables.
type Config struct {
	AppName           string        `mapstructure:"app_name"`
	Env               string        `mapstructure:"app_env"`
	LogLevel          string        `mapstructure:"log_level"`
	InputsFile        string        `mapstructure:"inputs_file"`
	OutputFormat      string        `mapstructure:"output_format"`
	UserAgent         string        `mapstructure:"http_user_agent"`
	RunTimeoutSeconds int64         `mapstructure:"run_timeout_seconds"`
	RunTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "wave-nodes-http")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("inputs_file", "")
	v.SetDefault("output_format", "json")
	v.SetDefault("http_user_agent", "wavenode/1.0")
	v.SetDefault("run_timeout_seconds", 300) // seconds

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RunTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid run_timeout_seconds (must be positive seconds)")
	}
	cfg.RunTimeout = time.Duration(cfg.RunTimeoutSeconds) * time.Second

	switch cfg.OutputFormat {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output_format %q (expected json or yaml)", cfg.OutputFormat)
	}

	return &cfg, nil
}
