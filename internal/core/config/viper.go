package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConsoleAPIConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConsoleAPIConfig(configPath string) (*ConsoleAPIConfig, error) {
	v := viper.New()

	// Set defaults matching DefaultConsoleAPIConfig
	v.SetDefault("console_api.host", "0.0.0.0")
	v.SetDefault("console_api.port", 8080)
	v.SetDefault("console_api.request_timeout", "15s")
	v.SetDefault("console_api.shutdown_timeout", "30s")
	v.SetDefault("console_api.max_body_bytes", 1<<20)

	// Bind environment variables with CONVERGE_ prefix
	v.SetEnvPrefix("CONVERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Tokens must be environment-only per 12-factor principles
	if err := validateNoSecretsInConfig(v); err != nil {
		return nil, err
	}

	cfg := &ConsoleAPIConfig{
		Host:            v.GetString("console_api.host"),
		Port:            v.GetInt("console_api.port"),
		RequestTimeout:  v.GetDuration("console_api.request_timeout"),
		ShutdownTimeout: v.GetDuration("console_api.shutdown_timeout"),
		MaxBodyBytes:    v.GetInt64("console_api.max_body_bytes"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks port range and positive timeouts and body limit.
func validateConfig(cfg *ConsoleAPIConfig) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", cfg.MaxBodyBytes)
	}
	return nil
}

// validateNoSecretsInConfig enforces environment-only tokens.
func validateNoSecretsInConfig(v *viper.Viper) error {
	if v.IsSet("api_token") || v.IsSet("console_api.api_token") {
		return fmt.Errorf("API tokens not allowed in config files (use CONVERGE_API_TOKEN environment variable)")
	}
	return nil
}
