// Package config provides configuration management for Converge services.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ConsoleAPIConfig holds configuration for the HTTP console API service.
type ConsoleAPIConfig struct {
	Host            string
	Port            int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// DefaultConsoleAPIConfig returns configuration with default values.
func DefaultConsoleAPIConfig() *ConsoleAPIConfig {
	return &ConsoleAPIConfig{
		Host:            "0.0.0.0",
		Port:            8080,
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// minTokenLength rejects tokens short enough to brute force.
const minTokenLength = 32

// APITokens extracts API tokens from environment variables.
// Supports CONVERGE_API_TOKEN (single) and CONVERGE_API_TOKEN_N (rotation:
// old and new tokens stay valid during migration). Tokens are
// environment-only; the config file loader rejects them.
func APITokens() ([]string, error) {
	var tokens []string
	seen := make(map[string]bool)

	add := func(envKey, value string) error {
		token := strings.TrimSpace(value)
		if len(token) < minTokenLength {
			return fmt.Errorf("%s: token must be at least %d characters, got %d", envKey, minTokenLength, len(token))
		}
		if seen[token] {
			return fmt.Errorf("duplicate token found in environment variables (check CONVERGE_API_TOKEN and CONVERGE_API_TOKEN_* for conflicts)")
		}
		seen[token] = true
		tokens = append(tokens, token)
		return nil
	}

	if val := os.Getenv("CONVERGE_API_TOKEN"); val != "" {
		if err := add("CONVERGE_API_TOKEN", val); err != nil {
			return nil, err
		}
	}

	for i := 1; ; i++ {
		key := fmt.Sprintf("CONVERGE_API_TOKEN_%d", i)
		val := os.Getenv(key)
		if val == "" {
			break
		}
		if err := add(key, val); err != nil {
			return nil, err
		}
	}

	return tokens, nil
}
