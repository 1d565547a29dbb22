package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAPITokens(t *testing.T) {
	os.Unsetenv("CONVERGE_API_TOKEN")
	os.Unsetenv("CONVERGE_API_TOKEN_1")
	os.Unsetenv("CONVERGE_API_TOKEN_2")

	longToken := "0123456789abcdef0123456789abcdef"
	otherToken := "fedcba9876543210fedcba9876543210"

	t.Run("no tokens configured", func(t *testing.T) {
		tokens, err := APITokens()
		if err != nil {
			t.Fatalf("APITokens failed: %v", err)
		}
		if len(tokens) != 0 {
			t.Errorf("expected 0 tokens, got %d", len(tokens))
		}
	})

	t.Run("single token", func(t *testing.T) {
		os.Setenv("CONVERGE_API_TOKEN", longToken)
		defer os.Unsetenv("CONVERGE_API_TOKEN")

		tokens, err := APITokens()
		if err != nil {
			t.Fatalf("APITokens failed: %v", err)
		}
		if len(tokens) != 1 || tokens[0] != longToken {
			t.Errorf("expected [%s], got %v", longToken, tokens)
		}
	})

	t.Run("numbered tokens for rotation", func(t *testing.T) {
		os.Setenv("CONVERGE_API_TOKEN_1", longToken)
		os.Setenv("CONVERGE_API_TOKEN_2", otherToken)
		defer os.Unsetenv("CONVERGE_API_TOKEN_1")
		defer os.Unsetenv("CONVERGE_API_TOKEN_2")

		tokens, err := APITokens()
		if err != nil {
			t.Fatalf("APITokens failed: %v", err)
		}
		if len(tokens) != 2 {
			t.Errorf("expected 2 tokens, got %d", len(tokens))
		}
	})

	t.Run("short token rejected", func(t *testing.T) {
		os.Setenv("CONVERGE_API_TOKEN", "tooshort")
		defer os.Unsetenv("CONVERGE_API_TOKEN")

		if _, err := APITokens(); err == nil {
			t.Error("expected error for short token")
		}
	})

	t.Run("duplicate tokens rejected", func(t *testing.T) {
		os.Setenv("CONVERGE_API_TOKEN_1", longToken)
		os.Setenv("CONVERGE_API_TOKEN_2", longToken)
		defer os.Unsetenv("CONVERGE_API_TOKEN_1")
		defer os.Unsetenv("CONVERGE_API_TOKEN_2")

		if _, err := APITokens(); err == nil {
			t.Error("expected error for duplicate tokens")
		}
	})
}

func TestLoadConsoleAPIConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := LoadConsoleAPIConfig("")
		if err != nil {
			t.Fatalf("LoadConsoleAPIConfig failed: %v", err)
		}
		if cfg.Host != "0.0.0.0" || cfg.Port != 8080 {
			t.Errorf("defaults = %s:%d, expected 0.0.0.0:8080", cfg.Host, cfg.Port)
		}
		if cfg.RequestTimeout != 15*time.Second {
			t.Errorf("RequestTimeout = %v, expected 15s", cfg.RequestTimeout)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "converge.yaml")
		content := "console_api:\n  host: 127.0.0.1\n  port: 9090\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadConsoleAPIConfig(path)
		if err != nil {
			t.Fatalf("LoadConsoleAPIConfig failed: %v", err)
		}
		if cfg.Host != "127.0.0.1" || cfg.Port != 9090 {
			t.Errorf("config = %s:%d, expected 127.0.0.1:9090", cfg.Host, cfg.Port)
		}
	})

	t.Run("tokens in config files rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "converge.yaml")
		content := "console_api:\n  api_token: sneaky\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := LoadConsoleAPIConfig(path); err == nil {
			t.Error("expected error for token in config file")
		}
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "converge.yaml")
		content := "console_api:\n  port: 70000\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := LoadConsoleAPIConfig(path); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := LoadConsoleAPIConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
