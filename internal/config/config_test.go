package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
env: dev
storage_path: "postgres://localhost:5432/notepad?sslmode=disable"
token_secret: "file-secret"
token_ttl: 12h
http_server:
  address: "0.0.0.0:9090"
  timeout: 5s
  idle_timeout: 30s
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := Load()

	if cfg.Env != "dev" {
		t.Errorf("Expected env dev, got %q", cfg.Env)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Errorf("Expected token secret from file, got %q", cfg.TokenSecret)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Errorf("Expected token ttl 12h, got %v", cfg.TokenTTL)
	}
	if cfg.Address != "0.0.0.0:9090" {
		t.Errorf("Expected address 0.0.0.0:9090, got %q", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Second {
		t.Errorf("Expected idle timeout 30s, got %v", cfg.IdleTimeout)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
env: local
storage_path: "postgres://localhost:5432/notepad?sslmode=disable"
token_secret: "file-secret"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TOKEN_SECRET", "env-secret")

	cfg := Load()

	if cfg.TokenSecret != "env-secret" {
		t.Errorf("Expected env to win, got %q", cfg.TokenSecret)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default token ttl 24h, got %v", cfg.TokenTTL)
	}
}

func TestLoadFromEnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORAGE_PATH", "postgres://localhost:5432/notepad?sslmode=disable")
	t.Setenv("TOKEN_SECRET", "env-only-secret")
	t.Setenv("HTTP_ADDRESS", "localhost:9000")

	cfg := Load()

	if cfg.Env != "local" {
		t.Errorf("Expected default env local, got %q", cfg.Env)
	}
	if cfg.TokenSecret != "env-only-secret" {
		t.Errorf("Expected env secret, got %q", cfg.TokenSecret)
	}
	if cfg.Address != "localhost:9000" {
		t.Errorf("Expected address localhost:9000, got %q", cfg.Address)
	}
}
