package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_NAME", "collegehub_test")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want default 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "collegehub_test" {
		t.Errorf("dbname = %q, want env override", cfg.Database.DBName)
	}
	if cfg.Database.MaxOpenConns != 7 {
		t.Errorf("maxOpenConns = %d, want 7", cfg.Database.MaxOpenConns)
	}
	if cfg.AccessTokenExp() != 30*time.Minute {
		t.Errorf("access token exp = %v, want 30m", cfg.AccessTokenExp())
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "9090"
jwt:
  access_token_expiration: "45m"
gemini:
  model: "gemini-1.5-pro"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.AccessTokenExp() != 45*time.Minute {
		t.Errorf("access token exp = %v, want 45m", cfg.AccessTokenExp())
	}
	if cfg.Gemini.Model != "gemini-1.5-pro" {
		t.Errorf("gemini model = %q", cfg.Gemini.Model)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error when JWT secret is missing")
	}
}

func TestConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "portal"

	want := "postgres://app:pw@localhost:5432/portal?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("conn string = %q, want %q", got, want)
	}
}
