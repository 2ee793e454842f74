package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "5001" {
		t.Fatalf("expected default port 5001, got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverMongo {
		t.Fatalf("expected default driver mongo, got %q", cfg.Database.Driver)
	}
	if cfg.Database.MongoURI != "mongodb://localhost:27017/campus_survey" {
		t.Fatalf("unexpected default mongo uri %q", cfg.Database.MongoURI)
	}
	if cfg.Address() != ":5001" {
		t.Fatalf("unexpected address %q", cfg.Address())
	}
	if cfg.ConnectTimeout() != 10*time.Second {
		t.Fatalf("unexpected connect timeout %v", cfg.ConnectTimeout())
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("server:\n  port: \"6000\"\n  mode: production\nlogging:\n  level: debug\n  format: text\n")
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "7000")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/surveys")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7000" {
		t.Fatalf("env should override file port, got %q", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production mode from file")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Database.MongoURI != "mongodb://db:27017/surveys" {
		t.Fatalf("unexpected mongo uri %q", cfg.Database.MongoURI)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 2 || cfg.Server.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.Server.CORSAllowedOrigins)
	}
	if !cfg.Database.SeedDemoData {
		t.Fatalf("expected seeding enabled")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "cassandra"}},
		{name: "bad timeout", env: map[string]string{"DB_CONNECT_TIMEOUT": "soon"}},
		{name: "bad log format", env: map[string]string{"LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
