package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
token: " 123:abc "
base_url: "http://localhost:8081/bot"
timeout: 7
debug: true
failure_log:
  file: "logs/failures.log"
  max_size_mb: 10
  max_backups: 3
  max_age_days: 28
  sqlite: "failures.db"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(TokenEnv, "")
	cfg, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "123:abc" || cfg.BaseURL != "http://localhost:8081/bot" || !cfg.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout() != 7*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout())
	}
	file, ok := cfg.FailureLog.FileConfig()
	if !ok || file.Filename != "logs/failures.log" || file.MaxBackups != 3 || file.MaxAgeDays != 28 {
		t.Fatalf("unexpected file config: %+v", file)
	}
	if cfg.FailureLog.SQLite != "failures.db" {
		t.Fatalf("sqlite = %q", cfg.FailureLog.SQLite)
	}
}

func TestLoadEnvOverridesToken(t *testing.T) {
	t.Setenv(TokenEnv, "env:token")
	cfg, err := Load(writeConfig(t, "timeout: 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "env:token" {
		t.Fatalf("token = %q", cfg.Token)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(TokenEnv, "")
	tests := map[string]string{
		"missing token":    "timeout: 5\n",
		"negative timeout": "token: x\ntimeout: -1\n",
		"bad yaml":         "token: [x\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileConfigDisabled(t *testing.T) {
	cfg, err := Parse([]byte("token: x\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := cfg.FailureLog.FileConfig(); ok {
		t.Fatalf("file sink should be disabled")
	}
	if cfg.Timeout() != 0 {
		t.Fatalf("Timeout = %v", cfg.Timeout())
	}
}
