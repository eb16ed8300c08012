package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.DBPath != "todod.db" || cfg.DigestTime != "08:00" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.ReminderBuffer != 64 || cfg.ReminderRefreshMinutes != 5 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.ReminderRefreshInterval() != 5*time.Minute {
		t.Fatalf("unexpected refresh interval: %v", cfg.ReminderRefreshInterval())
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todod.toml")
	content := `
db_path = "/var/lib/todod/tasks.db"
digest_time = "07:15"
reminder_buffer = 128
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/var/lib/todod/tasks.db" || cfg.DigestTime != "07:15" || cfg.ReminderBuffer != 128 {
		t.Fatalf("file values not applied: %#v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.ReminderRefreshMinutes != 5 {
		t.Fatalf("default lost: %#v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todod.toml")
	if err := os.WriteFile(path, []byte(`digest_time = "07:15"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODOD_DIGEST_TIME", "21:45")
	t.Setenv("TODOD_REMINDER_BUFFER", "256")
	t.Setenv("TODOD_REMINDER_REFRESH_MINUTES", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DigestTime != "21:45" || cfg.ReminderBuffer != 256 {
		t.Fatalf("env overrides not applied: %#v", cfg)
	}
	if cfg.ReminderRefreshMinutes != 5 {
		t.Fatalf("malformed env value must be ignored: %#v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TODOD_DB_PATH", " ")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for blank db path")
	}
}

func TestLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("default location: %v %v", loc, err)
	}

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("utc location: %v %v", loc, err)
	}

	cfg.Timezone = "Not/AZone"
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
