package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings for todod. Values come from defaults,
// then an optional TOML file, then TODOD_* environment variables.
type Config struct {
	DBPath                 string `toml:"db_path"`
	Timezone               string `toml:"timezone"`
	DigestTime             string `toml:"digest_time"`
	ReminderBuffer         int    `toml:"reminder_buffer"`
	ReminderRefreshMinutes int    `toml:"reminder_refresh_minutes"`
}

func Default() Config {
	return Config{
		DBPath:                 "todod.db",
		Timezone:               "Local",
		DigestTime:             "08:00",
		ReminderBuffer:         64,
		ReminderRefreshMinutes: 5,
	}
}

// Load reads the optional TOML file at path (empty path skips the file) and
// applies environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)

	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("config: db_path must not be empty")
	}
	if cfg.ReminderBuffer <= 0 {
		return Config{}, fmt.Errorf("config: reminder_buffer must be positive")
	}
	if cfg.ReminderRefreshMinutes <= 0 {
		return Config{}, fmt.Errorf("config: reminder_refresh_minutes must be positive")
	}
	return cfg, nil
}

func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) ReminderRefreshInterval() time.Duration {
	return time.Duration(c.ReminderRefreshMinutes) * time.Minute
}

func applyEnv(cfg *Config) {
	if v, ok := getEnvString("TODOD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TODOD_TIMEZONE"); ok {
		cfg.Timezone = v
	}
	if v, ok := getEnvString("TODOD_DIGEST_TIME"); ok {
		cfg.DigestTime = v
	}
	if v, ok := getEnvInt("TODOD_REMINDER_BUFFER"); ok && v > 0 {
		cfg.ReminderBuffer = v
	}
	if v, ok := getEnvInt("TODOD_REMINDER_REFRESH_MINUTES"); ok && v > 0 {
		cfg.ReminderRefreshMinutes = v
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
