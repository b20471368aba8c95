package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// Config holds runtime settings for the fittrack binary.
type Config struct {
	DBPath         string                `toml:"db_path"`
	LogFile        string                `toml:"log_file"`
	LogLevel       string                `toml:"log_level"`
	WeeklyGoal     int                   `toml:"weekly_goal"`
	ProgressPolicy domain.ProgressPolicy `toml:"progress_policy"`
	ChatDelayMs    int                   `toml:"chat_delay_ms"`
}

// DefaultConfig places everything under ~/.fittrack. Home is resolved
// by the caller so tests can point it anywhere.
func DefaultConfig(home string) Config {
	dir := filepath.Join(home, ".fittrack")
	return Config{
		DBPath:         filepath.Join(dir, "fittrack.db"),
		LogFile:        filepath.Join(dir, "fittrack.log"),
		LogLevel:       "info",
		WeeklyGoal:     1000,
		ProgressPolicy: domain.ProgressVolume,
		ChatDelayMs:    1000,
	}
}

// ChatDelay returns the assistant reply delay.
func (c Config) ChatDelay() time.Duration {
	return time.Duration(c.ChatDelayMs) * time.Millisecond
}

// Load builds the config from defaults, then the TOML file named by
// FITTRACK_CONFIG (or ~/.fittrack/config.toml when it exists), then
// environment overrides. Invalid env values are ignored; a config file
// that exists but cannot be parsed is an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolving home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path, explicit := os.LookupEnv("FITTRACK_CONFIG")
	if !explicit || path == "" {
		path = filepath.Join(home, ".fittrack", "config.toml")
	}
	if err := loadFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string, required bool) error {
	file := *cfg
	_, err := toml.DecodeFile(path, &file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if file.WeeklyGoal <= 0 {
		file.WeeklyGoal = cfg.WeeklyGoal
	}
	if !domain.ValidProgressPolicies[string(file.ProgressPolicy)] {
		file.ProgressPolicy = cfg.ProgressPolicy
	}
	if file.ChatDelayMs < 0 {
		file.ChatDelayMs = cfg.ChatDelayMs
	}
	*cfg = file
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FITTRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FITTRACK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("FITTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("FITTRACK_WEEKLY_GOAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WeeklyGoal = n
		}
	}
	if v := os.Getenv("FITTRACK_PROGRESS_POLICY"); v != "" {
		v = strings.ToLower(v)
		if domain.ValidProgressPolicies[v] {
			cfg.ProgressPolicy = domain.ProgressPolicy(v)
		}
	}
	if v := os.Getenv("FITTRACK_CHAT_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ChatDelayMs = n
		}
	}
}
