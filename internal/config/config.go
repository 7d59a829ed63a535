package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultPasswordAttempts = 3
	defaultLogLevel         = "warn"

	passwordEnv = "KPCLI_PASSWORD"
)

// Config holds runtime settings for the CLI. Values come from defaults,
// then the YAML file, then .env and the process environment. Password is
// read from KPCLI_PASSWORD only and is nil when that variable is unset.
type Config struct {
	KeyFile          string  `yaml:"keyfile" env:"KPCLI_KEYFILE"`
	Password         *string `yaml:"-"`
	PasswordAttempts int     `yaml:"password_attempts" env:"KPCLI_PASSWORD_ATTEMPTS"`
	LogLevel         string  `yaml:"log_level" env:"KPCLI_LOG_LEVEL"`
	AuditDB          string  `yaml:"audit_db" env:"KPCLI_AUDIT_DB"`
	PageSize         int     `yaml:"page_size" env:"KPCLI_PAGE_SIZE"`
}

func Defaults() Config {
	return Config{
		PasswordAttempts: defaultPasswordAttempts,
		LogLevel:         defaultLogLevel,
	}
}

// DefaultPath returns $KPCLI_CONFIG, or config.yaml under the user config
// directory.
func DefaultPath() string {
	if p := os.Getenv("KPCLI_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kpcli", "config.yaml")
}

// Load resolves the configuration. A missing YAML file is not an error.
// The result is not validated, so callers can apply overrides first.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}

	_ = godotenv.Load()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	// set but empty is an empty password, not a missing one
	if p, ok := os.LookupEnv(passwordEnv); ok {
		cfg.Password = &p
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.PasswordAttempts < 1 {
		return fmt.Errorf("password_attempts must be at least 1: %d", c.PasswordAttempts)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("page_size must not be negative: %d", c.PageSize)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// HasPassword reports whether a password was supplied without prompting.
// An empty password counts.
func (c Config) HasPassword() bool {
	return c.Password != nil
}
