package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Stage token modes for PATCH /commission/{stage}/{id}.
const (
	StageTokenTarget  = "target"  // send the stage being entered
	StageTokenCurrent = "current" // send the stage being left
)

// EnvPrefix is the prefix for environment overrides (ATELIER_API_URL, ...).
const EnvPrefix = "ATELIER"

// Config represents the atelier client configuration.
type Config struct {
	APIURL     string        `mapstructure:"api_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Currency   string        `mapstructure:"currency"`
	StageToken string        `mapstructure:"stage_token"` // "target" or "current"
	DBPath     string        `mapstructure:"db_path"`     // empty means ~/.atelier/atelier.db
	Color      bool          `mapstructure:"color"`
}

// Defaults returns the configuration used when no file or environment override is present.
func Defaults() *Config {
	return &Config{
		APIURL:     "http://localhost:3000",
		Timeout:    30 * time.Second,
		Currency:   "PHP",
		StageToken: StageTokenTarget,
		Color:      true,
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("api_url", d.APIURL)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("currency", d.Currency)
	v.SetDefault("stage_token", d.StageToken)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("color", d.Color)
}

// LoadConfig reads configuration from path, or from config.yaml in DefaultDir when path is empty.
// Resolution order: defaults, then file, then ATELIER_* environment variables.
// A missing default file is not an error; a missing explicit file is.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that the rest of the client relies on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("api_url must be set")
	}
	if c.StageToken != StageTokenTarget && c.StageToken != StageTokenCurrent {
		return fmt.Errorf("stage_token must be %q or %q (got %q)", StageTokenTarget, StageTokenCurrent, c.StageToken)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// SaveConfig writes cfg as YAML to path, creating the parent directory.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.Set("api_url", cfg.APIURL)
	v.Set("timeout", cfg.Timeout.String())
	v.Set("currency", cfg.Currency)
	v.Set("stage_token", cfg.StageToken)
	v.Set("db_path", cfg.DBPath)
	v.Set("color", cfg.Color)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultDir returns ~/.atelier.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".atelier"), nil
}

// DefaultConfigPath returns ~/.atelier/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ResolveDBPath returns the configured database path, or ~/.atelier/atelier.db.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "atelier.db"), nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env") into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}
