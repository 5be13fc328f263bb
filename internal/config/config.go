// Package config loads user defaults from ~/.gorcd/config.yaml, with
// overrides from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/params"
)

// Environment variables read by Load
const (
	EnvHome      = "GORCD_HOME"
	EnvLogLevel  = "GORCD_LOG_LEVEL"
	EnvLogFormat = "GORCD_LOG_FORMAT"
	EnvAuthor    = "GORCD_AUTHOR"
	EnvNoColor   = "GORCD_NO_COLOR"
)

// FileName is the config file inside Dir.
const FileName = "config.yaml"

// Config holds user defaults for new projects and CLI output
type Config struct {
	Author string                  `yaml:"author"`
	Grade  string                  `yaml:"grade"`
	Params params.DesignParameters `yaml:"params"`
	Log    LogConfig               `yaml:"log"`
	Color  bool                    `yaml:"color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in defaults
func Default() *Config {
	return &Config{
		Grade:  "C30/37",
		Params: params.Default(),
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Color: true,
	}
}

// Dir returns $GORCD_HOME, or ~/.gorcd when unset
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".gorcd"), nil
}

// LoadEnv reads .env files into the environment. Missing files are
// ignored; variables already set are kept.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the config file from Dir and applies environment overrides.
// A missing file gives the defaults.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile is Load with an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvAuthor); v != "" {
		c.Author = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvNoColor)); v != "" && v != "0" {
		c.Color = false
	}
}

// Validate checks the default grade and design parameters.
func (c *Config) Validate() error {
	if _, err := ec2.Grade(c.Grade); err != nil {
		return fmt.Errorf("default grade: %w", err)
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("default params: %w", err)
	}
	return nil
}

// Save writes cfg to Dir, creating the directory if needed.
func Save(cfg *Config) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
