package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the config file looked up in the working directory.
const FileName = ".secretscan.yaml"

// Environment variables that override the config file.
const (
	EnvExitZero = "SECRETSCAN_EXIT_ZERO"
	EnvWorkers  = "SECRETSCAN_WORKERS"
	EnvFormat   = "SECRETSCAN_FORMAT"
)

// Config holds scan settings. The zero value of each field means "not set".
type Config struct {
	ExitZero bool   `yaml:"exit_zero"`
	Workers  int    `yaml:"workers"`
	Format   string `yaml:"format"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers: secretscan.DefaultWorkers,
		Format:  "text",
	}
}

// Load reads the YAML config at path. Fields missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", secretscan.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromDir reads FileName from dir.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// ApplyEnv overrides fields from SECRETSCAN_* variables found by lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvExitZero); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", secretscan.ErrInvalidConfig, EnvExitZero, v)
		}
		c.ExitZero = b
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", secretscan.ErrInvalidConfig, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > secretscan.MaxWorkers {
		return fmt.Errorf("%w: workers must be between 1 and %d, got %d",
			secretscan.ErrInvalidConfig, secretscan.MaxWorkers, c.Workers)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format must be text or json, got %q", secretscan.ErrInvalidConfig, c.Format)
	}
	return nil
}
