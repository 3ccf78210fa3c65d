// Package config loads postwizard settings. Defaults are overridden by an
// optional YAML file, which is in turn overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the campaign backend used when nothing else is set.
const DefaultAPIURL = "http://localhost:4000/v1"

// Config holds runtime settings.
type Config struct {
	APIURL       string        `yaml:"api_url" env:"POSTWIZARD_API_URL"`
	APIToken     string        `yaml:"api_token" env:"POSTWIZARD_API_TOKEN"`
	HTTPTimeout  time.Duration `yaml:"http_timeout" env:"POSTWIZARD_HTTP_TIMEOUT"`
	LogFile      string        `yaml:"log_file" env:"POSTWIZARD_LOG_FILE"`
	LogVerbosity int           `yaml:"log_verbosity" env:"POSTWIZARD_LOG_VERBOSITY"`
	Trace        TraceConfig   `yaml:"trace"`
}

// TraceConfig controls OTLP export. An empty endpoint disables tracing.
type TraceConfig struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL: DefaultAPIURL,
		Trace:  TraceConfig{ServiceName: "postwizard"},
	}
}

// Load builds the configuration. path may be empty; a missing file at an
// explicitly given path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: %s not found", path)
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the client cannot work with.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("config: api_url is empty")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: http_timeout must not be negative, got %s", c.HTTPTimeout)
	}
	if c.LogVerbosity < 0 {
		return fmt.Errorf("config: log_verbosity must not be negative, got %d", c.LogVerbosity)
	}
	return nil
}
