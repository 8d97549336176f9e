package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/recoverops/dca-console/internal/api"
)

// EnvBaseURL is the environment variable overriding the backend base URL.
const EnvBaseURL = "DCA_API_BASE_URL"

// Config captures persisted user preferences for the console.
type Config struct {
	Theme string `yaml:"theme"`

	// BaseURL is the analytics backend root, e.g. http://localhost:8000/api.
	BaseURL string `yaml:"base_url"`

	// RequestTimeoutSeconds bounds each backend request. Zero selects the
	// built-in default.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// Load reads configuration data from the provided path. If the file does
// not exist, a default configuration is returned without an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := ResolvePath(path)
	if err != nil {
		return cfg, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Default returns a usable configuration when no file exists yet.
func Default() Config {
	return Config{
		Theme:   "auto",
		BaseURL: api.DefaultBaseURL,
	}
}

// Validate checks that the configuration can drive the API client.
func Validate(cfg Config) error {
	if cfg.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must not be negative, got %d", cfg.RequestTimeoutSeconds)
	}
	if cfg.BaseURL == "" {
		return nil
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("parse base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https, got %q", cfg.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base_url is missing a host: %q", cfg.BaseURL)
	}
	return nil
}

// ResolveBaseURL picks the backend base URL with precedence: explicit
// override (flag), environment variable, config file, built-in default.
func ResolveBaseURL(override string, cfg Config) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		return env
	}
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return api.DefaultBaseURL
}

// RequestTimeout converts the configured timeout into a duration.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return api.DefaultTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DefaultPath returns the standard configuration path within the user's
// XDG config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "dca-console", "config.yaml"), nil
}

// ResolvePath returns path unchanged when set, the default path otherwise.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultPath()
}
