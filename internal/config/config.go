package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides (RESEARCHDESK_PROXY_URL, ...).
const EnvPrefix = "RESEARCHDESK_"

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (RESEARCHDESK_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// RESEARCHDESK_PROXY_URL -> proxy_url, RESEARCHDESK_CACHE__TTL -> cache.ttl.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ProxyURL == "" {
		return fmt.Errorf("proxy_url is required")
	}
	u, err := url.Parse(c.ProxyURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid proxy_url %q: must be an absolute http(s) URL", c.ProxyURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid proxy_url %q: scheme must be http or https", c.ProxyURL)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.HomeView == "" {
		return fmt.Errorf("home_view is required")
	}

	if c.ListenPort < 0 || c.ListenPort > 65535 {
		return fmt.Errorf("listen_port must be between 0 and 65535")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}

	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must be non-negative")
	}

	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be non-negative")
	}

	if c.AnalysisLimit < 1 {
		return fmt.Errorf("analysis_limit must be at least 1")
	}

	return nil
}
