package config

import "time"

// Config is the top-level researchdesk configuration, corresponding to .researchdesk.yml.
type Config struct {
	// ProxyURL is the origin of the completion proxy. Requests go to
	// ProxyURL + /api/chat/completions.
	ProxyURL          string        `yaml:"proxy_url" koanf:"proxy_url"`
	Model             string        `yaml:"model" koanf:"model"`
	ListenPort        int           `yaml:"listen_port" koanf:"listen_port"`
	HomeView          string        `yaml:"home_view" koanf:"home_view"`
	Timeout           time.Duration `yaml:"timeout" koanf:"timeout"`
	MaxRetries        int           `yaml:"max_retries" koanf:"max_retries"`
	RequestsPerMinute int           `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	Cache             CacheConfig   `yaml:"cache" koanf:"cache"`
	AnalysisLimit     int           `yaml:"analysis_limit" koanf:"analysis_limit"`
	AllowAllOrigins   bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// CacheConfig controls the in-memory article search cache.
type CacheConfig struct {
	Size int           `yaml:"size" koanf:"size"`
	TTL  time.Duration `yaml:"ttl" koanf:"ttl"`
}
