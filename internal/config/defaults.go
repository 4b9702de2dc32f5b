package config

import "time"

// DefaultModel is the model identifier passed through to the proxy.
const DefaultModel = "mistralai/mistral-7b-instruct:free"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".researchdesk.yml"

// knownModels are offered by the init wizard. The proxy decides what is
// actually served; any identifier is accepted in the config file.
var knownModels = []string{
	DefaultModel,
	"meta-llama/llama-3.1-8b-instruct:free",
	"google/gemma-2-9b-it:free",
	"openai/gpt-4o-mini",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProxyURL:          "http://localhost:7860",
		Model:             DefaultModel,
		ListenPort:        8080,
		HomeView:          "dashboard",
		Timeout:           0,
		MaxRetries:        0,
		RequestsPerMinute: 0,
		Cache: CacheConfig{
			Size: 128,
			TTL:  24 * time.Hour,
		},
		AnalysisLimit: 5,
	}
}
