package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Context strategies for building the chat system prompt.
const (
	StrategyStatic    = "static"
	StrategyRetrieval = "retrieval"
)

// Terminal policies when every provider in the chain fails.
const (
	PolicyFallback = "fallback"
	PolicyError    = "error"
)

type Config struct {
	ServerPort int `envconfig:"SERVER_PORT" default:"8000"`

	// GitHub
	GitHubToken string `envconfig:"GITHUB_TOKEN"`
	RosterPath  string `envconfig:"ROSTER_PATH"`

	// Vector index
	WeaviateHost   string `envconfig:"WEAVIATE_HOST" default:"localhost:8080"`
	WeaviateScheme string `envconfig:"WEAVIATE_SCHEME" default:"http"`
	IndexClass     string `envconfig:"VECTOR_INDEX" default:"PortfolioChunk"`

	// Providers, tried in order: Gemini variants first, then HF-hosted.
	GeminiAPIKey string   `envconfig:"GEMINI_API_KEY"`
	GeminiModels []string `envconfig:"GEMINI_MODELS" default:"gemini-1.5-flash,gemini-1.5-flash-8b"`
	HFToken      string   `envconfig:"HUGGINGFACEHUB_API_TOKEN"`
	HFModels     []string `envconfig:"HF_MODELS" default:"HuggingFaceH4/zephyr-7b-beta,mistralai/Mistral-7B-Instruct-v0.2,meta-llama/Llama-3.2-3B-Instruct"`

	// Pipeline knobs
	ChunkSize       int    `envconfig:"CHUNK_SIZE" default:"500"`
	ChunkOverlap    int    `envconfig:"CHUNK_OVERLAP" default:"50"`
	RetrieveK       int    `envconfig:"RETRIEVE_K" default:"3"`
	ContextStrategy string `envconfig:"CONTEXT_STRATEGY" default:"retrieval"`
	ExhaustedPolicy string `envconfig:"EXHAUSTED_POLICY" default:"fallback"`
	KeywordShortcut bool   `envconfig:"KEYWORD_SHORTCUT" default:"true"`

	QueryLogPath string `envconfig:"QUERY_LOG_PATH" default:"data/logs/query.log"`

	// Bootstrap resilience
	BootstrapRetryAttempts     int `envconfig:"BOOTSTRAP_RETRY_ATTEMPTS" default:"10"`
	BootstrapRetryDelaySeconds int `envconfig:"BOOTSTRAP_RETRY_DELAY_SECONDS" default:"2"`
}

// Load reads .env files the way the deployment lays them out, then resolves
// the environment. Provider credentials are deliberately not validated here:
// a missing key shows up as a status flag and a runtime failure, not a
// startup crash.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load("../.env.local")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.ContextStrategy {
	case StrategyStatic, StrategyRetrieval:
	default:
		return fmt.Errorf("%w: CONTEXT_STRATEGY=%q", ErrInvalidValue, c.ContextStrategy)
	}

	switch c.ExhaustedPolicy {
	case PolicyFallback, PolicyError:
	default:
		return fmt.Errorf("%w: EXHAUSTED_POLICY=%q", ErrInvalidValue, c.ExhaustedPolicy)
	}

	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("%w: CHUNK_OVERLAP must be smaller than CHUNK_SIZE", ErrInvalidValue)
	}
	return nil
}

// GeminiConfigured reports whether the primary provider family has
// credentials.
func (c *Config) GeminiConfigured() bool { return c.GeminiAPIKey != "" }

// HFConfigured reports whether the HuggingFace fallback family has
// credentials.
func (c *Config) HFConfigured() bool { return c.HFToken != "" }

// PrimaryModel is the first model in the configured chain, used in status
// payloads.
func (c *Config) PrimaryModel() string {
	if c.GeminiConfigured() && len(c.GeminiModels) > 0 {
		return c.GeminiModels[0]
	}
	if len(c.HFModels) > 0 {
		return c.HFModels[0]
	}
	return ""
}
