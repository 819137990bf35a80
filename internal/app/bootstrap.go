package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	"portfolio/backend/features/chat"
	"portfolio/backend/internal/adapter/gemini"
	"portfolio/backend/internal/adapter/huggingface"
	wstore "portfolio/backend/internal/adapter/weaviate"
	"portfolio/backend/internal/config"
	"portfolio/backend/internal/vector"
)

type Dependencies struct {
	Weaviate    *weaviate.Client
	VectorStore *wstore.Store
	Embedder    Embedder // nil when GEMINI_API_KEY is unset
	Providers   []chat.Provider
}

// Bootstrap builds the external dependencies: the Weaviate client with its
// schema ensured, the embedding client, and the generation provider chain.
// Missing provider credentials are not fatal; an unreachable index is.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	wCfg := weaviate.Config{Host: cfg.WeaviateHost, Scheme: cfg.WeaviateScheme}
	wClient, err := weaviate.NewClient(wCfg)
	if err != nil {
		return nil, fmt.Errorf("weaviate client error: %w", err)
	}

	retryDelay := time.Duration(cfg.BootstrapRetryDelaySeconds) * time.Second
	schemaClient := vector.NewWeaviateClientAdapter(wClient)
	if err := EnsureSchemaWithRetry(ctx, schemaClient, cfg.IndexClass, cfg.BootstrapRetryAttempts, retryDelay); err != nil {
		return nil, fmt.Errorf("weaviate schema error: %w", err)
	}

	deps := &Dependencies{
		Weaviate:    wClient,
		VectorStore: wstore.NewStore(wClient, cfg.IndexClass),
	}

	if cfg.GeminiConfigured() {
		embedder, err := gemini.NewEmbedder(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("gemini embedder error: %w", err)
		}
		deps.Embedder = embedder
	} else {
		slog.Warn("GEMINI_API_KEY not set, ingestion and retrieval disabled")
	}

	deps.Providers = BuildProviders(ctx, cfg)
	if len(deps.Providers) == 0 {
		slog.Warn("no generation providers configured, chat will use canned fallbacks")
	}

	return deps, nil
}

// BuildProviders assembles the fallback chain in priority order: Gemini
// model variants first, then the HuggingFace-hosted models. A provider that
// fails to initialize is skipped, not fatal.
func BuildProviders(ctx context.Context, cfg *config.Config) []chat.Provider {
	var providers []chat.Provider

	if cfg.GeminiConfigured() {
		for _, model := range cfg.GeminiModels {
			gen, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, model)
			if err != nil {
				slog.Warn("failed to init gemini provider", "model", model, "error", err)
				continue
			}
			providers = append(providers, gen)
		}
	}
	if cfg.HFConfigured() {
		for _, model := range cfg.HFModels {
			providers = append(providers, huggingface.NewClient(cfg.HFToken, model))
		}
	}

	return providers
}

// EnsureSchemaWithRetry keeps trying the schema check until it succeeds or
// attempts run out. Weaviate commonly comes up after the backend in compose
// deployments.
func EnsureSchemaWithRetry(ctx context.Context, client vector.SchemaClient, className string, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = vector.EnsureSchema(ctx, client, className); err == nil {
			return nil
		}
		if i < attempts-1 {
			slog.Warn("failed to ensure weaviate schema, retrying...", "attempt", i+1, "error", err)
			time.Sleep(delay)
		}
	}
	return err
}
