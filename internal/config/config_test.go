package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.ServerPort)
	assert.Equal(t, "PortfolioChunk", cfg.IndexClass)
	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.Equal(t, 3, cfg.RetrieveK)
	assert.Equal(t, config.StrategyRetrieval, cfg.ContextStrategy)
	assert.Equal(t, config.PolicyFallback, cfg.ExhaustedPolicy)
	assert.True(t, cfg.KeywordShortcut)
	assert.Equal(t, "HuggingFaceH4/zephyr-7b-beta", cfg.HFModels[0])
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-1")
	t.Setenv("GEMINI_MODELS", "gemini-2.0-flash")
	t.Setenv("CONTEXT_STRATEGY", "static")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.GeminiConfigured())
	assert.Equal(t, []string{"gemini-2.0-flash"}, cfg.GeminiModels)
	assert.Equal(t, config.StrategyStatic, cfg.ContextStrategy)
	assert.Equal(t, "gemini-2.0-flash", cfg.PrimaryModel())
}

func TestLoad_FromEnvFile(t *testing.T) {
	content := []byte("VECTOR_INDEX=TestChunk")
	require.NoError(t, os.WriteFile(".env", content, 0o644))
	defer os.Remove(".env")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "TestChunk", cfg.IndexClass)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Bad Strategy", map[string]string{"CONTEXT_STRATEGY": "hybrid"}},
		{"Bad Policy", map[string]string{"EXHAUSTED_POLICY": "retry"}},
		{"Overlap Too Large", map[string]string{"CHUNK_SIZE": "100", "CHUNK_OVERLAP": "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

func TestLoad_MissingCredentialsNotFatal(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.GeminiConfigured())
	assert.False(t, cfg.HFConfigured())
	assert.Equal(t, "HuggingFaceH4/zephyr-7b-beta", cfg.PrimaryModel())
}
