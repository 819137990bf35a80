package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio/backend/internal/app"
	"portfolio/backend/internal/config"
)

func TestBootstrap_Resilience_WeaviateDown(t *testing.T) {
	cfg := &config.Config{
		WeaviateHost:               "localhost:54322", // random port likely closed
		WeaviateScheme:             "http",
		IndexClass:                 "PortfolioChunk",
		BootstrapRetryAttempts:     1,
		BootstrapRetryDelaySeconds: 0,
	}

	start := time.Now()
	deps, err := app.Bootstrap(context.Background(), cfg)
	duration := time.Since(start)

	assert.Error(t, err)
	assert.Nil(t, deps)
	assert.Contains(t, err.Error(), "weaviate schema error")
	// attempts=1, delay=0: failure should be fast.
	assert.Less(t, duration, 5*time.Second)
}
