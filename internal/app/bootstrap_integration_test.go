package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/app"
	"portfolio/backend/internal/testutils"
	"portfolio/backend/internal/vector"
)

func TestBootstrap_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	suite := testutils.NewIntegrationSuite(t)
	suite.Setup()
	defer suite.Teardown()

	cfg := suite.AppConfig()

	deps, err := app.Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, deps)
	assert.NotNil(t, deps.Weaviate)
	assert.NotNil(t, deps.VectorStore)
	assert.Nil(t, deps.Embedder, "no gemini key in test config")
	assert.Empty(t, deps.Providers)

	// Schema ensure must be idempotent.
	schemaClient := vector.NewWeaviateClientAdapter(deps.Weaviate)
	err = vector.EnsureSchema(context.Background(), schemaClient, cfg.IndexClass)
	assert.NoError(t, err)

	exists, err := schemaClient.ClassExists(context.Background(), cfg.IndexClass)
	require.NoError(t, err)
	assert.True(t, exists)
}
