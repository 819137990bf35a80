package weaviate

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"portfolio/backend/features/ingest"
	"portfolio/backend/internal/retrieval"
)

// chunkNamespace seeds the deterministic record ids. Re-ingesting identical
// content overwrites the same object instead of accumulating duplicates.
var chunkNamespace = uuid.MustParse("8e7f9a35-2c41-4d34-9b7a-5f0f4a1d6c2e")

type Store struct {
	client *weaviate.Client
	class  string
}

func NewStore(client *weaviate.Client, class string) *Store {
	return &Store{client: client, class: class}
}

// ChunkID derives a stable UUID from the chunk's identity so upserts are
// idempotent across ingestion runs.
func ChunkID(chunk ingest.Chunk) string {
	key := fmt.Sprintf("%s|%s|%s", chunk.Source, chunk.Type, chunk.Text)
	return uuid.NewSHA1(chunkNamespace, []byte(key)).String()
}

// StoreChunk upserts via the batch importer: unlike an object create, a
// batch import replaces an existing object with the same id, so re-ingesting
// unchanged content overwrites instead of failing.
func (s *Store) StoreChunk(ctx context.Context, chunk ingest.Chunk) error {
	obj := &models.Object{
		Class: s.class,
		ID:    strfmt.UUID(ChunkID(chunk)),
		Properties: map[string]interface{}{
			"content":    chunk.Text,
			"source":     chunk.Source,
			"type":       chunk.Type,
			"chunkIndex": chunk.Index,
		},
		Vector: models.C11yVector(chunk.Vector),
	}

	res, err := s.client.Batch().ObjectsBatcher().WithObjects(obj).Do(ctx)
	if err != nil {
		return err
	}
	for _, r := range res {
		if r.Result == nil || r.Result.Errors == nil {
			continue
		}
		for _, e := range r.Result.Errors.Error {
			if e != nil {
				return fmt.Errorf("batch store: %s", e.Message)
			}
		}
	}
	return nil
}

// Search runs a nearVector lookup and returns the top results with their
// stored metadata. No similarity cutoff is applied.
func (s *Store) Search(ctx context.Context, vector []float32, limit int) ([]retrieval.SearchResult, error) {
	nearVector := s.client.GraphQL().NearVectorArgBuilder().WithVector(vector)

	fields := []graphql.Field{
		{Name: "content"},
		{Name: "source"},
		{Name: "type"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "certainty"}}},
	}

	res, err := s.client.GraphQL().Get().
		WithClassName(s.class).
		WithNearVector(nearVector).
		WithLimit(limit).
		WithFields(fields...).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %v", res.Errors)
	}

	var results []retrieval.SearchResult
	data, ok := res.Data["Get"].(map[string]interface{})
	if !ok {
		return results, nil
	}
	items, ok := data[s.class].([]interface{})
	if !ok {
		return results, nil
	}

	for _, item := range items {
		props, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		var result retrieval.SearchResult
		if content, ok := props["content"].(string); ok {
			result.Content = content
		}
		if source, ok := props["source"].(string); ok {
			result.Source = source
		}
		if chunkType, ok := props["type"].(string); ok {
			result.Type = chunkType
		}
		if additional, ok := props["_additional"].(map[string]interface{}); ok {
			if certainty, ok := additional["certainty"].(float64); ok {
				result.Score = float32(certainty)
			}
		}
		results = append(results, result)
	}

	return results, nil
}

// CountChunks returns the number of objects in the index via a meta count
// aggregate.
func (s *Store) CountChunks(ctx context.Context) (int, error) {
	res, err := s.client.GraphQL().Aggregate().
		WithClassName(s.class).
		WithFields(graphql.Field{Name: "meta", Fields: []graphql.Field{{Name: "count"}}}).
		Do(ctx)
	if err != nil {
		return 0, err
	}
	if len(res.Errors) > 0 {
		return 0, fmt.Errorf("graphql error: %v", res.Errors)
	}

	data, ok := res.Data["Aggregate"].(map[string]interface{})
	if !ok {
		return 0, nil
	}
	items, ok := data[s.class].([]interface{})
	if !ok || len(items) == 0 {
		return 0, nil
	}
	props, ok := items[0].(map[string]interface{})
	if !ok {
		return 0, nil
	}
	meta, ok := props["meta"].(map[string]interface{})
	if !ok {
		return 0, nil
	}
	count, _ := meta["count"].(float64)
	return int(count), nil
}
