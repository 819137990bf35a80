package retrieval

import (
	"context"
	"time"

	"portfolio/backend/internal/middleware"
)

// SearchResult is one retrieved chunk with its stored metadata.
type SearchResult struct {
	Content string  `json:"content"`
	Source  string  `json:"source"`
	Type    string  `json:"type"`
	Score   float32 `json:"score"`
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type VectorStore interface {
	Search(ctx context.Context, vector []float32, limit int) ([]SearchResult, error)
}

// Service embeds a question and fetches its nearest stored chunks. The
// embedder must be the same one used at ingestion; a mismatched embedding
// space returns plausible-looking but irrelevant results with no error.
type Service struct {
	embedder Embedder
	store    VectorStore
	logger   *QueryLogger
}

func NewService(e Embedder, s VectorStore, l *QueryLogger) *Service {
	return &Service{embedder: e, store: s, logger: l}
}

// Retrieve returns at most k results ordered by similarity. No minimum-score
// threshold: low-relevance matches are returned and left to the model.
func (s *Service) Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error) {
	start := time.Now()

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	results, err := s.store.Search(ctx, vec, k)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Log(QueryLogEntry{
			Query:         query,
			NumResults:    len(results),
			Duration:      time.Since(start),
			CorrelationID: middleware.GetCorrelationID(ctx),
		})
	}
	return results, nil
}
