package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio/backend/internal/github"
	"portfolio/backend/internal/roster"
	"portfolio/backend/internal/text"
)

type Fetcher interface {
	FetchPortfolio(ctx context.Context, username string, entries []roster.Entry) (*github.Result, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type ChunkStore interface {
	StoreChunk(ctx context.Context, chunk Chunk) error
}

// Service runs one ingestion pass: load the roster, fetch GitHub metadata in
// a single batched query, chunk, embed and upsert. The roster is re-read on
// every run so edits to the descriptor don't need a restart.
type Service struct {
	fetcher     Fetcher
	embedder    Embedder
	store       ChunkStore
	rosterPaths []string

	chunkSize    int
	chunkOverlap int
}

func NewService(f Fetcher, e Embedder, s ChunkStore, rosterPaths []string, chunkSize, chunkOverlap int) *Service {
	if chunkSize <= 0 {
		chunkSize = text.DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = text.DefaultChunkOverlap
	}
	return &Service{
		fetcher:      f,
		embedder:     e,
		store:        s,
		rosterPaths:  rosterPaths,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Ingest returns the number of chunks written to the index.
func (s *Service) Ingest(ctx context.Context) (int, error) {
	cfg, err := roster.Load(s.rosterPaths...)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "fetching portfolio data", "username", cfg.GithubUsername, "roster_size", len(cfg.Roster))
	data, err := s.fetcher.FetchPortfolio(ctx, cfg.GithubUsername, cfg.Roster)
	if err != nil {
		return 0, err
	}

	chunks := BuildChunks(data, cfg.Roster, s.chunkSize, s.chunkOverlap)

	slog.InfoContext(ctx, "embedding chunks", "count", len(chunks))
	for i := range chunks {
		vec, err := s.embedder.Embed(ctx, chunks[i].Text)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		chunks[i].Vector = vec

		if err := s.store.StoreChunk(ctx, chunks[i]); err != nil {
			return 0, fmt.Errorf("store chunk %d: %w", i, err)
		}
	}

	return len(chunks), nil
}

// BuildChunks turns fetched portfolio data into index-ready chunks: one bio
// chunk for the profile, then the split description+readme text of each
// roster repository tagged with its repo name. Roster entries whose
// repository lookup returned nothing are skipped.
func BuildChunks(data *github.Result, entries []roster.Entry, chunkSize, chunkOverlap int) []Chunk {
	chunks := []Chunk{{
		Text:   fmt.Sprintf("Candidate: %s. Bio: %s", data.Profile.Name, data.Profile.Bio),
		Source: SourceProfile,
		Type:   TypeBio,
	}}

	for _, e := range entries {
		repo, ok := data.Repos[e.Position]
		if !ok {
			continue
		}

		full := fmt.Sprintf("Project: %s\nDesc: %s\nReadme: %s", e.DisplayName, repo.Description, repo.Readme)
		for i, piece := range text.Split(full, chunkSize, chunkOverlap) {
			chunks = append(chunks, Chunk{
				Text:   piece,
				Source: e.RepoName,
				Type:   TypeProject,
				Index:  i,
			})
		}
	}

	return chunks
}
