package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"portfolio/backend/features/chat"
	"portfolio/backend/features/ingest"
	"portfolio/backend/features/stats"
	"portfolio/backend/internal/config"
	"portfolio/backend/internal/github"
	"portfolio/backend/internal/middleware"
	"portfolio/backend/internal/retrieval"
	"portfolio/backend/internal/roster"
)

// Embedder produces vectors for both ingestion and query-time retrieval.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorStore is the chunk index shared by ingestion, retrieval and stats.
type VectorStore interface {
	StoreChunk(ctx context.Context, chunk ingest.Chunk) error
	Search(ctx context.Context, vector []float32, limit int) ([]retrieval.SearchResult, error)
	CountChunks(ctx context.Context) (int, error)
}

type App struct {
	Handler       http.Handler
	IngestService *ingest.Service
	ChatService   *chat.Service

	port int
}

// New wires services and routes from pre-built external dependencies.
// embedder may be nil when no Gemini key is configured; ingestion and
// retrieval then report a configuration error at call time and chat degrades
// to the static persona.
func New(cfg *config.Config, embedder Embedder, vecStore VectorStore, providers []chat.Provider) (*App, error) {
	if embedder == nil {
		embedder = noEmbedder{}
	}

	// Feature: Ingest
	fetcher := github.NewClient(cfg.GitHubToken)

	rosterPaths := roster.DefaultPaths()
	if cfg.RosterPath != "" {
		rosterPaths = []string{cfg.RosterPath}
	}

	ingestService := ingest.NewService(fetcher, embedder, vecStore, rosterPaths, cfg.ChunkSize, cfg.ChunkOverlap)
	ingestHandler := ingest.NewHandler(ingestService)

	// Feature: Retrieval
	queryLogger, err := retrieval.NewFileQueryLogger(cfg.QueryLogPath)
	if err != nil {
		slog.Warn("failed to create query logger, falling back to stdout", "error", err)
		queryLogger = retrieval.NewQueryLogger(os.Stdout)
	}
	retrievalService := retrieval.NewService(embedder, vecStore, queryLogger)

	// Feature: Chat
	chatService := chat.NewService(providers, retrievalService, chat.Options{
		Strategy:        cfg.ContextStrategy,
		ExhaustedPolicy: cfg.ExhaustedPolicy,
		KeywordShortcut: cfg.KeywordShortcut,
		RetrieveK:       cfg.RetrieveK,
	})
	chatHandler := chat.NewHandler(chatService, chat.Status{
		GeminiConfigured: cfg.GeminiConfigured(),
		HFConfigured:     cfg.HFConfigured(),
		PrimaryModel:     cfg.PrimaryModel(),
	})

	// Feature: Stats
	statsHandler := stats.NewHandler(vecStore, rosterPaths, len(providers))

	// Routes
	mux := http.NewServeMux()
	wrap := func(h http.HandlerFunc) http.Handler {
		return middleware.CorrelationID(middleware.CORS(h))
	}

	mux.Handle("GET /{$}", wrap(chatHandler.Root))
	mux.Handle("POST /api/chat", wrap(chatHandler.Chat))
	// Browser preflight never reaches the handler, CORS answers it.
	mux.Handle("OPTIONS /api/chat", wrap(chatHandler.Chat))
	mux.Handle("GET /api/ingest", wrap(ingestHandler.Run))
	mux.Handle("GET /test-hf", wrap(chatHandler.TestProviders))
	mux.Handle("GET /api/stats", wrap(statsHandler.GetStats))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return &App{
		Handler:       mux,
		IngestService: ingestService,
		ChatService:   chatService,
		port:          cfg.ServerPort,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.port),
		Handler: a.Handler,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("server starting", "port", a.port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// noEmbedder stands in when no Gemini key is configured. Callers see a
// configuration error instead of a nil dereference.
type noEmbedder struct{}

func (noEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("GEMINI_API_KEY not configured, embeddings unavailable")
}
