package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"portfolio/backend/internal/config"
	"portfolio/backend/internal/retrieval"
)

// ErrProvidersExhausted marks the terminal state where every provider in the
// chain failed or returned a too-short answer.
var ErrProvidersExhausted = errors.New("all providers failed or returned too-short answers")

// Cleaned responses shorter than this are treated as a provider failure and
// the chain moves on.
const minAcceptableLen = 30

type Request struct {
	Message        string `json:"message"`
	ProjectContext string `json:"project_context,omitempty"`
}

type Response struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

// Provider is one hosted model in the fallback chain.
type Provider interface {
	Name() string
	Generate(ctx context.Context, system, user string) (string, error)
}

type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]retrieval.SearchResult, error)
}

type Options struct {
	Strategy        string // config.StrategyStatic or config.StrategyRetrieval
	ExhaustedPolicy string // config.PolicyFallback or config.PolicyError
	KeywordShortcut bool
	RetrieveK       int
}

// Service runs the answer pipeline: build context, optionally shortcut on
// keywords, then walk the provider chain in fixed priority order. Every
// request restarts the chain from the top; there is no circuit breaking.
type Service struct {
	providers []Provider
	retriever Retriever
	opts      Options
}

func NewService(providers []Provider, retriever Retriever, opts Options) *Service {
	if opts.RetrieveK <= 0 {
		opts.RetrieveK = 3
	}
	return &Service{providers: providers, retriever: retriever, opts: opts}
}

func (s *Service) Chat(ctx context.Context, req Request) (*Response, error) {
	hasProject := strings.TrimSpace(req.ProjectContext) != ""

	// Canned answers beat live inference on cost and latency for the domains
	// they cover. Project-context requests always go to a model: the whole
	// point there is a dynamic summary.
	if s.opts.KeywordShortcut && !hasProject {
		if answer, ok := KeywordAnswer(req.Message); ok {
			slog.InfoContext(ctx, "keyword shortcut hit", "model", "smart-fallback")
			return &Response{Response: answer, Model: "smart-fallback"}, nil
		}
	}

	system := s.buildContext(ctx, req)
	user := "Answer this question about " + ownerName + ": " + req.Message

	for _, p := range s.providers {
		raw, err := p.Generate(ctx, system, user)
		if err != nil {
			slog.WarnContext(ctx, "provider failed", "model", p.Name(), "error", err)
			continue
		}

		cleaned := CleanResponse(raw)
		if len(cleaned) <= minAcceptableLen {
			slog.WarnContext(ctx, "provider answer too short", "model", p.Name(), "length", len(cleaned))
			continue
		}

		slog.InfoContext(ctx, "provider answered", "model", p.Name())
		return &Response{Response: cleaned, Model: p.Name()}, nil
	}

	slog.WarnContext(ctx, "provider chain exhausted", "providers", len(s.providers), "policy", s.opts.ExhaustedPolicy)

	if s.opts.ExhaustedPolicy == config.PolicyError {
		return nil, ErrProvidersExhausted
	}
	if hasProject {
		return &Response{Response: projectFallback(req.ProjectContext), Model: "project-fallback"}, nil
	}
	return &Response{Response: FallbackAnswer(req.Message), Model: "fallback"}, nil
}

// Probe exercises the provider chain with a fixed message, reporting which
// provider answered. Used by the connectivity debug endpoint.
func (s *Service) Probe(ctx context.Context) (*Response, error) {
	user := "Briefly introduce " + ownerName + " based on his resume."

	for _, p := range s.providers {
		raw, err := p.Generate(ctx, staticPersona, user)
		if err != nil {
			slog.WarnContext(ctx, "probe provider failed", "model", p.Name(), "error", err)
			continue
		}
		if cleaned := CleanResponse(raw); len(cleaned) > minAcceptableLen {
			return &Response{Response: cleaned, Model: p.Name()}, nil
		}
	}
	return nil, ErrProvidersExhausted
}

// buildContext assembles the system prompt per the configured strategy. A
// failed retrieval degrades to the static persona rather than failing the
// request.
func (s *Service) buildContext(ctx context.Context, req Request) string {
	system := staticPersona

	if s.opts.Strategy == config.StrategyRetrieval && s.retriever != nil {
		results, err := s.retriever.Retrieve(ctx, req.Message, s.opts.RetrieveK)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "retrieval failed, using static persona", "error", err)
		case len(results) > 0:
			blocks := make([]string, len(results))
			for i, r := range results {
				blocks[i] = r.Content
			}
			system = retrievalPersona(strings.Join(blocks, "\n\n"))
		}
	}

	if strings.TrimSpace(req.ProjectContext) != "" {
		system += "\n\nAdditional context about the project being viewed: " + req.ProjectContext
	}
	return system
}
