package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"portfolio/backend/internal/middleware"
	"portfolio/backend/internal/roster"
)

type VectorStore interface {
	CountChunks(ctx context.Context) (int, error)
}

// Handler reports index and pipeline counters for dashboards and manual
// checks after an ingestion run.
type Handler struct {
	vectorStore VectorStore
	rosterPaths []string
	providers   int
}

func NewHandler(v VectorStore, rosterPaths []string, providers int) *Handler {
	return &Handler{vectorStore: v, rosterPaths: rosterPaths, providers: providers}
}

type StatsResponse struct {
	Chunks         int `json:"chunks"`
	RosterProjects int `json:"roster_projects"`
	Providers      int `json:"providers"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.vectorStore.CountChunks(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count chunks", "error", err)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count chunks", http.StatusInternalServerError)
		return
	}

	// A missing roster is a deploy-time concern, not a stats failure.
	projects := 0
	if cfg, err := roster.Load(h.rosterPaths...); err == nil {
		projects = len(cfg.Roster)
	} else {
		slog.WarnContext(ctx, "roster unavailable for stats", "error", err)
	}

	resp := StatsResponse{
		Chunks:         count,
		RosterProjects: projects,
		Providers:      h.providers,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": resp}); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"correlationId": middleware.GetCorrelationID(ctx),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(ctx, "failed to encode error response", "error", err)
	}
}
