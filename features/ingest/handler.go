package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"portfolio/backend/internal/middleware"
	"portfolio/backend/internal/roster"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Run handles GET /api/ingest.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Ingest(r.Context())
	if err != nil {
		code := "INGEST_FAILED"
		if errors.Is(err, roster.ErrConfigNotFound) {
			code = "CONFIG_NOT_FOUND"
		}
		slog.ErrorContext(r.Context(), "ingestion failed", "error", err)
		h.writeError(r.Context(), w, code, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("Ingested %d chunks.", count),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
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
		slog.Error("failed to encode error response", "error", err)
	}
}
