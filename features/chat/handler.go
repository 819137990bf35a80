package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"portfolio/backend/internal/middleware"
)

// Status is the credential/configuration snapshot reported by the liveness
// and failure payloads.
type Status struct {
	GeminiConfigured bool
	HFConfigured     bool
	PrimaryModel     string
}

type Handler struct {
	service *Service
	status  Status
}

func NewHandler(service *Service, status Status) *Handler {
	return &Handler{service: service, status: status}
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(r.Context(), w, "VALIDATION_ERROR", "message is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if errors.Is(err, ErrProvidersExhausted) {
		// Deliberate 200: the frontend renders this as a soft notice, not a
		// transport failure.
		h.writeJSON(w, map[string]interface{}{
			"error":             "AI model unavailable",
			"message":           "All configured models failed to answer. Please try again later.",
			"gemini_configured": h.status.GeminiConfigured,
			"hf_configured":     h.status.HFConfigured,
		})
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "chat failed", "error", err)
		h.writeError(r.Context(), w, "INTERNAL_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, resp)
}

// Root handles GET /, the liveness/status payload.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{
		"status":            "running",
		"service":           "Dixon's Portfolio AI",
		"gemini_configured": h.status.GeminiConfigured,
		"hf_configured":     h.status.HFConfigured,
		"primary_model":     h.status.PrimaryModel,
	})
}

// TestProviders handles GET /test-hf, probing the chain with a fixed message.
func (h *Handler) TestProviders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Probe(r.Context())
	if err != nil {
		h.writeJSON(w, map[string]interface{}{
			"status":            "failed",
			"message":           "All models failed",
			"gemini_configured": h.status.GeminiConfigured,
			"hf_configured":     h.status.HFConfigured,
		})
		return
	}

	preview := resp.Response
	if len(preview) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut]
	}
	h.writeJSON(w, map[string]interface{}{
		"status":   "connected",
		"model":    resp.Model,
		"response": preview,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
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
