package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gelato/internal/dashboard"
)

type Summarizer interface {
	Dashboard() dashboard.Summary
}

type Handler struct {
	src Summarizer
}

func NewHandler(src Summarizer) *Handler {
	return &Handler{src: src}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.src.Dashboard()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
