package settings

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gelato/internal/shop"
)

type Resetter interface {
	Reset(ctx context.Context, confirmed bool) error
}

type Handler struct {
	shop Resetter
}

func NewHandler(s Resetter) *Handler {
	return &Handler{shop: s}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/reset", h.reset)
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// reset wipes all data back to the seed catalog. The body must carry
// {"confirm": true}.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.shop.Reset(r.Context(), req.Confirm); err != nil {
		if errors.Is(err, shop.ErrNotConfirmed) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to reset data", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	slog.Info("data reset")
	w.WriteHeader(http.StatusNoContent)
}
