package sale

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

type Handler struct {
	svc *sale.Service
}

func NewHandler(svc *sale.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

// list serves the sales history, newest first. ?q= narrows it to sales with
// a matching item name or payment method.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales := h.svc.List(sale.ListFilter{Query: r.URL.Query().Get("q")})

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(sales)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
