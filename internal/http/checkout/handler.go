package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gelato/internal/cart"
	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/checkout"
	salehttp "github.com/MrJamesThe3rd/gelato/internal/http/sale"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

type Handler struct {
	catalog  *catalog.Service
	checkout *checkout.Service
}

func NewHandler(catalogSvc *catalog.Service, checkoutSvc *checkout.Service) *Handler {
	return &Handler{catalog: catalogSvc, checkout: checkoutSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.checkoutCart)
}

type itemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	Items         []itemRequest `json:"items"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	PaymentMethod string        `json:"payment_method"`
	Note          string        `json:"note"`
}

func (h *Handler) checkoutCart(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.fillCart(req.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.checkout.Checkout(r.Context(), c, checkout.Request{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, sale.ErrInvalidPaymentMethod),
			errors.Is(err, sale.ErrInvalidItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("failed to check out", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(salehttp.ToResponse(*s)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// fillCart builds a cart priced from the current catalog. Repeated product
// ids add up.
func (h *Handler) fillCart(items []itemRequest) (*cart.Cart, error) {
	c := cart.New()

	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for %q must be positive", it.ProductID)
		}

		p, ok := h.catalog.Get(it.ProductID)
		if !ok {
			return nil, fmt.Errorf("unknown product %q", it.ProductID)
		}

		if err := c.Add(p); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}

		c.SetQuantity(p.ID, quantityOf(c, p.ID)+it.Quantity-1)
	}

	return c, nil
}

func quantityOf(c *cart.Cart, productID string) int {
	for _, l := range c.Lines() {
		if l.ProductID == productID {
			return l.Quantity
		}
	}

	return 0
}
