package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/gelato/internal/http/checkout"
	"github.com/MrJamesThe3rd/gelato/internal/http/customer"
	"github.com/MrJamesThe3rd/gelato/internal/http/dashboard"
	"github.com/MrJamesThe3rd/gelato/internal/http/expense"
	"github.com/MrJamesThe3rd/gelato/internal/http/export"
	"github.com/MrJamesThe3rd/gelato/internal/http/importcsv"
	"github.com/MrJamesThe3rd/gelato/internal/http/product"
	"github.com/MrJamesThe3rd/gelato/internal/http/sale"
	"github.com/MrJamesThe3rd/gelato/internal/http/settings"
	"github.com/MrJamesThe3rd/gelato/internal/shop"
)

type Handlers struct {
	ProductsV1  *product.Handler
	CustomersV1 *customer.Handler
	SalesV1     *sale.Handler
	CheckoutV1  *checkout.Handler
	ExpensesV1  *expense.Handler
	DashboardV1 *dashboard.Handler
	ExportV1    *export.Handler
	ImportV1    *importcsv.Handler
	SettingsV1  *settings.Handler
}

// NewHandlers wires a handler for every route group to the services of s.
func NewHandlers(s *shop.Shop) Handlers {
	return Handlers{
		ProductsV1:  product.NewHandler(s.Catalog),
		CustomersV1: customer.NewHandler(s.Customers),
		SalesV1:     sale.NewHandler(s.Sales),
		CheckoutV1:  checkout.NewHandler(s.Catalog, s.Checkout),
		ExpensesV1:  expense.NewHandler(s.Expenses),
		DashboardV1: dashboard.NewHandler(s),
		ExportV1:    export.NewHandler(s.Export, s.Sales),
		ImportV1:    importcsv.NewHandler(s.Importer),
		SettingsV1:  settings.NewHandler(s),
	}
}

func New(allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.ProductsV1.Routes(r)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.CustomersV1.Routes(r)
		})

		r.Route("/sales", h.SalesV1.Routes)

		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.CheckoutV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.ExpensesV1.Routes(r)
		})

		r.Route("/dashboard", h.DashboardV1.Routes)
		r.Route("/export", h.ExportV1.Routes)
		r.Route("/import", h.ImportV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.SettingsV1.Routes(r)
		})
	})

	return router
}
