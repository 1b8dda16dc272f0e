package export

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gelato/internal/export"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

const summaryFile = "summary.txt"

type Handler struct {
	svc   *export.Service
	sales *sale.Service
}

func NewHandler(svc *export.Service, sales *sale.Service) *Handler {
	return &Handler{svc: svc, sales: sales}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/products.csv", h.csv(export.ProductsFile, h.svc.ExportProducts))
	r.Get("/sales.csv", h.csv(export.SalesFile, h.svc.ExportSales))
	r.Get("/summary", h.summary)
	r.Get("/download", h.download)
}

func (h *Handler) csv(filename string, write func(io.Writer) error) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := write(w); err != nil {
			slog.Error("failed to write csv", "file", filename, "error", err)
		}
	}
}

// summary renders the sales history as text, narrowed by ?q= like the
// history listing.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sales := h.sales.List(sale.ListFilter{Query: r.URL.Query().Get("q")})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := io.WriteString(w, h.svc.GenerateSummary(sales)); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

// download bundles both CSV files and the text summary into a zip archive.
func (h *Handler) download(w http.ResponseWriter, _ *http.Request) {
	tmpDir, err := os.MkdirTemp("", "gelato-export-*")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	paths, err := h.svc.WriteFiles(tmpDir)
	if err != nil {
		slog.Error("failed to export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	summary := h.svc.GenerateSummary(h.sales.List(sale.ListFilter{}))

	summaryPath := filepath.Join(tmpDir, summaryFile)
	if err := os.WriteFile(summaryPath, []byte(summary), 0o644); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	paths = append(paths, summaryPath)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"gelato_%s.zip\"", time.Now().Format("20060102")))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	for _, path := range paths {
		if err := addToZip(zipWriter, path); err != nil {
			slog.Error("failed to create zip", "error", err)
			return
		}
	}
}

func addToZip(zw *zip.Writer, path string) error {
	zf, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(zf, f)

	return err
}
