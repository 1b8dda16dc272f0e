// Package export writes the catalog and the sales ledger out as CSV and
// renders a plain-text sales summary.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/money"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

const (
	ProductsFile = "products.csv"
	SalesFile    = "sales.csv"
)

type Products interface {
	List() []catalog.Product
}

type Sales interface {
	List(filter sale.ListFilter) []sale.Sale
}

// Service exports the shop's records.
type Service struct {
	products Products
	sales    Sales
	currency string
}

// NewService creates a new export Service. currency prefixes amounts in the
// summary.
func NewService(products Products, sales Sales, currency string) *Service {
	return &Service{products: products, sales: sales, currency: currency}
}

func (s *Service) ExportProducts(w io.Writer) error {
	return WriteCSV(w, s.products.List())
}

// ExportSales writes the whole ledger, newest first.
func (s *Service) ExportSales(w io.Writer) error {
	return WriteCSV(w, s.sales.List(sale.ListFilter{}))
}

// WriteFiles writes products.csv and sales.csv into dir, creating it if
// needed, and returns the paths written.
func (s *Service) WriteFiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ProductsFile, s.ExportProducts},
		{SalesFile, s.ExportSales},
	}

	paths := make([]string, 0, len(files))

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// GenerateSummary renders one line per sale:
// "* date | items | method | total".
func (s *Service) GenerateSummary(sales []sale.Sale) string {
	var sb strings.Builder

	for _, sl := range sales {
		items := make([]string, 0, len(sl.Items))
		for _, it := range sl.Items {
			items = append(items, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}

		fmt.Fprintf(&sb, "* %s | %s | %s | %s\n",
			sl.Date.Format("2006-01-02 15:04"),
			strings.Join(items, ", "),
			sl.PaymentMethod,
			money.FormatWith(s.currency, sl.Total),
		)
	}

	return sb.String()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
