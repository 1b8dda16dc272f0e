package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
)

type Catalog interface {
	AddProduct(ctx context.Context, params catalog.AddParams) (*catalog.Product, error)
}

type Service struct {
	parser  Parser
	catalog Catalog
}

func NewService(cat Catalog) *Service {
	return &Service{
		parser:  NewCSVParser(),
		catalog: cat,
	}
}

// Import parses r and adds every product found to the catalog, in file
// order. Nothing is added when the file does not parse.
func (s *Service) Import(ctx context.Context, r io.Reader) ([]catalog.Product, error) {
	params, err := s.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing product list: %w", err)
	}

	added := make([]catalog.Product, 0, len(params))

	for _, p := range params {
		product, err := s.catalog.AddProduct(ctx, p)
		if err != nil {
			return added, fmt.Errorf("adding %q: %w", p.Name, err)
		}

		added = append(added, *product)
	}

	return added, nil
}
