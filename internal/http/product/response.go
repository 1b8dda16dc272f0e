package product

import "github.com/MrJamesThe3rd/gelato/internal/catalog"

type productResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	LowStock bool    `json:"low_stock"`
}

func toResponse(p catalog.Product, threshold int) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		LowStock: p.Stock <= threshold,
	}
}

func toResponseList(products []catalog.Product, threshold int) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p, threshold)
	}

	return resp
}
