package sale

import (
	"time"

	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

type lineItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Items         []lineItemResponse `json:"items"`
	Total         float64            `json:"total"`
	CustomerID    string             `json:"customer_id,omitempty"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
	Note          string             `json:"note,omitempty"`
}

func ToResponse(s sale.Sale) SaleResponse {
	items := make([]lineItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = lineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		}
	}

	return SaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		Items:         items,
		Total:         s.Total,
		CustomerID:    s.CustomerID,
		PaymentMethod: s.PaymentMethod,
		Note:          s.Note,
	}
}

func toResponseList(sales []sale.Sale) []SaleResponse {
	resp := make([]SaleResponse, len(sales))
	for i, s := range sales {
		resp[i] = ToResponse(s)
	}

	return resp
}
