// Package dashboard computes the shop's headline figures from snapshots of
// the catalog and ledgers.
package dashboard

import (
	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/expense"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

// LowStockThreshold is the stock level at or below which a product is
// flagged.
const LowStockThreshold = 10

type Summary struct {
	Revenue    float64           `json:"revenue"`
	SalesCount int               `json:"sales_count"`
	StockValue float64           `json:"stock_value"`
	Expenses   float64           `json:"expenses"`
	Net        float64           `json:"net"`
	LowStock   []catalog.Product `json:"low_stock"`
}

func Summarize(products []catalog.Product, sales []sale.Sale, expenses []expense.Expense) Summary {
	revenue := TotalRevenue(sales)
	spent := TotalExpenses(expenses)

	low := LowStock(products)
	if low == nil {
		low = []catalog.Product{}
	}

	return Summary{
		Revenue:    revenue,
		SalesCount: SalesCount(sales),
		StockValue: StockValue(products),
		Expenses:   spent,
		Net:        revenue - spent,
		LowStock:   low,
	}
}

func TotalRevenue(sales []sale.Sale) float64 {
	var total float64
	for _, s := range sales {
		total += s.Total
	}

	return total
}

func SalesCount(sales []sale.Sale) int {
	return len(sales)
}

// StockValue is the retail value of everything on the shelf.
func StockValue(products []catalog.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price * float64(p.Stock)
	}

	return total
}

// LowStock keeps catalog order.
func LowStock(products []catalog.Product) []catalog.Product {
	var out []catalog.Product

	for _, p := range products {
		if p.Stock <= LowStockThreshold {
			out = append(out, p)
		}
	}

	return out
}

func TotalExpenses(expenses []expense.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	return total
}
