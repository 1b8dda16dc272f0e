package sale

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidItem          = errors.New("invalid sale item")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// PaymentMethod is how a customer settled a sale.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "Cash"
	PaymentCard        PaymentMethod = "Card"
	PaymentMobileMoney PaymentMethod = "Mobile Money"
	PaymentTransfer    PaymentMethod = "Transfer"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentMobileMoney, PaymentTransfer}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}

	return false
}

// ParsePaymentMethod matches s case-insensitively against the accepted
// methods. An empty string means cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PaymentCash, nil
	}

	for _, m := range PaymentMethods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}

// LineItem is a copy of a cart line frozen into a sale. It never follows
// later changes to the product it came from.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (l LineItem) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Sale struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Items         []LineItem    `json:"items"`
	Total         float64       `json:"total"`
	CustomerID    string        `json:"customerId"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Note          string        `json:"note"`
}

// Total sums price × quantity over items in order.
func Total(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}

	return total
}

// Matches reports whether the sale shows up in a history search for query:
// any item name or the payment method containing it, ignoring case. An empty
// query matches everything.
func Matches(s Sale, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)

	for _, it := range s.Items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			return true
		}
	}

	return strings.Contains(strings.ToLower(string(s.PaymentMethod)), q)
}
