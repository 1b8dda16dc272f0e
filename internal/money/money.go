package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrEmpty = errors.New("empty amount")

// Parse reads a user-entered amount. Both "1.50" and the European "1,50" or
// "1.234,50" forms are accepted, with an optional leading currency sign.
func Parse(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "€")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return 0, ErrEmpty
	}

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	f, _ := d.Float64()

	return f, nil
}

// Format renders an amount with two decimal places, e.g. 4.5 -> "4.50".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatWith prefixes the formatted amount with a currency symbol.
func FormatWith(symbol string, v float64) string {
	return symbol + Format(v)
}
