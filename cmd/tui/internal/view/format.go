package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/gelato/internal/money"
)

const dbTimeout = 5 * time.Second

// Currency prefixes every amount shown on screen.
var Currency = "€"

func FormatPrice(v float64) string {
	return money.FormatWith(Currency, v)
}

// FormatDate formats a time.Time into YYYY-MM-DD HH:MM in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// DbCtx returns a context with a standard timeout for storage operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

func validatePrice(s string) error {
	v, err := money.Parse(s)
	if err != nil {
		return fmt.Errorf("enter an amount like 1.50 or 1,50")
	}

	if v < 0 {
		return fmt.Errorf("amount cannot be negative")
	}

	return nil
}

func validateStock(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number")
	}

	return nil
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}

		return nil
	}
}

// parsePrice and parseStock expect input that already passed validation.
func parsePrice(s string) float64 {
	v, _ := money.Parse(s)
	return v
}

func parseStock(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
