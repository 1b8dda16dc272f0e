package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    sale.PaymentMethod
		wantErr bool
	}{
		{in: "", want: sale.PaymentCash},
		{in: "card", want: sale.PaymentCard},
		{in: " Mobile Money ", want: sale.PaymentMobileMoney},
		{in: "TRANSFER", want: sale.PaymentTransfer},
		{in: "Bitcoin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := sale.ParsePaymentMethod(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, sale.ErrInvalidPaymentMethod)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches(t *testing.T) {
	s := sale.Sale{
		Items: []sale.LineItem{
			{Name: "Vanilla"},
			{Name: "Strawberry"},
		},
		PaymentMethod: sale.PaymentTransfer,
	}

	assert.True(t, sale.Matches(s, ""))
	assert.True(t, sale.Matches(s, "BERRY"))
	assert.True(t, sale.Matches(s, "trans"))
	assert.False(t, sale.Matches(s, "cash"))
}

func TestTotal(t *testing.T) {
	items := []sale.LineItem{
		{Price: 1.5, Quantity: 3},
		{Price: 1.6, Quantity: 2},
	}

	assert.InDelta(t, 7.7, sale.Total(items), 1e-9)
	assert.Zero(t, sale.Total(nil))
}
