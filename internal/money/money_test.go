package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "Dot decimal", in: "1.50", want: 1.5},
		{name: "Comma decimal", in: "1,70", want: 1.7},
		{name: "Thousands", in: "1.234,56", want: 1234.56},
		{name: "Currency sign", in: "€ 2.00", want: 2},
		{name: "Integer", in: "3", want: 3},
		{name: "Empty", in: "  ", wantErr: true},
		{name: "Garbage", in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "4.50", money.Format(4.5))
	assert.Equal(t, "0.00", money.Format(0))
	assert.Equal(t, "€1.70", money.FormatWith("€", 1.7))
}
