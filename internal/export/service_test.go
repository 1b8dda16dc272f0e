package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

type fakeProducts []catalog.Product

func (f fakeProducts) List() []catalog.Product { return f }

type fakeSales []sale.Sale

func (f fakeSales) List(sale.ListFilter) []sale.Sale { return f }

var (
	soldAt = time.Date(2026, 8, 14, 15, 4, 5, 0, time.UTC)

	testProducts = fakeProducts{
		{ID: "p1", Name: "Vanilla", Price: 1.5, Stock: 97},
		{ID: "p2", Name: `Choc "Noir"`, Price: 1.7, Stock: 80},
	}

	testSales = fakeSales{
		{
			ID:            "s1",
			Date:          soldAt,
			Items:         []sale.LineItem{{ProductID: "p1", Name: "Vanilla", Price: 1.5, Quantity: 3}},
			Total:         4.5,
			CustomerID:    "",
			PaymentMethod: sale.PaymentCash,
			Note:          "",
		},
	}
)

func TestService_ExportProducts(t *testing.T) {
	svc := NewService(testProducts, testSales, "€")

	var buf bytes.Buffer
	require.NoError(t, svc.ExportProducts(&buf))

	want := "id,name,price,stock\n" +
		`"p1","Vanilla","1.5","97"` + "\n" +
		`"p2","Choc ""Noir""","1.7","80"`

	assert.Equal(t, want, buf.String())
}

func TestService_ExportSales(t *testing.T) {
	svc := NewService(testProducts, testSales, "€")

	var buf bytes.Buffer
	require.NoError(t, svc.ExportSales(&buf))

	want := "id,date,items,total,customerId,paymentMethod,note\n" +
		`"s1","2026-08-14T15:04:05Z","[{""productId"":""p1"",""name"":""Vanilla"",""price"":1.5,""quantity"":3}]","4.5","","Cash",""`

	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, []catalog.Product{}))
	assert.Empty(t, buf.String())
}

func TestWriteCSV_NullAndMissing(t *testing.T) {
	type rec struct {
		A string  `json:"a"`
		B *int    `json:"b"`
		C float64 `json:"c,omitempty"`
	}

	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, []rec{
		{A: "x", C: 2},
		{A: "y"},
	}))

	assert.Equal(t, "a,b,c\n\"x\",\"\",\"2\"\n\"y\",\"\",\"\"", buf.String())
}

func TestWriteCSV_NotObject(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, []int{1})
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestService_WriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	svc := NewService(testProducts, fakeSales{}, "€")

	paths, err := svc.WriteFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, ProductsFile), filepath.Join(dir, SalesFile)}, paths)

	products, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(products), `"p1","Vanilla","1.5","97"`)

	sales, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestService_GenerateSummary(t *testing.T) {
	svc := NewService(testProducts, testSales, "€")

	sales := []sale.Sale{
		{
			Date: soldAt,
			Items: []sale.LineItem{
				{Name: "Vanilla", Quantity: 2},
				{Name: "Chocolate", Quantity: 1},
			},
			Total:         4.7,
			PaymentMethod: sale.PaymentCard,
		},
		testSales[0],
	}

	want := "* 2026-08-14 15:04 | Vanilla x2, Chocolate x1 | Card | €4.70\n" +
		"* 2026-08-14 15:04 | Vanilla x3 | Cash | €4.50\n"

	assert.Equal(t, want, svc.GenerateSummary(sales))
	assert.Empty(t, svc.GenerateSummary(nil))
}
