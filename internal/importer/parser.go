package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	enc "github.com/MrJamesThe3rd/gelato/internal/encoding"
	"github.com/MrJamesThe3rd/gelato/internal/money"
)

// CSVParser reads product lists exported by this application or typed up
// in a spreadsheet. The delimiter, column layout and text encoding are
// detected from the content.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(r io.Reader) ([]catalog.AddParams, error) {
	utf8r, _, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	text := string(data)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, ErrNoProfile
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx)
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if _, seen := cols[name]; name != "" && !seen {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows turns data rows into products. Rows without a name are skipped.
// headerIdx is the 0-based index of the header record.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerIdx int) ([]catalog.AddParams, error) {
	nameIdx := cols[p.NameCol]
	priceIdx := cols[p.PriceCol]
	stockIdx := cols[p.StockCol]

	var products []catalog.AddParams

	for i, row := range rows {
		rowNum := headerIdx + i + 2

		name := cellValue(row, nameIdx)
		if name == "" {
			continue
		}

		price, err := money.Parse(cellValue(row, priceIdx))
		if err != nil || price < 0 {
			return nil, fmt.Errorf("%w %d: price %q", ErrInvalidRow, rowNum, cellValue(row, priceIdx))
		}

		stock, err := parseStock(cellValue(row, stockIdx))
		if err != nil {
			return nil, fmt.Errorf("%w %d: stock %q", ErrInvalidRow, rowNum, cellValue(row, stockIdx))
		}

		products = append(products, catalog.AddParams{Name: name, Price: price, Stock: stock})
	}

	return products, nil
}

// parseStock reads a whole, non-negative count. An empty cell is zero.
func parseStock(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("negative stock %d", n)
	}

	return n, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
