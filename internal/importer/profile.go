package importer

import "strings"

// Profile describes the header names of one product list layout. Headers
// match case-insensitively.
type Profile struct {
	Name     string
	NameCol  string
	PriceCol string
	StockCol string
}

func (p Profile) requiredCols() []string {
	return []string{p.NameCol, p.PriceCol, p.StockCol}
}

// profiles are tried in order against every row until one matches.
var profiles = []Profile{
	{
		Name:     "export",
		NameCol:  "name",
		PriceCol: "price",
		StockCol: "stock",
	},
	{
		Name:     "fiche",
		NameCol:  "nom",
		PriceCol: "prix",
		StockCol: "stock",
	},
	{
		Name:     "fiche-produit",
		NameCol:  "produit",
		PriceCol: "prix",
		StockCol: "quantité",
	},
}

// delimiters are the separators detectDelimiter chooses from.
var delimiters = []rune{',', ';', '\t'}

// detectDelimiter picks the separator that occurs most often on the first
// non-blank line, preferring the earlier entry of delimiters on ties.
func detectDelimiter(text string) rune {
	var line string

	for l := range strings.Lines(text) {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}

	best, bestCount := delimiters[0], 0

	for _, d := range delimiters {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}

	return best
}
