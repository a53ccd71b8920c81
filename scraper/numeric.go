package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyPattern matches currency-like numbers inside free text, e.g.
// "$187.45", "1,234.5" or "42".
var currencyPattern = regexp.MustCompile(`\$?\d+\.?\d*`)

// CleanNumber strips thousands separators and currency symbols, trims
// whitespace and parses the remainder as a decimal. A failure here is always
// a local rejection for the candidate at hand, never an error the caller
// propagates.
func CleanNumber(text string) (float64, error) {
	clean := strings.ReplaceAll(text, ",", "")
	clean = strings.ReplaceAll(clean, "$", "")
	clean = strings.TrimSpace(clean)
	return strconv.ParseFloat(clean, 64)
}
