package validator

import (
	"regexp"

	"github.com/Oudwins/zog"

	"github.com/aryaman-sowilo/stock-price-scraper/model"
)

// symbolPattern allows plain tickers ("AAPL", "BRK.B") and exchange-qualified
// ones ("AAPL:NASDAQ"), which is everything the quote URL can carry.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.\-]+(:[A-Za-z0-9.\-]+)?$`)

var SymbolShape = zog.Shape{
	"Symbol": zog.String().Min(1).Max(24).Required(),
}

// SymbolCharsetTest rejects symbols that could never form a valid quote path.
func SymbolCharsetTest(dataPtr any, ctx zog.Ctx) bool {
	req, ok := dataPtr.(*model.QuoteRequest)
	if !ok {
		return true
	}

	if symbolPattern.MatchString(req.Symbol) {
		return true
	}

	ctx.AddIssue(&zog.ZogIssue{
		Path:    "symbol",
		Message: "symbol contains invalid characters",
	})
	return false
}
