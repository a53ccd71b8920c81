package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// marketCapSelectors is the prioritized container list for the market-cap row.
var marketCapSelectors = []string{
	"div.P6K39c",
	"div.KFglDc",
	"div[data-market-cap]",
	"span[data-market-cap]",
	".market-cap",
	"[data-market-cap]",
	"div[class*='cap']",
	"span[class*='cap']",
	"div[class*='P6K39c']",
	"span[class*='P6K39c']",
}

// ExtractMarketCap returns the market cap exactly as displayed, e.g. "2.95T".
// A candidate row only counts when its text carries the market-cap label,
// which keeps other metrics in the same stats section from being picked up.
// Returns nil when nothing matches; never fatal.
func (s *Scraper) ExtractMarketCap(doc *Document) *string {
	for _, sel := range marketCapSelectors {
		var found *string
		doc.SelectAll(sel).EachWithBreak(func(_ int, row *goquery.Selection) bool {
			text := row.Text()
			if !strings.Contains(text, "Mkt cap") && !strings.Contains(text, "Market cap") {
				return true
			}
			val := row.Find("div.P6K39c").First()
			if val.Length() == 0 {
				val = row.Find("span").First()
			}
			out := TextOf(val)
			if out == "" {
				out = TextOf(row)
			}
			if out == "" {
				return true
			}
			found = &out
			return false
		})
		if found != nil {
			s.log.Debug().Str("stage", "market_cap").Str("strategy", "css:"+sel).Str("value", *found).Msg("market cap found")
			return found
		}
	}
	s.log.Debug().Str("stage", "market_cap").Msg("no market cap row matched")
	return nil
}
