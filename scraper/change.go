package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// changeSelectors is the prioritized pattern list for the change block.
var changeSelectors = []string{
	"div.JwB6zf",
	"span.NydbP",
	"div[data-change]",
	"span[data-change]",
	".change",
	"[data-change]",
	"div[class*='change']",
	"span[class*='change']",
	"div[class*='diff']",
	"span[class*='diff']",
}

// combinedChangePattern matches the classic "<signed-number> (<signed-pct>)"
// shape, e.g. "+1.50 (+0.74%)".
var combinedChangePattern = regexp.MustCompile(`([+\-]?[0-9.,]+)\s*\(([+\-]?[0-9.,%]+)\)`)

// ExtractChange locates the change block and returns the absolute and percent
// change as display strings. Two shapes are recognized: percentage-only text,
// where the absolute change is derived from the resolved price, and combined
// text carrying both values. A missing block yields two nils; that is not an
// error. The derivation is only performed for a positive resolved price.
func (s *Scraper) ExtractChange(doc *Document, price float64) (absChange, pctChange *string) {
	var block *goquery.Selection
	var strategy string
	for _, sel := range changeSelectors {
		if el := doc.SelectFirst(sel); el != nil {
			block = el
			strategy = "css:" + sel
			break
		}
	}
	if block == nil {
		s.log.Debug().Str("stage", "change").Msg("no change block matched")
		return nil, nil
	}

	text := TextOf(block)
	s.log.Debug().Str("stage", "change").Str("strategy", strategy).Str("matched", text).Msg("change block found")

	if strings.Contains(text, "%") {
		pct := text
		pctChange = &pct
		if price > 0 {
			raw := strings.ReplaceAll(strings.ReplaceAll(text, "%", ""), "+", "")
			if v, err := CleanNumber(raw); err == nil {
				abs := fmt.Sprintf("%+.2f", price*(v/100))
				absChange = &abs
			}
		}
		return absChange, pctChange
	}

	if m := combinedChangePattern.FindStringSubmatch(text); m != nil {
		abs, pct := m[1], m[2]
		return &abs, &pct
	}

	s.log.Debug().Str("stage", "change").Str("matched", text).Msg("change text in unrecognized shape")
	return nil, nil
}
