package scraper

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// priceSelectors is the prioritized pattern cascade for the displayed price.
// The specific class names track Google Finance markup observed in the wild;
// the generic attribute and substring patterns behind them are the safety net
// for the next markup shuffle.
var priceSelectors = []string{
	"main div.YMlKec.fxKbKc",
	"div.AHmHk div.YMlKec.fxKbKc",
	"div.YMlKec.fxKbKc",
	"main div.YMlKec",
	"div.YMlKec",
	"span.YMlKec",
	".YMlKec",
	"div[data-last-price]",
	"span[data-last-price]",
	"div[data-price]",
	"span[data-price]",
	"div[data-value]",
	"span[data-value]",
	".price",
	"[data-price]",
	"div[class*='price']",
	"span[class*='price']",
	"div[class*='value']",
	"span[class*='value']",
	"div[class*='last']",
	"span[class*='last']",
	"div[class*='quote']",
	"span[class*='quote']",
}

// ExtractPrice runs the three-tier price cascade: machine-readable attribute,
// then the selector pattern list, then a free-text scan. ok is false when no
// tier produced a value inside its plausibility range, which callers must
// treat as the quote being unavailable.
func (s *Scraper) ExtractPrice(doc *Document) (*Candidate, bool) {
	c := s.firstMatch("price", doc, s.priceChain())
	if c == nil {
		s.log.Warn().Str("stage", "price").Msg("no strategy resolved a price; markup may have changed")
		return nil, false
	}
	return c, true
}

func (s *Scraper) priceChain() []Strategy {
	chain := make([]Strategy, 0, len(priceSelectors)+2)
	chain = append(chain, Strategy{ID: "attr:data-last-price", Probe: s.probeLastPriceAttr})
	for _, sel := range priceSelectors {
		sel := sel
		chain = append(chain, Strategy{
			ID:    "css:" + sel,
			Probe: func(d *Document) *Candidate { return s.probePriceSelector(d, sel) },
		})
	}
	chain = append(chain, Strategy{ID: "text-scan", Probe: s.probeFreeText})
	return chain
}

// probeLastPriceAttr reads the numeric data-last-price attribute off the
// primary quote container. Preferred over everything else because it bypasses
// display formatting entirely.
func (s *Scraper) probeLastPriceAttr(d *Document) *Candidate {
	el := d.FindByAttr("div", "data-entity-type", "0")
	if el == nil {
		el = d.FindByAttr("div", "data-last-price", "")
	}
	if el == nil {
		return nil
	}
	raw, ok := el.Attr("data-last-price")
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		s.log.Debug().
			Str("stage", "price").
			Str("strategy", "attr:data-last-price").
			Str("matched", raw).
			Msg("attribute present but not numeric")
		return nil
	}
	return &Candidate{Strategy: "attr:data-last-price", Matched: raw, Value: v}
}

// probePriceSelector accepts the first element under the selector whose text
// parses as a number inside the pattern-tier range. Index-sized values are
// skipped so a market-index widget on the page cannot masquerade as the price.
func (s *Scraper) probePriceSelector(d *Document, selector string) *Candidate {
	var found *Candidate
	d.SelectAll(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		text := TextOf(el)
		v, err := CleanNumber(text)
		if err != nil {
			return true
		}
		if v < s.limits.PatternMin || v > s.limits.PatternMax {
			s.log.Debug().
				Str("stage", "price").
				Str("strategy", "css:"+selector).
				Float64("value", v).
				Msg("out of plausible equity range")
			return true
		}
		found = &Candidate{Strategy: "css:" + selector, Matched: text, Value: v}
		return false
	})
	return found
}

// probeFreeText is the last resort: scan every text node for a currency-like
// number and take the first one inside the wider free-text range.
func (s *Scraper) probeFreeText(d *Document) *Candidate {
	var found *Candidate
	d.EachText(func(text string) bool {
		if !currencyPattern.MatchString(text) {
			return true
		}
		v, err := CleanNumber(text)
		if err != nil {
			return true
		}
		if v <= s.limits.FreeTextMin || v >= s.limits.FreeTextMax {
			return true
		}
		found = &Candidate{Strategy: "text-scan", Matched: strings.TrimSpace(text), Value: v}
		return false
	})
	return found
}
