package scraper

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Limits are the plausibility bounds applied to price candidates. Values
// outside them are rejected exactly as parse failures are: the cascade simply
// moves on.
type Limits struct {
	// Pattern-tier bounds (inclusive). Chosen to exclude market-index levels,
	// which are typically much larger than single-equity prices.
	PatternMin float64
	PatternMax float64
	// Free-text-tier bounds (exclusive). Wider, since the last-resort scan has
	// no structural hint to lean on.
	FreeTextMin float64
	FreeTextMax float64
}

// DefaultLimits returns the bounds the scraper shipped with.
func DefaultLimits() Limits {
	return Limits{PatternMin: 1, PatternMax: 1000, FreeTextMin: 1, FreeTextMax: 10000}
}

// Candidate is one accepted extraction attempt. Strategy is the provenance
// tag of the step that produced it.
type Candidate struct {
	Strategy string
	Matched  string
	Value    float64
}

// Strategy is a single pure probe over a document. Returning nil means the
// probe found nothing acceptable and the chain advances.
type Strategy struct {
	ID    string
	Probe func(d *Document) *Candidate
}

// Scraper runs the extraction cascades over a parsed quote page.
type Scraper struct {
	limits Limits
	log    zerolog.Logger
}

// New returns a Scraper using the given plausibility bounds. Zero-valued
// limits fall back to the defaults.
func New(limits Limits) *Scraper {
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}
	return &Scraper{
		limits: limits,
		log:    log.With().Str("component", "scraper").Logger(),
	}
}

// firstMatch applies the chain in order and short-circuits on the first
// candidate. Earlier strategies are strictly preferred; ordering of the chain
// is load-bearing.
func (s *Scraper) firstMatch(stage string, doc *Document, chain []Strategy) *Candidate {
	for _, st := range chain {
		c := st.Probe(doc)
		if c == nil {
			s.log.Debug().Str("stage", stage).Str("strategy", st.ID).Msg("no acceptable match")
			continue
		}
		s.log.Debug().
			Str("stage", stage).
			Str("strategy", st.ID).
			Str("matched", c.Matched).
			Float64("value", c.Value).
			Msg("strategy accepted")
		return c
	}
	return nil
}
