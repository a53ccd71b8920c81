package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := ParseDocument(markup)
	require.NoError(t, err)
	return doc
}

func TestExtractPrice_AttributeTierPreferred(t *testing.T) {
	t.Parallel()

	// Both the machine-readable attribute and a display element are present
	// with different values; the attribute must win.
	doc := mustParse(t, `<html><body><main>
		<div data-entity-type="0" data-last-price="187.45">$187.45</div>
		<div class="YMlKec fxKbKc">$187.99</div>
	</main></body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 187.45, c.Value)
	require.Equal(t, "attr:data-last-price", c.Strategy)
}

func TestExtractPrice_AttributePresenceLookup(t *testing.T) {
	t.Parallel()

	// No data-entity-type marker, only a bare data-last-price attribute.
	doc := mustParse(t, `<html><body>
		<div data-last-price="42.10"></div>
	</body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 42.10, c.Value)
	require.Equal(t, "attr:data-last-price", c.Strategy)
}

func TestExtractPrice_NonNumericAttributeFallsThrough(t *testing.T) {
	t.Parallel()

	// A broken attribute is a tier failure, not a fatal error; the pattern
	// cascade below must still run.
	doc := mustParse(t, `<html><body><main>
		<div data-entity-type="0" data-last-price="n/a"></div>
		<div class="YMlKec fxKbKc">$123.45</div>
	</main></body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 123.45, c.Value)
	require.True(t, strings.HasPrefix(c.Strategy, "css:"), "provenance: %s", c.Strategy)
}

func TestExtractPrice_PatternTierStripsFormatting(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body><main>
		<div class="YMlKec fxKbKc">$1,000.00</div>
	</main></body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 1000.00, c.Value)
}

func TestExtractPrice_PatternTierSkipsIndexValues(t *testing.T) {
	t.Parallel()

	// An index widget renders before the equity price. The index level sits
	// outside the pattern-tier range and must be skipped in favor of the
	// later, plausible element.
	doc := mustParse(t, `<html><body><main>
		<div class="YMlKec fxKbKc">44,927.01</div>
		<div class="YMlKec fxKbKc">$212.33</div>
	</main></body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 212.33, c.Value)
}

func TestExtractPrice_FreeTextFallback(t *testing.T) {
	t.Parallel()

	// No structural element matches; the free-text scan picks up the
	// currency-shaped number, using the wider plausibility range.
	doc := mustParse(t, `<html><body>
		<p>$2,500.50</p>
	</body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 2500.50, c.Value)
	require.Equal(t, "text-scan", c.Strategy)
}

func TestExtractPrice_FreeTextRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body>
		<p>44927.01</p>
		<p>0.5</p>
	</body></html>`)

	s := New(DefaultLimits())
	_, ok := s.ExtractPrice(doc)
	require.False(t, ok)
}

func TestExtractPrice_NothingMatches(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body><p>nothing to see here</p></body></html>`)

	s := New(DefaultLimits())
	c, ok := s.ExtractPrice(doc)
	require.False(t, ok)
	require.Nil(t, c)
}

func TestExtractPrice_CustomLimits(t *testing.T) {
	t.Parallel()

	// Operators can widen the pattern-tier range for markets where equities
	// trade above four digits.
	doc := mustParse(t, `<html><body><main>
		<div class="YMlKec fxKbKc">44,927.01</div>
	</main></body></html>`)

	s := New(Limits{PatternMin: 1, PatternMax: 100000, FreeTextMin: 1, FreeTextMax: 200000})
	c, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, 44927.01, c.Value)
}

func TestExtractPrice_Idempotent(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body><main>
		<div data-entity-type="0" data-last-price="187.45"></div>
	</main></body></html>`)

	s := New(DefaultLimits())
	first, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	second, ok := s.ExtractPrice(doc)
	require.True(t, ok)
	require.Equal(t, first, second)
}
