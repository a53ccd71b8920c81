package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aryaman-sowilo/stock-price-scraper/model"
)

func record(symbol string, price float64) model.QuoteRecord {
	return model.QuoteRecord{Symbol: symbol, Price: price}
}

func TestQuoteCache_GetReturnsStoredRecord(t *testing.T) {
	t.Parallel()

	c := NewQuoteCache(256, time.Minute)
	want := record("AAPL", 187.45)
	c.Set("AAPL", want)

	got, found := c.Get("AAPL")
	require.True(t, found)
	require.Equal(t, want, got)

	_, found = c.Get("GOOGL")
	require.False(t, found)
}

func TestQuoteCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := NewQuoteCache(256, 0)
	for i := 0; i < 256; i++ {
		sym := fmt.Sprintf("SYM%03d", i)
		c.Set(sym, record(sym, float64(i)))
	}
	require.Equal(t, 256, c.Len())

	// Touch the oldest entry so the second-oldest becomes the eviction victim.
	_, found := c.Get("SYM000")
	require.True(t, found)

	c.Set("SYM256", record("SYM256", 256))
	require.Equal(t, 256, c.Len())

	_, found = c.Get("SYM001")
	require.False(t, found, "least-recently-used symbol should be evicted")
	_, found = c.Get("SYM000")
	require.True(t, found, "recently touched symbol should survive")
	_, found = c.Get("SYM256")
	require.True(t, found)
}

func TestQuoteCache_EntriesExpire(t *testing.T) {
	t.Parallel()

	c := NewQuoteCache(16, 40*time.Millisecond)
	c.Set("AAPL", record("AAPL", 187.45))

	_, found := c.Get("AAPL")
	require.True(t, found)

	time.Sleep(120 * time.Millisecond)

	_, found = c.Get("AAPL")
	require.False(t, found, "entry should expire after the TTL")
}
