package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	gocache "github.com/patrickmn/go-cache"

	"github.com/aryaman-sowilo/stock-price-scraper/model"
)

// RateLimiterCache holds one limiter per client IP for the gin middleware.
var RateLimiterCache = gocache.New(1*time.Hour, 10*time.Minute)

// QuoteCache is the bounded result cache keyed by uppercase symbol. Entries
// are evicted least-recently-used once capacity is reached and additionally
// expire after the TTL, so a small working set cannot keep serving stale
// quotes indefinitely. Construct one per process and inject it; tests get
// isolated instances.
type QuoteCache struct {
	entries *expirable.LRU[string, model.QuoteRecord]
}

// NewQuoteCache builds a cache holding up to capacity symbols, each fresh for
// ttl. ttl <= 0 disables expiry and leaves pure LRU eviction.
func NewQuoteCache(capacity int, ttl time.Duration) *QuoteCache {
	return &QuoteCache{entries: expirable.NewLRU[string, model.QuoteRecord](capacity, nil, ttl)}
}

// Get returns the cached record for symbol, marking it recently used.
func (c *QuoteCache) Get(symbol string) (model.QuoteRecord, bool) {
	return c.entries.Get(symbol)
}

// Set stores the record, evicting the least-recently-used symbol when full.
func (c *QuoteCache) Set(symbol string, rec model.QuoteRecord) {
	c.entries.Add(symbol, rec)
}

// Len reports the number of live entries.
func (c *QuoteCache) Len() int {
	return c.entries.Len()
}
