package model

// EnvConfig holds runtime settings. Loaded from the `config` environment
// variable as a JSON blob; every field has a usable default so the server can
// start with no environment at all.
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`
	RateLimiter bool   `json:"rateLimiter"`

	FetchTimeoutSeconds int `json:"fetchTimeoutSeconds"`
	CacheCapacity       int `json:"cacheCapacity"`
	CacheTTLSeconds     int `json:"cacheTtlSeconds"`

	// Plausibility bounds for the price cascade. They encode the assumption
	// that single equities trade under four digits, which may need tuning per
	// market, so they are configurable rather than baked in.
	PatternPriceMin  float64 `json:"patternPriceMin"`
	PatternPriceMax  float64 `json:"patternPriceMax"`
	FreeTextPriceMin float64 `json:"freeTextPriceMin"`
	FreeTextPriceMax float64 `json:"freeTextPriceMax"`
}

// DefaultEnvConfig mirrors the constants the scraper shipped with.
func DefaultEnvConfig() *EnvConfig {
	return &EnvConfig{
		Port:                "8000",
		Environment:         "development",
		RateLimiter:         false,
		FetchTimeoutSeconds: 10,
		CacheCapacity:       256,
		CacheTTLSeconds:     60,
		PatternPriceMin:     1,
		PatternPriceMax:     1000,
		FreeTextPriceMin:    1,
		FreeTextPriceMax:    10000,
	}
}
