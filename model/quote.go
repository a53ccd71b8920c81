package model

// QuoteRecord is the assembled result for one symbol. Price is the only
// mandatory field; the pointer fields are explicitly null in JSON when the
// source markup did not yield them, never zero or "".
type QuoteRecord struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	AbsChange *string `json:"abs_change"`
	PctChange *string `json:"pct_change"`
	MarketCap *string `json:"market_cap"`
}

// QuoteRequest carries the validated query parameters of GET /quote.
type QuoteRequest struct {
	Symbol string `form:"symbol" json:"symbol"`
}
