package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/aryaman-sowilo/stock-price-scraper/customerrors"
	"github.com/aryaman-sowilo/stock-price-scraper/middleware"
)

var (
	googleFinanceURL = "https://www.google.com/finance"
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"
)

// GoogleFinanceClient fetches raw quote pages. It is deliberately dumb: one
// GET with browser-identifying headers, a short timeout and no retries.
type GoogleFinanceClient struct {
	RestyClient *resty.Client
}

func NewGoogleFinanceClient(timeout time.Duration) *GoogleFinanceClient {
	c := resty.New().
		SetBaseURL(googleFinanceURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"User-Agent":      userAgent,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.9",
		})

	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &GoogleFinanceClient{RestyClient: c}
}

// FetchQuotePage returns the markup of the quote page for symbol. Every
// transport or HTTP-status failure collapses into ErrFetchFailed; retrying is
// the caller's business, not ours.
func (g *GoogleFinanceClient) FetchQuotePage(ctx context.Context, symbol string) (string, error) {
	resp, err := g.RestyClient.R().
		SetContext(ctx).
		SetQueryParam("hl", "en").
		Get("/quote/" + url.PathEscape(symbol))

	if err != nil {
		return "", fmt.Errorf("%w: %v", customerrors.ErrFetchFailed, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: status %d", customerrors.ErrFetchFailed, resp.StatusCode())
	}

	log.Debug().
		Str("symbol", symbol).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("quote page fetched")

	return resp.String(), nil
}
