package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/aryaman-sowilo/stock-price-scraper/cache"
	"github.com/aryaman-sowilo/stock-price-scraper/customerrors"
	"github.com/aryaman-sowilo/stock-price-scraper/model"
	"github.com/aryaman-sowilo/stock-price-scraper/scraper"
)

// PageFetcher is what the service needs from the fetch collaborator.
type PageFetcher interface {
	FetchQuotePage(ctx context.Context, symbol string) (string, error)
}

type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*model.QuoteRecord, error)
}

type QuoteServiceImpl struct {
	fetcher PageFetcher
	cache   *cache.QuoteCache
	scraper *scraper.Scraper
	group   singleflight.Group
}

func NewQuoteService(fetcher PageFetcher, qc *cache.QuoteCache, sc *scraper.Scraper) QuoteService {
	return &QuoteServiceImpl{
		fetcher: fetcher,
		cache:   qc,
		scraper: sc,
	}
}

// GetQuote returns the cached record for the symbol or scrapes a fresh one.
// Concurrent requests for the same uncached symbol coalesce onto a single
// fetch; failed extractions are surfaced to every waiter and never cached.
func (s *QuoteServiceImpl) GetQuote(ctx context.Context, symbol string) (*model.QuoteRecord, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))

	if rec, found := s.cache.Get(sym); found {
		log.Debug().Str("symbol", sym).Msg("cache hit")
		return &rec, nil
	}

	v, err, _ := s.group.Do(sym, func() (any, error) {
		// another request may have filled the cache while this one queued
		if rec, found := s.cache.Get(sym); found {
			return rec, nil
		}
		rec, err := s.scrape(ctx, sym)
		if err != nil {
			return nil, err
		}
		s.cache.Set(sym, *rec)
		return *rec, nil
	})
	if err != nil {
		return nil, err
	}

	rec := v.(model.QuoteRecord)
	return &rec, nil
}

// scrape runs the full pipeline: fetch, parse, extract price then change then
// market cap, assemble. Price is the one mandatory field; everything else
// degrades to absent without failing the operation.
func (s *QuoteServiceImpl) scrape(ctx context.Context, symbol string) (*model.QuoteRecord, error) {
	markup, err := s.fetcher.FetchQuotePage(ctx, symbol)
	if err != nil {
		return nil, err
	}

	doc, err := scraper.ParseDocument(markup)
	if err != nil {
		return nil, err
	}

	price, ok := s.scraper.ExtractPrice(doc)
	if !ok {
		return nil, fmt.Errorf("%w: no price strategy matched for %s", customerrors.ErrQuoteUnavailable, symbol)
	}

	absChange, pctChange := s.scraper.ExtractChange(doc, price.Value)
	marketCap := s.scraper.ExtractMarketCap(doc)

	log.Info().
		Str("symbol", symbol).
		Float64("price", price.Value).
		Str("provenance", price.Strategy).
		Msg("quote extracted")

	return &model.QuoteRecord{
		Symbol:    symbol,
		Price:     price.Value,
		AbsChange: absChange,
		PctChange: pctChange,
		MarketCap: marketCap,
	}, nil
}
