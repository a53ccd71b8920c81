package customerrors

import "errors"

var (
	// ErrFetchFailed covers any network or HTTP-level failure while retrieving
	// the quote page. Never retried inside the core.
	ErrFetchFailed = errors.New("failed to fetch quote page")

	// ErrMalformedDocument means the response body could not be parsed as HTML.
	ErrMalformedDocument = errors.New("quote page markup could not be parsed")

	// ErrQuoteUnavailable means the document parsed fine but no strategy
	// resolved a price. Usually an invalid or delisted symbol, occasionally a
	// sign that the source changed its markup.
	ErrQuoteUnavailable = errors.New("unable to parse quote")
)
