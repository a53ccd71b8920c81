package controller

import (
	"errors"
	"net/http"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aryaman-sowilo/stock-price-scraper/customerrors"
	"github.com/aryaman-sowilo/stock-price-scraper/model"
	"github.com/aryaman-sowilo/stock-price-scraper/service"
	"github.com/aryaman-sowilo/stock-price-scraper/validator"
)

var quoteSchema = zog.Struct(validator.SymbolShape).TestFunc(validator.SymbolCharsetTest)

type QuoteController struct {
	quoteService service.QuoteService
}

func NewQuoteController(qs service.QuoteService) *QuoteController {
	return &QuoteController{
		quoteService: qs,
	}
}

// RegisterRoutes sets up the public quote endpoints at the root level.
func (ctrl *QuoteController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", ctrl.GetUsage)
	router.GET("/quote", ctrl.GetQuote)
}

// GetQuote handles quote requests.
// @Summary      Get Stock Quote
// @Description  Scrapes price, change and market cap for a symbol from Google Finance. Results are cached per symbol.
// @Tags         Quotes
// @Produce      json
// @Param        symbol  query     string  false  "Stock Symbol (default AAPL)"
// @Success      200     {object}  model.Response{data=model.QuoteRecord}
// @Failure      400     {object}  model.Response
// @Failure      500     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /quote [get]
func (ctrl *QuoteController) GetQuote(c *gin.Context) {
	req := model.QuoteRequest{Symbol: c.DefaultQuery("symbol", "AAPL")}

	if err := quoteSchema.Validate(&req); err != nil {
		log.Debug().Str("symbol", req.Symbol).Msg("rejected symbol parameter")
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Invalid symbol parameter",
		})
		return
	}

	record, err := ctrl.quoteService.GetQuote(c.Request.Context(), req.Symbol)
	if err != nil {
		switch {
		case errors.Is(err, customerrors.ErrQuoteUnavailable):
			handleError(c, http.StatusBadRequest, "Quote unavailable", err)
		case errors.Is(err, customerrors.ErrFetchFailed):
			handleError(c, http.StatusBadGateway, "Failed to reach quote source", err)
		case errors.Is(err, customerrors.ErrMalformedDocument):
			handleError(c, http.StatusInternalServerError, "Quote source returned unreadable markup", err)
		default:
			handleError(c, http.StatusInternalServerError, "Error fetching quote", err)
		}
		return
	}

	handleSuccess(c, "Fetch Success", record)
}

// GetUsage describes the API.
// @Summary      Usage Instructions
// @Description  Root endpoint with a short pointer at the quote route.
// @Tags         System
// @Produce      json
// @Success      200  {object}  model.Response
// @Router       / [get]
func (ctrl *QuoteController) GetUsage(c *gin.Context) {
	handleSuccess(c, "Stock Price Scraper API", gin.H{
		"usage":   "GET /quote?symbol=AAPL to get stock quote",
		"example": "/quote?symbol=GOOGL",
	})
}
