package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to rates and their configuration.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	registerValidators()
	h := newRateHandler(rateService)

	rg.GET("/regions", h.listRegions)

	r := rg.Group("/rates")
	{
		r.GET("/quote", h.quote)
		r.GET("/config", h.getConfig)
		r.PUT("/config", h.updateConfig)
		r.GET("/board", h.board)
	}
}

// listRegions godoc
// @Summary List supported regions
// @Description Regions in display order with their currency and label. Venezuela can only receive.
// @Tags rates
// @Produce json
// @Success 200 {array} dto.RegionResponse
// @Security BearerAuth
// @Router /regions [get]
func (h *rateHandler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToRegionResponses())
}

// quote godoc
// @Summary Quote a transfer
// @Description Prices an amount for a pair using the latest configuration. A pair without usable prices is returned with available=false and zero amounts.
// @Tags rates
// @Produce json
// @Param source query string true "Source region or currency"
// @Param target query string true "Target region or currency"
// @Param amount query string true "Amount as typed, comma or dot decimal separator"
// @Param direction query string false "sent (default) or received"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/quote [get]
func (h *rateHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	q, err := h.rateService.Quote(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute quote")
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(q))
}

func toQuoteResponse(q *domain.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Source:                  q.Source,
		Target:                  q.Target,
		CurrencySent:            q.CurrencySent,
		CurrencyReceived:        q.CurrencyReceived,
		AmountSent:              q.AmountSent,
		AmountReceived:          q.AmountReceived,
		ExchangeRate:            q.ExchangeRate,
		FormattedRate:           rates.FormatRateWith(q.ExchangeRate, q.Pair),
		FormattedAmountSent:     rates.FormatAmount(q.AmountSent, 2),
		FormattedAmountReceived: rates.FormatAmount(q.AmountReceived, 2),
		Decimals:                q.Pair.Decimals,
		IsInverse:               q.Pair.IsInverse,
		Available:               q.Available(),
		ConfigurationID:         q.ConfigurationID,
	}
}

// getConfig godoc
// @Summary Get the latest rate configuration
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateConfigResponse
// @Failure 404 {object} ErrorResponse "No configuration saved yet"
// @Security BearerAuth
// @Router /rates/config [get]
func (h *rateHandler) getConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cfg, err := h.rateService.GetLatestConfiguration(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve rate configuration")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateConfigResponse(cfg))
}

// updateConfig godoc
// @Summary Save a new rate configuration
// @Description Stores a new configuration row; it becomes authoritative immediately. Operators only.
// @Tags rates
// @Accept json
// @Produce json
// @Param config body dto.UpdateRateConfigRequest true "Base prices, indicators and margins"
// @Success 201 {object} dto.RateConfigResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/config [put]
func (h *rateHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cfg, err := h.rateService.UpdateConfiguration(c.Request.Context(), operatorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to save rate configuration")
		return
	}
	logger.Info("Rate configuration saved", slog.String("configuration_id", cfg.ID))
	c.JSON(http.StatusCreated, dto.ToRateConfigResponse(cfg))
}

// board godoc
// @Summary Rate board
// @Description Every supported pair with its raw rate, margin and effective rate. Operators only.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.BoardResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/board [get]
func (h *rateHandler) board(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cfg, entries, err := h.rateService.Board(c.Request.Context(), operatorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build rate board")
		return
	}
	c.JSON(http.StatusOK, dto.BoardResponse{ConfigurationID: cfg.ID, Entries: entries})
}
