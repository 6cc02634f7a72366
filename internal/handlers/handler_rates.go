package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/dto"
	"github.com/SscSPs/fxcore/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for raw exchange rates.
type rateHandler struct {
	converter portssvc.ConverterSvcFacade
}

func newRateHandler(converter portssvc.ConverterSvcFacade) *rateHandler {
	return &rateHandler{converter: converter}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvcFacade) {
	h := newRateHandler(converter)
	rg.GET("/rates/:from/:to", h.getRate)
}

// getRate godoc
// @Summary Get an exchange rate
// @Description Resolves the current rate for a currency pair through the cache and the provider failover chain
// @Tags rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 403 {object} map[string]string "Restricted currency"
// @Failure 503 {object} map[string]string "No rate provider available"
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	rate, err := h.converter.GetRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to resolve exchange rate", slog.String("error", err.Error()))
		} else {
			logger.Warn("Exchange rate request rejected", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
