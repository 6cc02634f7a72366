package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/dto"
	"github.com/SscSPs/fxcore/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for currency conversions.
type conversionHandler struct {
	converter portssvc.ConverterSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(converter portssvc.ConverterSvcFacade) *conversionHandler {
	return &conversionHandler{converter: converter}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvcFacade) {
	h := newConversionHandler(converter)
	rg.POST("/convert", h.convert)
	rg.POST("/format", h.formatAmount)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an entered amount into the account and primary currencies, with provider failover and an audit id
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Restricted currency"
// @Failure 503 {object} map[string]string "No rate provider available"
// @Router /convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.converter.Convert(c.Request.Context(), req.ToConversionRequest())
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Conversion failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Conversion rejected", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(result))
}

// formatAmount godoc
// @Summary Format an amount for a currency
// @Description Renders symbol + amount rounded to the currency's minor-unit precision
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatAmountRequest true "Format request"
// @Success 200 {object} dto.FormatAmountResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /format [post]
func (h *conversionHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FormatAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FormatAmountResponse{
		CurrencyCode: req.CurrencyCode,
		Formatted:    h.converter.FormatAmount(req.Amount, req.CurrencyCode),
	})
}
