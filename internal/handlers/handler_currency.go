package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/currencies"
	"github.com/SscSPs/fxcore/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler serves the static currency metadata.
type currencyHandler struct {
	converter portssvc.ConverterSvcFacade
}

func newCurrencyHandler(converter portssvc.ConverterSvcFacade) *currencyHandler {
	return &currencyHandler{converter: converter}
}

// registerCurrencyRoutes registers routes related to currency metadata.
func registerCurrencyRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvcFacade) {
	h := newCurrencyHandler(converter)

	rg.GET("/currencies/:code", h.getCurrency)
	rg.GET("/restricted-currencies", h.listRestricted)
}

// getCurrency godoc
// @Summary Get currency metadata
// @Description Returns precision, symbol, and restriction status for a currency code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyInfoResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	code := currencies.Normalize(c.Param("code"))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyInfoResponse{
		CurrencyCode: code,
		Precision:    h.converter.CurrencyPrecision(code),
		Symbol:       currencies.Symbol(code),
		Restricted:   h.converter.IsCurrencyRestricted(code),
	})
}

// listRestricted godoc
// @Summary List restricted currencies
// @Description Returns the currency codes that policy forbids converting
// @Tags currencies
// @Produce  json
// @Success 200 {object} map[string][]string
// @Router /restricted-currencies [get]
func (h *currencyHandler) listRestricted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"restricted": currencies.RestrictedCodes()})
}
