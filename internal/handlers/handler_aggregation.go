package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/dto"
	"github.com/SscSPs/fxcore/internal/middleware"
	"github.com/gin-gonic/gin"
)

// aggregationHandler handles dashboard aggregation requests.
type aggregationHandler struct {
	aggregator portssvc.AggregatorSvcFacade
}

func newAggregationHandler(aggregator portssvc.AggregatorSvcFacade) *aggregationHandler {
	return &aggregationHandler{aggregator: aggregator}
}

// registerAggregationRoutes registers routes related to aggregation.
func registerAggregationRoutes(rg *gin.RouterGroup, aggregator portssvc.AggregatorSvcFacade) {
	h := newAggregationHandler(aggregator)
	rg.POST("/aggregate", h.aggregate)
}

// aggregate godoc
// @Summary Aggregate mixed-currency items into a primary-currency total
// @Description Groups items by currency, obtains one rate per distinct currency, and returns the scaled breakdown and total
// @Tags aggregation
// @Accept  json
// @Produce  json
// @Param   request body dto.AggregateRequest true "Aggregation request"
// @Success 200 {object} dto.AggregateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Restricted currency"
// @Failure 503 {object} map[string]string "No rate provider available"
// @Router /aggregate [post]
func (h *aggregationHandler) aggregate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Aggregate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	summary, err := h.aggregator.Aggregate(c.Request.Context(), req.ToAggregationItems(), req.PrimaryCurrency)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Aggregation failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Aggregation rejected", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToAggregateResponse(summary))
}
