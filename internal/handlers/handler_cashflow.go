package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/dto"
	"github.com/finbase/finledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashflowHandler handles HTTP requests for cashflow aggregation.
type cashflowHandler struct {
	cashflowService portssvc.CashflowSvc
}

// newCashflowHandler creates a new cashflowHandler.
func newCashflowHandler(cs portssvc.CashflowSvc) *cashflowHandler {
	return &cashflowHandler{
		cashflowService: cs,
	}
}

// registerCashflowRoutes registers routes related to cashflow.
func registerCashflowRoutes(rg *gin.RouterGroup, cashflowService portssvc.CashflowSvc) {
	h := newCashflowHandler(cashflowService)

	rg.GET("/cashflow", h.getCashflow)
}

// getCashflow aggregates transactions into calendar-month buckets. The
// optional periods query selects the window length (default 13); the optional
// asOf query anchors the window to an instant other than now.
func (h *cashflowHandler) getCashflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	periodCount := 0
	if raw := c.Query("periods"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "periods must be an integer"})
			return
		}
		periodCount = parsed
	}

	asOf, ok := parseAsOfQuery(c)
	if !ok {
		return
	}
	referenceDate := time.Now().UTC()
	if asOf != nil {
		referenceDate = *asOf
	}

	cashflow, err := h.cashflowService.Cashflow(c.Request.Context(), periodCount, referenceDate)
	if err != nil {
		logger.Error("Failed to compute cashflow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cashflow"})
		return
	}

	logger.Info("Cashflow computed", slog.Int("periods", len(cashflow.Periods)))
	c.JSON(http.StatusOK, dto.ToCashflowResponse(cashflow))
}
