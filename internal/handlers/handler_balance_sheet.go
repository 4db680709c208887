package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/dto"
	"github.com/finbase/finledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceSheetHandler handles HTTP requests for the balance sheet.
type balanceSheetHandler struct {
	balanceSheetService portssvc.BalanceSheetSvc
}

// newBalanceSheetHandler creates a new balanceSheetHandler.
func newBalanceSheetHandler(bs portssvc.BalanceSheetSvc) *balanceSheetHandler {
	return &balanceSheetHandler{
		balanceSheetService: bs,
	}
}

// registerBalanceSheetRoutes registers routes related to the balance sheet.
func registerBalanceSheetRoutes(rg *gin.RouterGroup, balanceSheetService portssvc.BalanceSheetSvc) {
	h := newBalanceSheetHandler(balanceSheetService)

	rg.GET("/balance-sheet", h.getBalanceSheet)
}

// getBalanceSheet returns every account and asset grouped by balance group
// and type, with current balances resolved.
func (h *balanceSheetHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.balanceSheetService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build balance sheet"})
		return
	}

	logger.Info("Balance sheet built", slog.Int("groups", len(groups)))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(groups))
}
