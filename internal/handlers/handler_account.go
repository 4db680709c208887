package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finbase/finledger/internal/apperrors"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/dto"
	"github.com/finbase/finledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	balanceService portssvc.BalanceSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(bs portssvc.BalanceSvc) *accountHandler {
	return &accountHandler{
		balanceService: bs,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := newAccountHandler(balanceService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID/balance", h.getAccountBalance)
	}
}

// listAccounts retrieves every account ordered by name.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.balanceService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = dto.ToAccountResponse(account)
	}

	logger.Info("Accounts listed", slog.Int("count", len(responses)))
	c.JSON(http.StatusOK, responses)
}

// getAccountBalance resolves the account's balance, optionally as of the
// instant given by the asOf query parameter (epoch seconds).
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID must be an integer"})
		return
	}

	asOf, ok := parseAsOfQuery(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("account_id", accountID))

	account, err := h.balanceService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	balance, err := h.balanceService.AccountBalance(c.Request.Context(), *account, asOf)
	if err != nil {
		logger.Error("Failed to resolve account balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve account balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(accountID, balance, asOf))
}
