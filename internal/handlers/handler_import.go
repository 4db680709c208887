package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/dto"
	"github.com/finbase/finledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

const invalidLedgerFileMsg = "The ledger file provided is invalid"

// importHandler handles HTTP requests for ledger file imports.
type importHandler struct {
	importService portssvc.ImportSvc
}

// newImportHandler creates a new importHandler.
func newImportHandler(is portssvc.ImportSvc) *importHandler {
	return &importHandler{
		importService: is,
	}
}

// registerImportRoutes registers the import endpoint behind a rate limit.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc, limiterInstance *limiter.Limiter) {
	h := newImportHandler(importService)

	rg.POST("/import", middleware.RateLimit(limiterInstance), h.importLedgerFile)
}

// importLedgerFile merges an uploaded ledger file into the persisted ledger.
// The response status is always 200: partial progress survives failures
// because every write is idempotent, so the summary plus an error message is
// more useful to the caller than a bare 4xx/5xx.
func (h *importHandler) importLedgerFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var payload dto.LedgerFilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn("Failed to bind ledger file payload", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.ToImportSummaryResponse(domain.NewImportSummary(), invalidLedgerFileMsg))
		return
	}

	logger.Info("Received ledger file",
		slog.Int("accounts", len(payload.Accounts)),
		slog.Int("assets", len(payload.Assets)))

	summary, err := h.importService.ImportLedgerFile(c.Request.Context(), payload)
	if err != nil {
		errMsg := err.Error()
		if errors.Is(err, apperrors.ErrValidation) {
			errMsg = invalidLedgerFileMsg
		}
		logger.Error("Ledger file import failed", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.ToImportSummaryResponse(summary, errMsg))
		return
	}

	logger.Info("Ledger file imported successfully")
	c.JSON(http.StatusOK, dto.ToImportSummaryResponse(summary, ""))
}
