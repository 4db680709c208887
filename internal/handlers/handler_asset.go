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

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	balanceService portssvc.BalanceSvc
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(bs portssvc.BalanceSvc) *assetHandler {
	return &assetHandler{
		balanceService: bs,
	}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := newAssetHandler(balanceService)

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.GET("/:assetID/balance", h.getAssetBalance)
	}
}

// listAssets retrieves every asset ordered by name.
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.balanceService.ListAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	responses := make([]dto.AssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = dto.ToAssetResponse(asset)
	}

	logger.Info("Assets listed", slog.Int("count", len(responses)))
	c.JSON(http.StatusOK, responses)
}

// getAssetBalance resolves the asset's balance, optionally as of the instant
// given by the asOf query parameter (epoch seconds).
func (h *assetHandler) getAssetBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetID, err := strconv.ParseInt(c.Param("assetID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assetID must be an integer"})
		return
	}

	asOf, ok := parseAsOfQuery(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("asset_id", assetID))

	asset, err := h.balanceService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get asset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		}
		return
	}

	balance, err := h.balanceService.AssetBalance(c.Request.Context(), *asset, asOf)
	if err != nil {
		logger.Error("Failed to resolve asset balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve asset balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(assetID, balance, asOf))
}
