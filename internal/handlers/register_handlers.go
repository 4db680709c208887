package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerImportRoutes(v1, services.Import, newImportLimiter(cfg))
	registerBalanceSheetRoutes(v1, services.BalanceSheet)
	registerCashflowRoutes(v1, services.Cashflow)
	registerAccountRoutes(v1, services.Balance)
	registerAssetRoutes(v1, services.Balance)
}

// newImportLimiter builds the per-IP limiter guarding the import endpoint.
func newImportLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.ImportRateLimit)
	if err != nil {
		slog.Warn("Invalid IMPORT_RATE_LIMIT, falling back to 30-M", slog.String("value", cfg.ImportRateLimit))
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	return limiter.New(memory.NewStore(), rate)
}

// parseAsOfQuery reads an optional asOf query parameter holding epoch
// seconds. A missing parameter yields nil; a malformed one aborts with 400.
func parseAsOfQuery(c *gin.Context) (*time.Time, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return nil, true
	}
	epoch, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be epoch seconds"})
		return nil, false
	}
	asOf := time.Unix(epoch, 0).UTC()
	return &asOf, true
}
