package services

import (
	"context"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/finbase/finledger/internal/dto"
)

// ImportSvc merges an externally supplied ledger file into the persisted
// ledger. The returned summary is never nil: on failure it carries whatever
// accumulated before the error, since writes are idempotent and re-imports
// are safe.
type ImportSvc interface {
	ImportLedgerFile(ctx context.Context, payload dto.LedgerFilePayload) (*domain.ImportSummary, error)
}
