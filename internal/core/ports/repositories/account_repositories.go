package repositories

import (
	"context"

	"github.com/finbase/finledger/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount persists a new account and returns its generated id.
	// A name collision surfaces as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)

	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByNameContains retrieves the first account whose name
	// contains the given fragment (case-sensitive), ordered by id.
	// Returns apperrors.ErrNotFound when nothing matches.
	FindAccountByNameContains(ctx context.Context, fragment string) (*domain.Account, error)

	// ListAccounts retrieves every account, ordered by name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
