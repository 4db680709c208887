package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	"github.com/finbase/finledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, institution, balance_group, is_auto_calculated, is_closed, is_excluded_from_net_worth, account_type_id, created_at, updated_at`

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:              m.AccountID,
		Name:                   m.Name,
		Institution:            m.Institution,
		BalanceGroup:           domain.BalanceGroup(m.BalanceGroup),
		IsAutoCalculated:       m.IsAutoCalculated,
		IsClosed:               m.IsClosed,
		IsExcludedFromNetWorth: m.IsExcludedFromNetWorth,
		AccountTypeID:          m.AccountTypeID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	var institution sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&institution,
		&m.BalanceGroup,
		&m.IsAutoCalculated,
		&m.IsClosed,
		&m.IsExcludedFromNetWorth,
		&m.AccountTypeID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	if institution.Valid {
		m.Institution = institution.String
	}
	return toDomainAccount(m), nil
}

// SaveAccount inserts a new account and returns its generated id. The unique
// constraint on name maps to apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	query := `
		INSERT INTO accounts (name, institution, balance_group, is_auto_calculated, is_closed, is_excluded_from_net_worth, account_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING account_id;
	`
	var institution sql.NullString
	if account.Institution != "" {
		institution = sql.NullString{String: account.Institution, Valid: true}
	}

	var accountID int64
	err := r.Pool.QueryRow(ctx, query,
		account.Name,
		institution,
		int16(account.BalanceGroup),
		account.IsAutoCalculated,
		account.IsClosed,
		account.IsExcludedFromNetWorth,
		account.AccountTypeID,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&accountID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, account.Name)
		}
		return 0, fmt.Errorf("failed to save account %q: %w", account.Name, err)
	}
	return accountID, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}
	return &account, nil
}

// FindAccountByNameContains retrieves the first account whose name contains
// the given fragment. strpos is case-sensitive and needs no pattern
// escaping, unlike LIKE.
func (r *PgxAccountRepository) FindAccountByNameContains(ctx context.Context, fragment string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE strpos(name, $1) > 0
		ORDER BY account_id
		LIMIT 1;
	`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, fragment))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account matching %q: %w", fragment, err)
	}
	return &account, nil
}

// ListAccounts retrieves every account ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
