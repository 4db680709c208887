package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/dto"
	"github.com/finbase/finledger/internal/utils"
	"github.com/finbase/finledger/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
)

// importService merges a ledger-file payload into the persisted ledger.
//
// The engine never overwrites matched accounts or assets, treats duplicate
// balance statements as expected skips, and dedups transactions against the
// TransactionImport shadow table first and the transactions table second.
// Processing is strictly sequential: later duplicate checks depend on rows
// written earlier in the same run. Nothing is rolled back on failure because
// a re-run of the same payload is idempotent.
type importService struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	assetRepo     portsrepo.AssetRepository
	statementRepo portsrepo.StatementRepository
	txnRepo       portsrepo.TransactionRepository
	taxonomy      portssvc.TaxonomySvc
	validate      *validator.Validate
}

// NewImportService creates a new import service.
func NewImportService(
	accountRepo portsrepo.AccountRepository,
	assetRepo portsrepo.AssetRepository,
	statementRepo portsrepo.StatementRepository,
	txnRepo portsrepo.TransactionRepository,
	taxonomy portssvc.TaxonomySvc,
) portssvc.ImportSvc {
	return &importService{
		accountRepo:   accountRepo,
		assetRepo:     assetRepo,
		statementRepo: statementRepo,
		txnRepo:       txnRepo,
		taxonomy:      taxonomy,
		validate:      validator.New(),
	}
}

var _ portssvc.ImportSvc = (*importService)(nil)

// ImportLedgerFile imports the payload and returns a summary of what was
// created, updated and skipped. The summary is returned alongside any error
// so callers can report partial progress.
func (s *importService) ImportLedgerFile(ctx context.Context, payload dto.LedgerFilePayload) (*domain.ImportSummary, error) {
	summary := domain.NewImportSummary()

	if err := s.validate.Struct(payload); err != nil {
		return summary, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	for _, account := range payload.Accounts {
		if err := s.importAccount(ctx, account, summary); err != nil {
			return summary, err
		}
	}
	for _, asset := range payload.Assets {
		if err := s.importAsset(ctx, asset, summary); err != nil {
			return summary, err
		}
	}

	s.LogInfo(ctx, "Ledger file imported",
		slog.Int("accounts_created", len(summary.ImportedAccounts.Created)),
		slog.Int("accounts_updated", len(summary.ImportedAccounts.Updated)),
		slog.Int("transactions_created", len(summary.ImportedAccounts.Transactions.Created)),
		slog.Int("transactions_skipped", len(summary.ImportedAccounts.Transactions.Skipped)),
		slog.Int("assets_created", len(summary.ImportedAssets.Created)),
		slog.Int("assets_updated", len(summary.ImportedAssets.Updated)),
	)
	return summary, nil
}

func (s *importService) importAccount(ctx context.Context, account dto.LedgerAccount, summary *domain.ImportSummary) error {
	accountID, err := s.matchOrCreateAccount(ctx, account, summary)
	if err != nil {
		return err
	}

	for _, stmt := range account.BalanceStatements {
		statementID, err := s.statementRepo.SaveAccountStatement(ctx, domain.AccountBalanceStatement{
			AccountID: accountID,
			Value:     stmt.Value,
			CreatedAt: time.Unix(stmt.CreatedAt, 0).UTC(),
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				summary.ImportedAccounts.BalanceStatements.Skipped = append(summary.ImportedAccounts.BalanceStatements.Skipped, domain.SkippedStatement{
					CreatedAt: time.Unix(stmt.CreatedAt, 0).UTC(),
					Value:     stmt.Value,
				})
				continue
			}
			return fmt.Errorf("failed to save balance statement for account %d: %w", accountID, err)
		}
		summary.ImportedAccounts.BalanceStatements.Created = append(summary.ImportedAccounts.BalanceStatements.Created, statementID)
	}

	// Only accounts that shipped statements or transactions get transaction
	// processing at all.
	if len(account.BalanceStatements) == 0 && len(account.Transactions) == 0 {
		return nil
	}

	for _, txn := range account.Transactions {
		if err := s.importTransaction(ctx, accountID, txn, summary); err != nil {
			return err
		}
	}
	return nil
}

// matchOrCreateAccount finds an existing account whose name contains the
// payload name, or creates one. Matched accounts keep all their attributes;
// import never overwrites them.
func (s *importService) matchOrCreateAccount(ctx context.Context, account dto.LedgerAccount, summary *domain.ImportSummary) (int64, error) {
	existing, err := s.accountRepo.FindAccountByNameContains(ctx, account.Name)
	if err == nil {
		summary.ImportedAccounts.Updated = append(summary.ImportedAccounts.Updated, existing.AccountID)
		return existing.AccountID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return 0, fmt.Errorf("failed to match account %q: %w", account.Name, err)
	}

	typeID, err := s.taxonomy.ResolveAccountTypeID(ctx, account.AccountTypeName)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	accountID, err := s.accountRepo.SaveAccount(ctx, domain.Account{
		Name:             account.Name,
		Institution:      account.Institution,
		BalanceGroup:     domain.BalanceGroup(account.BalanceGroup),
		IsAutoCalculated: account.IsAutoCalculated,
		IsClosed:         account.IsClosed,
		AccountTypeID:    typeID,
		AuditFields:      domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create account %q: %w", account.Name, err)
	}
	summary.ImportedAccounts.Created = append(summary.ImportedAccounts.Created, accountID)
	return accountID, nil
}

// importTransaction writes one transaction unless it is a duplicate. The
// dedup key is (account, normalized description, UTC calendar day, value),
// checked first against the import shadow table and then against the
// transactions table for rows created outside the import path.
func (s *importService) importTransaction(ctx context.Context, accountID int64, txn dto.LedgerTransaction, summary *domain.ImportSummary) error {
	description := utils.NormalizeDescription(txn.Description)
	day := accounting.DayUTC(time.Unix(txn.Date, 0))
	dayEnd := day.AddDate(0, 0, 1)

	dup, err := s.txnRepo.HasTransactionImportMatch(ctx, accountID, description, txn.Value, day, dayEnd)
	if err != nil {
		return fmt.Errorf("failed to check transaction import match: %w", err)
	}
	if !dup {
		dup, err = s.txnRepo.HasTransactionMatch(ctx, accountID, description, txn.Value, day, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to check transaction match: %w", err)
		}
	}
	if dup {
		summary.ImportedAccounts.Transactions.Skipped = append(summary.ImportedAccounts.Transactions.Skipped, domain.SkippedTransaction{
			AccountID:   accountID,
			Description: description,
			Date:        day,
			Value:       txn.Value,
		})
		return nil
	}

	categoryID, err := s.taxonomy.ResolveCategoryID(ctx, txn.CategoryName)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := now
	if txn.CreatedAt != 0 {
		createdAt = time.Unix(txn.CreatedAt, 0).UTC()
	}
	transactionID, err := s.txnRepo.SaveTransaction(ctx, domain.Transaction{
		AccountID:   accountID,
		Description: description,
		Date:        day,
		Value:       txn.Value,
		IsExcluded:  txn.IsExcluded,
		IsPending:   txn.IsPending,
		CategoryID:  categoryID,
		AuditFields: domain.AuditFields{CreatedAt: createdAt, UpdatedAt: now},
	})
	if err != nil {
		return fmt.Errorf("failed to save transaction %q: %w", description, err)
	}

	if err := s.txnRepo.SaveTransactionImport(ctx, domain.TransactionImport{
		TransactionID: transactionID,
		AccountID:     accountID,
		Description:   description,
		Date:          day,
		Value:         txn.Value,
		CategoryName:  txn.CategoryName,
	}); err != nil {
		return fmt.Errorf("failed to save transaction import record: %w", err)
	}

	summary.ImportedAccounts.Transactions.Created = append(summary.ImportedAccounts.Transactions.Created, transactionID)
	return nil
}

func (s *importService) importAsset(ctx context.Context, asset dto.LedgerAsset, summary *domain.ImportSummary) error {
	assetID, err := s.matchOrCreateAsset(ctx, asset, summary)
	if err != nil {
		return err
	}

	for _, stmt := range asset.BalanceStatements {
		statementID, err := s.statementRepo.SaveAssetStatement(ctx, domain.AssetBalanceStatement{
			AssetID:   assetID,
			Value:     stmt.Value,
			Quantity:  stmt.Quantity,
			Cost:      stmt.Cost,
			CreatedAt: time.Unix(stmt.CreatedAt, 0).UTC(),
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				summary.ImportedAssets.BalanceStatements.Skipped = append(summary.ImportedAssets.BalanceStatements.Skipped, domain.SkippedStatement{
					CreatedAt: time.Unix(stmt.CreatedAt, 0).UTC(),
					Value:     stmt.Value,
				})
				continue
			}
			return fmt.Errorf("failed to save balance statement for asset %d: %w", assetID, err)
		}
		summary.ImportedAssets.BalanceStatements.Created = append(summary.ImportedAssets.BalanceStatements.Created, statementID)
	}
	return nil
}

func (s *importService) matchOrCreateAsset(ctx context.Context, asset dto.LedgerAsset, summary *domain.ImportSummary) (int64, error) {
	existing, err := s.assetRepo.FindAssetByNameContains(ctx, asset.Name)
	if err == nil {
		summary.ImportedAssets.Updated = append(summary.ImportedAssets.Updated, existing.AssetID)
		return existing.AssetID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return 0, fmt.Errorf("failed to match asset %q: %w", asset.Name, err)
	}

	typeID, err := s.taxonomy.ResolveAssetTypeID(ctx, asset.AssetTypeName)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	assetID, err := s.assetRepo.SaveAsset(ctx, domain.Asset{
		Name:         asset.Name,
		BalanceGroup: domain.BalanceGroup(asset.BalanceGroup),
		IsSold:       asset.IsSold,
		Symbol:       asset.Symbol,
		AssetTypeID:  typeID,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create asset %q: %w", asset.Name, err)
	}
	summary.ImportedAssets.Created = append(summary.ImportedAssets.Created, assetID)
	return assetID, nil
}
