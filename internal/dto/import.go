package dto

import (
	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerFilePayload is the external ledger-file format. All instants are
// epoch seconds; the import engine converts them at the boundary.
type LedgerFilePayload struct {
	Accounts []LedgerAccount `json:"accounts" validate:"dive"`
	Assets   []LedgerAsset   `json:"assets" validate:"dive"`
}

// LedgerAccount describes one account in a ledger file, optionally carrying
// balance statements and transactions.
type LedgerAccount struct {
	Name              string                   `json:"name" validate:"required"`
	BalanceGroup      int                      `json:"balanceGroup" validate:"min=0,max=3"`
	IsAutoCalculated  bool                     `json:"isAutoCalculated"`
	IsClosed          bool                     `json:"isClosed"`
	Institution       string                   `json:"institution"`
	AccountTypeName   string                   `json:"accountTypeName" validate:"required"`
	BalanceStatements []LedgerBalanceStatement `json:"balanceStatements" validate:"dive"`
	Transactions      []LedgerTransaction      `json:"transactions" validate:"dive"`
}

// LedgerAsset describes one asset in a ledger file. Assets carry no
// transactions.
type LedgerAsset struct {
	Name              string                   `json:"name" validate:"required"`
	BalanceGroup      int                      `json:"balanceGroup" validate:"min=0,max=3"`
	IsSold            bool                     `json:"isSold"`
	Symbol            string                   `json:"symbol"`
	AssetTypeName     string                   `json:"assetTypeName" validate:"required"`
	BalanceStatements []LedgerBalanceStatement `json:"balanceStatements" validate:"dive"`
}

// LedgerBalanceStatement is a snapshot row in a ledger file. Quantity and
// cost only apply to asset statements.
type LedgerBalanceStatement struct {
	CreatedAt int64            `json:"createdAt" validate:"required"`
	Value     decimal.Decimal  `json:"value"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	Cost      *decimal.Decimal `json:"cost,omitempty"`
}

// LedgerTransaction is a transaction row in a ledger file.
type LedgerTransaction struct {
	CreatedAt    int64           `json:"createdAt"`
	Description  string          `json:"description" validate:"required"`
	Date         int64           `json:"date" validate:"required"`
	Value        decimal.Decimal `json:"value"`
	IsExcluded   bool            `json:"isExcluded"`
	IsPending    bool            `json:"isPending"`
	CategoryName string          `json:"categoryName"`
}

// SkippedStatementResponse echoes a deduplicated statement back to the
// caller.
type SkippedStatementResponse struct {
	CreatedAt int64           `json:"createdAt"`
	Value     decimal.Decimal `json:"value"`
}

// SkippedTransactionResponse echoes a deduplicated transaction back to the
// caller.
type SkippedTransactionResponse struct {
	AccountID   int64           `json:"accountId"`
	Description string          `json:"description"`
	Date        int64           `json:"date"`
	Value       decimal.Decimal `json:"value"`
}

// ImportedStatementsResponse mirrors domain.ImportedStatements.
type ImportedStatementsResponse struct {
	Created []int64                    `json:"created"`
	Skipped []SkippedStatementResponse `json:"skipped"`
}

// ImportedTransactionsResponse mirrors domain.ImportedTransactions.
type ImportedTransactionsResponse struct {
	Created []int64                      `json:"created"`
	Skipped []SkippedTransactionResponse `json:"skipped"`
}

// ImportedAccountsResponse mirrors domain.ImportedAccounts.
type ImportedAccountsResponse struct {
	Created           []int64                      `json:"created"`
	Updated           []int64                      `json:"updated"`
	Transactions      ImportedTransactionsResponse `json:"transactions"`
	BalanceStatements ImportedStatementsResponse   `json:"balanceStatements"`
}

// ImportedAssetsResponse mirrors domain.ImportedAssets.
type ImportedAssetsResponse struct {
	Created           []int64                    `json:"created"`
	Updated           []int64                    `json:"updated"`
	BalanceStatements ImportedStatementsResponse `json:"balanceStatements"`
}

// ImportSummaryResponse is the JSON shape returned by the import endpoint.
// Error is populated when the import failed; the rest of the summary still
// reflects whatever was written before the failure.
type ImportSummaryResponse struct {
	ImportedAccounts ImportedAccountsResponse `json:"importedAccounts"`
	ImportedAssets   ImportedAssetsResponse   `json:"importedAssets"`
	Error            string                   `json:"error,omitempty"`
}

// ToImportSummaryResponse converts a domain summary to its JSON shape,
// attaching the caller-facing error message when the import failed.
func ToImportSummaryResponse(summary *domain.ImportSummary, errMsg string) ImportSummaryResponse {
	resp := ImportSummaryResponse{
		ImportedAccounts: ImportedAccountsResponse{
			Created: summary.ImportedAccounts.Created,
			Updated: summary.ImportedAccounts.Updated,
			Transactions: ImportedTransactionsResponse{
				Created: summary.ImportedAccounts.Transactions.Created,
				Skipped: make([]SkippedTransactionResponse, len(summary.ImportedAccounts.Transactions.Skipped)),
			},
			BalanceStatements: toStatementsResponse(summary.ImportedAccounts.BalanceStatements),
		},
		ImportedAssets: ImportedAssetsResponse{
			Created:           summary.ImportedAssets.Created,
			Updated:           summary.ImportedAssets.Updated,
			BalanceStatements: toStatementsResponse(summary.ImportedAssets.BalanceStatements),
		},
		Error: errMsg,
	}
	for i, skipped := range summary.ImportedAccounts.Transactions.Skipped {
		resp.ImportedAccounts.Transactions.Skipped[i] = SkippedTransactionResponse{
			AccountID:   skipped.AccountID,
			Description: skipped.Description,
			Date:        skipped.Date.Unix(),
			Value:       skipped.Value,
		}
	}
	return resp
}

func toStatementsResponse(stmts domain.ImportedStatements) ImportedStatementsResponse {
	resp := ImportedStatementsResponse{
		Created: stmts.Created,
		Skipped: make([]SkippedStatementResponse, len(stmts.Skipped)),
	}
	for i, skipped := range stmts.Skipped {
		resp.Skipped[i] = SkippedStatementResponse{
			CreatedAt: skipped.CreatedAt.Unix(),
			Value:     skipped.Value,
		}
	}
	return resp
}
