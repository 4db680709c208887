package dto

import (
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse is the JSON shape of an account, timestamps as epoch
// seconds.
type AccountResponse struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Institution            string `json:"institution,omitempty"`
	BalanceGroup           int    `json:"balanceGroup"`
	IsAutoCalculated       bool   `json:"isAutoCalculated"`
	IsClosed               bool   `json:"isClosed"`
	IsExcludedFromNetWorth bool   `json:"isExcludedFromNetWorth"`
	AccountTypeID          int64  `json:"accountTypeId"`
	CreatedAt              int64  `json:"createdAt"`
	UpdatedAt              int64  `json:"updatedAt"`
}

// AssetResponse is the JSON shape of an asset.
type AssetResponse struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	BalanceGroup           int    `json:"balanceGroup"`
	IsSold                 bool   `json:"isSold"`
	Symbol                 string `json:"symbol,omitempty"`
	IsExcludedFromNetWorth bool   `json:"isExcludedFromNetWorth"`
	AssetTypeID            int64  `json:"assetTypeId"`
	CreatedAt              int64  `json:"createdAt"`
	UpdatedAt              int64  `json:"updatedAt"`
}

// BalanceResponse carries a resolved balance, with the as-of instant echoed
// back when one was requested.
type BalanceResponse struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
	AsOf    *int64          `json:"asOf,omitempty"`
}

// ToAccountResponse converts a domain account to its JSON shape.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:                     a.AccountID,
		Name:                   a.Name,
		Institution:            a.Institution,
		BalanceGroup:           int(a.BalanceGroup),
		IsAutoCalculated:       a.IsAutoCalculated,
		IsClosed:               a.IsClosed,
		IsExcludedFromNetWorth: a.IsExcludedFromNetWorth,
		AccountTypeID:          a.AccountTypeID,
		CreatedAt:              a.CreatedAt.Unix(),
		UpdatedAt:              a.UpdatedAt.Unix(),
	}
}

// ToAssetResponse converts a domain asset to its JSON shape.
func ToAssetResponse(a domain.Asset) AssetResponse {
	return AssetResponse{
		ID:                     a.AssetID,
		Name:                   a.Name,
		BalanceGroup:           int(a.BalanceGroup),
		IsSold:                 a.IsSold,
		Symbol:                 a.Symbol,
		IsExcludedFromNetWorth: a.IsExcludedFromNetWorth,
		AssetTypeID:            a.AssetTypeID,
		CreatedAt:              a.CreatedAt.Unix(),
		UpdatedAt:              a.UpdatedAt.Unix(),
	}
}

// ToBalanceResponse builds a balance response, echoing asOf as epoch seconds
// when present.
func ToBalanceResponse(id int64, balance decimal.Decimal, asOf *time.Time) BalanceResponse {
	resp := BalanceResponse{ID: id, Balance: balance}
	if asOf != nil {
		epoch := asOf.Unix()
		resp.AsOf = &epoch
	}
	return resp
}
