package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceSheetService groups resolved balances into type-groups within the
// four balance groups.
type balanceSheetService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	assetRepo    portsrepo.AssetRepository
	taxonomyRepo portsrepo.TaxonomyRepository
	balanceSvc   portssvc.BalanceSvc
}

// NewBalanceSheetService creates a new balance sheet service.
func NewBalanceSheetService(
	accountRepo portsrepo.AccountRepository,
	assetRepo portsrepo.AssetRepository,
	taxonomyRepo portsrepo.TaxonomyRepository,
	balanceSvc portssvc.BalanceSvc,
) portssvc.BalanceSheetSvc {
	return &balanceSheetService{
		accountRepo:  accountRepo,
		assetRepo:    assetRepo,
		taxonomyRepo: taxonomyRepo,
		balanceSvc:   balanceSvc,
	}
}

var _ portssvc.BalanceSheetSvc = (*balanceSheetService)(nil)

// groupKey identifies a type-group within a balance group.
type groupKey struct {
	balanceGroup domain.BalanceGroup
	typeName     string
}

// BalanceSheet resolves every account and asset balance and groups them.
// All four balance groups are always emitted, empty ones with a zero total.
// Groups come out ordered by group id descending, type-groups and items by
// ascending balance so liabilities and the smallest balances surface first.
// Items flagged as excluded from net worth appear but never count toward a
// total.
func (s *balanceSheetService) BalanceSheet(ctx context.Context) ([]domain.BalanceSheetBalanceGroup, error) {
	accountTypeNames, assetTypeNames, err := s.typeNames(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[groupKey][]domain.BalanceSheetItem)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for balance sheet: %w", err)
	}
	for _, account := range accounts {
		balance, err := s.balanceSvc.AccountBalance(ctx, account, nil)
		if err != nil {
			return nil, err
		}
		key := groupKey{account.BalanceGroup, typeNameOrOther(accountTypeNames, account.AccountTypeID)}
		buckets[key] = append(buckets[key], domain.BalanceSheetItem{
			Name:                   account.Name,
			Balance:                balance,
			IsExcludedFromNetWorth: account.IsExcludedFromNetWorth,
		})
	}

	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for balance sheet: %w", err)
	}
	for _, asset := range assets {
		balance, err := s.balanceSvc.AssetBalance(ctx, asset, nil)
		if err != nil {
			return nil, err
		}
		key := groupKey{asset.BalanceGroup, typeNameOrOther(assetTypeNames, asset.AssetTypeID)}
		buckets[key] = append(buckets[key], domain.BalanceSheetItem{
			Name:                   asset.Name,
			Balance:                balance,
			IsExcludedFromNetWorth: asset.IsExcludedFromNetWorth,
		})
	}

	groups := s.assemble(buckets)

	s.LogInfo(ctx, "Balance sheet generated",
		slog.Int("account_count", len(accounts)),
		slog.Int("asset_count", len(assets)),
	)
	return groups, nil
}

func (s *balanceSheetService) typeNames(ctx context.Context) (map[int64]string, map[int64]string, error) {
	accountTypes, err := s.taxonomyRepo.ListAccountTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list account types: %w", err)
	}
	assetTypes, err := s.taxonomyRepo.ListAssetTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list asset types: %w", err)
	}

	accountNames := make(map[int64]string, len(accountTypes))
	for _, t := range accountTypes {
		accountNames[t.AccountTypeID] = t.Name
	}
	assetNames := make(map[int64]string, len(assetTypes))
	for _, t := range assetTypes {
		assetNames[t.AssetTypeID] = t.Name
	}
	return accountNames, assetNames, nil
}

func typeNameOrOther(names map[int64]string, typeID int64) string {
	if name, ok := names[typeID]; ok {
		return name
	}
	return "Other"
}

func (s *balanceSheetService) assemble(buckets map[groupKey][]domain.BalanceSheetItem) []domain.BalanceSheetBalanceGroup {
	byGroup := make(map[domain.BalanceGroup][]domain.BalanceSheetTypeGroup)
	for key, items := range buckets {
		sort.Slice(items, func(i, j int) bool {
			return items[i].Balance.LessThan(items[j].Balance)
		})

		total := decimal.Zero
		for _, item := range items {
			if item.IsExcludedFromNetWorth {
				continue
			}
			total = total.Add(item.Balance)
		}

		byGroup[key.balanceGroup] = append(byGroup[key.balanceGroup], domain.BalanceSheetTypeGroup{
			TypeName: key.typeName,
			Total:    total,
			Items:    items,
		})
	}

	groups := make([]domain.BalanceSheetBalanceGroup, 0, len(domain.AllBalanceGroups))
	// Balance groups are emitted in descending id order.
	for i := len(domain.AllBalanceGroups) - 1; i >= 0; i-- {
		balanceGroup := domain.AllBalanceGroups[i]
		typeGroups := byGroup[balanceGroup]
		if typeGroups == nil {
			typeGroups = []domain.BalanceSheetTypeGroup{}
		}
		sort.Slice(typeGroups, func(a, b int) bool {
			return typeGroups[a].Total.LessThan(typeGroups[b].Total)
		})

		total := decimal.Zero
		for _, tg := range typeGroups {
			total = total.Add(tg.Total)
		}

		groups = append(groups, domain.BalanceSheetBalanceGroup{
			BalanceGroup: balanceGroup,
			Label:        balanceGroup.String(),
			Total:        total,
			TypeGroups:   typeGroups,
		})
	}
	return groups
}
