package repositories

import (
	"context"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepositoryFacade defines persistence operations for the chart of accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, updatedBy string, updatedAt time.Time) error
}

// AccountRepositoryWithTx extends the account repository with operations that
// participate in a caller-managed database transaction. The journal repository
// uses these to lock and adjust balances atomically with line inserts.
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	// FindAccountsByIDsForUpdate locks the given account rows for the duration
	// of tx and returns them keyed by ID. Missing accounts yield ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	// UpdateAccountBalancesInTx applies signed balance deltas within tx.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error
}
