package services

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/dto"
)

// AccountSvcFacade manages the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, companyID, accountID string, userID string) error
}
