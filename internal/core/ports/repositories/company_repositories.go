package repositories

import (
	"context"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies and memberships.
type CompanyRepositoryFacade interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompaniesByUser(ctx context.Context, userID string) ([]domain.Company, error)
	UpdateCompanyLockDate(ctx context.Context, companyID string, lockDate time.Time, updatedBy string, updatedAt time.Time) error

	AddUserToCompany(ctx context.Context, membership domain.UserCompany) error
	// FindUserCompanyRole returns ErrNotFound when the user is not a member.
	FindUserCompanyRole(ctx context.Context, userID, companyID string) (domain.UserCompanyRole, error)
}
