package services

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/dto"
)

// CompanyAuthorizerSvc is the capability check consumed by other services.
// AuthorizeUserAction returns ErrForbidden when the user's role in the
// company does not satisfy requiredRole, ErrNotFound for unknown companies.
type CompanyAuthorizerSvc interface {
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error
}

// CompanyReaderSvc exposes read-only company lookup to other services.
type CompanyReaderSvc interface {
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// CompanySvcFacade manages companies and memberships.
type CompanySvcFacade interface {
	CompanyAuthorizerSvc
	CompanyReaderSvc
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)
	AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddMemberRequest) error
	// SetLockDate closes the accounting period up to the given date. Admin only.
	SetLockDate(ctx context.Context, userID, companyID string, req dto.SetLockDateRequest) (*domain.Company, error)
}
