package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
	"github.com/awtech/cashdesk/internal/middleware"
)

// roleRank orders roles by capability. A role satisfies a requirement when its
// rank is at least the required rank; REMOVED satisfies nothing.
var roleRank = map[domain.UserCompanyRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleApprover: 3,
	domain.RoleAdmin:    4,
}

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the company and membership service. It also backs
// the CompanyAuthorizerSvc capability check used by every other service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// AuthorizeUserAction checks that the user holds at least requiredRole in the
// company. A missing membership or a REMOVED role yields ErrForbidden.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	role, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user is not a member of this company", apperrors.ErrForbidden)
		}
		return err
	}

	have, ok := roleRank[role]
	need, okReq := roleRank[requiredRole]
	if !ok || !okReq || have < need {
		middleware.GetLoggerFromCtx(ctx).Warn("Authorization denied",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("role", string(role)),
			slog.String("required_role", string(requiredRole)))
		return fmt.Errorf("%w: role %s does not permit this action", apperrors.ErrForbidden, role)
	}
	return nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// CreateCompany creates a company and makes the creator its ADMIN.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:           uuid.NewString(),
		Name:                req.Name,
		ShortCode:           req.ShortCode,
		DefaultCurrencyCode: req.DefaultCurrencyCode,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, err
	}

	membership := domain.UserCompany{
		UserID:    creatorUserID,
		CompanyID: company.CompanyID,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
	}
	if err := s.companyRepo.AddUserToCompany(ctx, membership); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("short_code", company.ShortCode))
	return &company, nil
}

func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	return s.companyRepo.ListCompaniesByUser(ctx, userID)
}

// AddUserToCompany grants a role to another user. Admin only.
func (s *companyService) AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddMemberRequest) error {
	if err := s.AuthorizeUserAction(ctx, addingUserID, companyID, domain.RoleAdmin); err != nil {
		return err
	}

	membership := domain.UserCompany{
		UserID:    req.UserID,
		CompanyID: companyID,
		Role:      req.Role,
		JoinedAt:  time.Now().UTC(),
	}
	return s.companyRepo.AddUserToCompany(ctx, membership)
}

// SetLockDate closes the accounting period up to the given date. The lock
// date can only move forward.
func (s *companyService) SetLockDate(ctx context.Context, userID, companyID string, req dto.SetLockDateRequest) (*domain.Company, error) {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.LockDate != nil && !req.LockDate.After(*company.LockDate) {
		return nil, fmt.Errorf("%w: lock date can only move forward", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.companyRepo.UpdateCompanyLockDate(ctx, companyID, req.LockDate, userID, now); err != nil {
		return nil, err
	}

	lockDate := req.LockDate
	company.LockDate = &lockDate
	company.LastUpdatedAt = now
	company.LastUpdatedBy = userID
	return company, nil
}
