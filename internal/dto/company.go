package dto

import (
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// CreateCompanyRequest defines the payload for creating a company.
type CreateCompanyRequest struct {
	Name                string `json:"name" binding:"required"`
	ShortCode           string `json:"shortCode" binding:"required,max=8"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"required,len=3"`
}

// AddMemberRequest defines the payload for adding a user to a company.
type AddMemberRequest struct {
	UserID string                 `json:"userID" binding:"required"`
	Role   domain.UserCompanyRole `json:"role" binding:"required,oneof=ADMIN APPROVER MEMBER READONLY"`
}

// SetLockDateRequest defines the payload for closing an accounting period.
type SetLockDateRequest struct {
	LockDate time.Time `json:"lockDate" binding:"required"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID           string     `json:"companyID"`
	Name                string     `json:"name"`
	ShortCode           string     `json:"shortCode"`
	DefaultCurrencyCode string     `json:"defaultCurrencyCode"`
	LockDate            *time.Time `json:"lockDate,omitempty"`
	IsActive            bool       `json:"isActive"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// ListCompaniesResponse wraps the list of companies visible to a user.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:           c.CompanyID,
		Name:                c.Name,
		ShortCode:           c.ShortCode,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		LockDate:            c.LockDate,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
	}
}

// ToListCompaniesResponse converts a slice of domain.Company to the list DTO.
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: responses}
}
