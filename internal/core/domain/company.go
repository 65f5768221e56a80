package domain

import "time"

// Company is an isolated organizational unit owning accounts, documents and journals.
type Company struct {
	CompanyID           string     `json:"companyID"` // Primary key (UUID)
	Name                string     `json:"name"`
	ShortCode           string     `json:"shortCode"` // Used as the reference prefix, e.g. "C01"
	DefaultCurrencyCode string     `json:"defaultCurrencyCode"`
	LockDate            *time.Time `json:"lockDate"` // Postings on or before this date are rejected
	IsActive            bool       `json:"isActive"`
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleApprover UserCompanyRole = "APPROVER" // May execute approve() on documents
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED"
)

// UserCompany represents the membership of a User in a Company.
type UserCompany struct {
	UserID    string          `json:"userID"`
	UserName  string          `json:"userName"`
	CompanyID string          `json:"companyID"`
	Role      UserCompanyRole `json:"role"`
	JoinedAt  time.Time       `json:"joinedAt"`
}
