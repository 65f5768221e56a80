package models

import "time"

// Company is the database representation of a company.
type Company struct {
	CompanyID           string     `db:"company_id"`
	Name                string     `db:"name"`
	ShortCode           string     `db:"short_code"`
	DefaultCurrencyCode string     `db:"default_currency_code"`
	LockDate            *time.Time `db:"lock_date"`
	IsActive            bool       `db:"is_active"`
	AuditFields
}

// UserCompany is the database representation of a company membership.
type UserCompany struct {
	UserID    string    `db:"user_id"`
	CompanyID string    `db:"company_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}
