package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid checks if the account type is one of the defined types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account is one entry in a company's chart of accounts.
type Account struct {
	AccountID    string          `json:"accountID"` // Primary key (UUID)
	CompanyID    string          `json:"companyID"`
	Code         string          `json:"code"` // Chart code, unique per company
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"` // Archived accounts cannot be posted to
	Balance      decimal.Decimal `json:"balance"`  // Persisted balance, maintained on posting
	AuditFields
}
