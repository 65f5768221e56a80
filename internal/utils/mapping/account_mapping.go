package mapping

import (
	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:    a.AccountID,
		CompanyID:    a.CompanyID,
		Code:         a.Code,
		Name:         a.Name,
		AccountType:  models.AccountType(a.AccountType),
		CurrencyCode: a.CurrencyCode,
		Description:  a.Description,
		IsActive:     a.IsActive,
		Balance:      a.Balance,
		AuditFields:  ToModelAuditFields(a.AuditFields),
	}
}

// ToDomainAccount converts a database model to a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		CompanyID:    m.CompanyID,
		Code:         m.Code,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		CurrencyCode: m.CurrencyCode,
		Description:  m.Description,
		IsActive:     m.IsActive,
		Balance:      m.Balance,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
