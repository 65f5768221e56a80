package mapping

import (
	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/models"
)

// ToModelCompany converts a domain.Company to its database model.
func ToModelCompany(c domain.Company) models.Company {
	return models.Company{
		CompanyID:           c.CompanyID,
		Name:                c.Name,
		ShortCode:           c.ShortCode,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		LockDate:            c.LockDate,
		IsActive:            c.IsActive,
		AuditFields:         ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainCompany converts a database model to a domain.Company.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:           m.CompanyID,
		Name:                m.Name,
		ShortCode:           m.ShortCode,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		LockDate:            m.LockDate,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
