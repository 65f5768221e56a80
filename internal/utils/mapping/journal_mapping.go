package mapping

import (
	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/models"
)

// ToModelJournal converts a domain.Journal to its database model.
func ToModelJournal(j domain.Journal) models.Journal {
	return models.Journal{
		JournalID:          j.JournalID,
		CompanyID:          j.CompanyID,
		JournalDate:        j.JournalDate,
		Reference:          j.Reference,
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		Status:             models.JournalStatus(j.Status),
		Amount:             j.Amount,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		AuditFields:        ToModelAuditFields(j.AuditFields),
	}
}

// ToDomainJournal converts a database model to a domain.Journal.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:          m.JournalID,
		CompanyID:          m.CompanyID,
		JournalDate:        m.JournalDate,
		Reference:          m.Reference,
		Description:        m.Description,
		CurrencyCode:       m.CurrencyCode,
		Status:             domain.JournalStatus(m.Status),
		Amount:             m.Amount,
		OriginalJournalID:  m.OriginalJournalID,
		ReversingJournalID: m.ReversingJournalID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain.JournalLine to its database model.
func ToModelJournalLine(l domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         l.LineID,
		JournalID:      l.JournalID,
		AccountID:      l.AccountID,
		Amount:         l.Amount,
		LineType:       string(l.LineType),
		CurrencyCode:   l.CurrencyCode,
		Description:    l.Description,
		PartyID:        l.PartyID,
		RunningBalance: l.RunningBalance,
		AuditFields:    ToModelAuditFields(l.AuditFields),
	}
}

// ToDomainJournalLine converts a database model to a domain.JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		JournalID:      m.JournalID,
		AccountID:      m.AccountID,
		Amount:         m.Amount,
		LineType:       domain.LineType(m.LineType),
		CurrencyCode:   m.CurrencyCode,
		Description:    m.Description,
		PartyID:        m.PartyID,
		RunningBalance: m.RunningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
