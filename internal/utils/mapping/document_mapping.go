package mapping

import (
	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/models"
)

// nullableID maps an unset account ID to NULL. Drafts may carry empty
// account IDs, but the account columns are UUIDs and reject "".
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func idOrEmpty(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// ToModelDocument converts a domain.Document to its database model.
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:      d.DocumentID,
		Reference:       d.Reference,
		DocType:         models.DocumentType(d.DocType),
		CompanyID:       d.CompanyID,
		Direction:       string(d.Direction),
		Amount:          d.Amount,
		DebitAccountID:  nullableID(d.DebitAccountID),
		CreditAccountID: nullableID(d.CreditAccountID),
		CounterpartyID:  d.CounterpartyID,
		Label:           d.Label,
		EntryDate:       d.EntryDate,
		Notes:           d.Notes,
		Status:          models.DocumentStatus(d.Status),
		PostedJournalID: d.PostedJournalID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a database model to a domain.Document.
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:      m.DocumentID,
		Reference:       m.Reference,
		DocType:         domain.DocumentType(m.DocType),
		CompanyID:       m.CompanyID,
		Direction:       domain.FlowDirection(m.Direction),
		Amount:          m.Amount,
		DebitAccountID:  idOrEmpty(m.DebitAccountID),
		CreditAccountID: idOrEmpty(m.CreditAccountID),
		CounterpartyID:  m.CounterpartyID,
		Label:           m.Label,
		EntryDate:       m.EntryDate,
		Notes:           m.Notes,
		Status:          domain.DocumentStatus(m.Status),
		PostedJournalID: m.PostedJournalID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDocumentEvent converts a domain.DocumentEvent to its database model.
func ToModelDocumentEvent(e domain.DocumentEvent) models.DocumentEvent {
	return models.DocumentEvent{
		EventID:    e.EventID,
		DocumentID: e.DocumentID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorID:    e.ActorID,
		JournalID:  e.JournalID,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

// ToDomainDocumentEvent converts a database model to a domain.DocumentEvent.
func ToDomainDocumentEvent(m models.DocumentEvent) domain.DocumentEvent {
	return domain.DocumentEvent{
		EventID:    m.EventID,
		DocumentID: m.DocumentID,
		FromStatus: domain.DocumentStatus(m.FromStatus),
		ToStatus:   domain.DocumentStatus(m.ToStatus),
		ActorID:    m.ActorID,
		JournalID:  m.JournalID,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}
