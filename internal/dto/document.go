package dto

import (
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDocumentRequest defines the payload for creating an approval document.
type CreateDocumentRequest struct {
	DocType         domain.DocumentType  `json:"docType" binding:"required"`
	Direction       domain.FlowDirection `json:"direction"` // Defaults per document type when omitted
	Amount          decimal.Decimal      `json:"amount" binding:"required"`
	DebitAccountID  string               `json:"debitAccountID"`
	CreditAccountID string               `json:"creditAccountID"`
	CounterpartyID  *string              `json:"counterpartyID"`
	Label           string               `json:"label"`
	EntryDate       time.Time            `json:"entryDate" binding:"required"`
	Notes           string               `json:"notes"`
}

// UpdateDocumentRequest defines the fields that may change on a draft document.
// Pointers differentiate omitted fields from zero values.
type UpdateDocumentRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	DebitAccountID  *string          `json:"debitAccountID"`
	CreditAccountID *string          `json:"creditAccountID"`
	CounterpartyID  *string          `json:"counterpartyID"`
	Label           *string          `json:"label"`
	EntryDate       *time.Time       `json:"entryDate"`
	Notes           *string          `json:"notes"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	DocType   string `form:"docType"`
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID      string          `json:"documentID"`
	Reference       string          `json:"reference"`
	DocType         string          `json:"docType"`
	CompanyID       string          `json:"companyID"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	CounterpartyID  *string         `json:"counterpartyID"`
	Label           string          `json:"label"`
	EntryDate       time.Time       `json:"entryDate"`
	Notes           string          `json:"notes"`
	Status          string          `json:"status"`
	StatusLabel     string          `json:"statusLabel"`
	PostedJournalID *string         `json:"postedJournalID"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ListDocumentsResponse wraps a page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// DocumentEventResponse defines the data returned for one audit-trail entry.
type DocumentEventResponse struct {
	EventID    string    `json:"eventID"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ActorID    string    `json:"actorID"`
	JournalID  *string   `json:"journalID,omitempty"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:      d.DocumentID,
		Reference:       d.Reference,
		DocType:         string(d.DocType),
		CompanyID:       d.CompanyID,
		Direction:       string(d.Direction),
		Amount:          d.Amount,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		CounterpartyID:  d.CounterpartyID,
		Label:           d.Label,
		EntryDate:       d.EntryDate,
		Notes:           d.Notes,
		Status:          string(d.Status),
		StatusLabel:     d.StatusLabel(),
		PostedJournalID: d.PostedJournalID,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDocumentResponses converts a slice of domain.Document to []DocumentResponse.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		responses[i] = ToDocumentResponse(&d)
	}
	return responses
}

// ToDocumentEventResponse converts a domain.DocumentEvent to its DTO.
func ToDocumentEventResponse(e *domain.DocumentEvent) DocumentEventResponse {
	return DocumentEventResponse{
		EventID:    e.EventID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorID:    e.ActorID,
		JournalID:  e.JournalID,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}
