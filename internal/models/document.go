package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus mirrors domain.DocumentStatus at the persistence layer.
type DocumentStatus string

// DocumentType mirrors domain.DocumentType at the persistence layer.
type DocumentType string

// Document is the database representation of an approval document.
type Document struct {
	DocumentID      string          `db:"document_id"`
	Reference       string          `db:"reference"`
	DocType         DocumentType    `db:"doc_type"`
	CompanyID       string          `db:"company_id"`
	Direction       string          `db:"direction"`
	Amount          decimal.Decimal `db:"amount"`
	DebitAccountID  *string         `db:"debit_account_id"` // NULL while a draft has no account picked
	CreditAccountID *string         `db:"credit_account_id"`
	CounterpartyID  *string         `db:"counterparty_id"`
	Label           string          `db:"label"`
	EntryDate       time.Time       `db:"entry_date"`
	Notes           string          `db:"notes"`
	Status          DocumentStatus  `db:"status"`
	PostedJournalID *string         `db:"posted_journal_id"`
	AuditFields
}

// DocumentEvent is the database representation of one audit-trail entry.
type DocumentEvent struct {
	EventID    string    `db:"event_id"`
	DocumentID string    `db:"document_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	ActorID    string    `db:"actor_id"`
	JournalID  *string   `db:"journal_id"`
	Note       string    `db:"note"`
	CreatedAt  time.Time `db:"created_at"`
}
