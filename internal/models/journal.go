package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus mirrors domain.JournalStatus at the persistence layer.
type JournalStatus string

// Journal is the database representation of a posted journal entry.
type Journal struct {
	JournalID          string          `db:"journal_id"`
	CompanyID          string          `db:"company_id"`
	JournalDate        time.Time       `db:"journal_date"`
	Reference          string          `db:"reference"`
	Description        string          `db:"description"`
	CurrencyCode       string          `db:"currency_code"`
	Status             JournalStatus   `db:"status"`
	Amount             decimal.Decimal `db:"amount"`
	OriginalJournalID  *string         `db:"original_journal_id"`
	ReversingJournalID *string         `db:"reversing_journal_id"`
	AuditFields
}

// JournalLine is the database representation of one journal line.
type JournalLine struct {
	LineID         string          `db:"line_id"`
	JournalID      string          `db:"journal_id"`
	AccountID      string          `db:"account_id"`
	Amount         decimal.Decimal `db:"amount"`
	LineType       string          `db:"line_type"`
	CurrencyCode   string          `db:"currency_code"`
	Description    string          `db:"description"`
	PartyID        *string         `db:"party_id"`
	RunningBalance decimal.Decimal `db:"running_balance"`
	AuditFields
}
