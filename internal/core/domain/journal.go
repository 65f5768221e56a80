package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a posted journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal is a single balanced double-entry record: the output of the ledger
// posting adapter. Its lines always sum to equal debit and credit totals.
type Journal struct {
	JournalID          string          `json:"journalID"` // Primary key (UUID)
	CompanyID          string          `json:"companyID"`
	JournalDate        time.Time       `json:"journalDate"`
	Reference          string          `json:"reference"` // Usually the source document reference
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode"`
	Status             JournalStatus   `json:"status"`
	Amount             decimal.Decimal `json:"amount"` // Economic value: the debit-side total
	OriginalJournalID  *string         `json:"originalJournalID"`  // Set on a reversal, points to the reversed journal
	ReversingJournalID *string         `json:"reversingJournalID"` // Set on the original once reversed
	AuditFields
}

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// JournalLine is a single line within a journal, affecting one account.
// Amount is always positive; LineType carries the side.
type JournalLine struct {
	LineID         string          `json:"lineID"` // Primary key (UUID)
	JournalID      string          `json:"journalID"`
	AccountID      string          `json:"accountID"`
	Amount         decimal.Decimal `json:"amount"`
	LineType       LineType        `json:"lineType"`
	CurrencyCode   string          `json:"currencyCode"` // Matches the journal currency
	Description    string          `json:"description"`
	PartyID        *string         `json:"partyID"`        // Optional counterparty
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance after this line
	AuditFields
}
