package dto

import (
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingLine is one line supplied to the ledger posting adapter. Exactly one
// of Debit and Credit is non-zero.
type PostingLine struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	PartyID     *string         `json:"partyID"`
}

// PostJournalRequest is the input contract of the ledger posting adapter.
type PostJournalRequest struct {
	CompanyID    string        `json:"companyID"`
	JournalDate  time.Time     `json:"journalDate"`
	Reference    string        `json:"reference"`
	Description  string        `json:"description"`
	CurrencyCode string        `json:"currencyCode"`
	Lines        []PostingLine `json:"lines"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID         string          `json:"lineID"`
	AccountID      string          `json:"accountID"`
	Amount         decimal.Decimal `json:"amount"`
	LineType       string          `json:"lineType"`
	Description    string          `json:"description"`
	PartyID        *string         `json:"partyID,omitempty"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID          string          `json:"journalID"`
	CompanyID          string          `json:"companyID"`
	JournalDate        time.Time       `json:"journalDate"`
	Reference          string          `json:"reference"`
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode"`
	Status             string          `json:"status"`
	Amount             decimal.Decimal `json:"amount"`
	OriginalJournalID  *string         `json:"originalJournalID,omitempty"`
	ReversingJournalID *string         `json:"reversingJournalID,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
}

// GetJournalResponse combines a journal with its lines.
type GetJournalResponse struct {
	Journal JournalResponse       `json:"journal"`
	Lines   []JournalLineResponse `json:"lines"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:          j.JournalID,
		CompanyID:          j.CompanyID,
		JournalDate:        j.JournalDate,
		Reference:          j.Reference,
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		Status:             string(j.Status),
		Amount:             j.Amount,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
	}
}

// ToJournalLineResponses converts a slice of domain.JournalLine to DTOs.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	responses := make([]JournalLineResponse, len(lines))
	for i, l := range lines {
		responses[i] = JournalLineResponse{
			LineID:         l.LineID,
			AccountID:      l.AccountID,
			Amount:         l.Amount,
			LineType:       string(l.LineType),
			Description:    l.Description,
			PartyID:        l.PartyID,
			RunningBalance: l.RunningBalance,
		}
	}
	return responses
}
