package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DonationCategory is a named bucket that income-account activity is
// classified into by keyword matching on the account name.
type DonationCategory string

const (
	CategoryZakat   DonationCategory = "ZAKAT"
	CategoryFitrana DonationCategory = "FITRANA"
	CategoryFidya   DonationCategory = "FIDYA"
	CategorySadqa   DonationCategory = "SADQA"
	CategoryHadiya  DonationCategory = "HADIYA"
	CategoryLangar  DonationCategory = "LANGAR"
	CategoryQurbani DonationCategory = "QURBANI"
	CategoryGeneral DonationCategory = "GENERAL"
)

// AccountTotal is the summed posted activity of one account over a period.
type AccountTotal struct {
	AccountID   string
	AccountName string
	Total       decimal.Decimal
}

// DonationSummary is one persisted summary row per (company, period, account).
// Summaries are rebuilt wholesale: a rebuild replaces every prior row for the
// same company and period.
type DonationSummary struct {
	SummaryID string           `json:"summaryID"`
	CompanyID string           `json:"companyID"`
	Year      int              `json:"year"`
	Month     int              `json:"month"` // 1..12
	Category  DonationCategory `json:"category"`
	AccountID string           `json:"accountID"`
	Total     decimal.Decimal  `json:"total"`
	RebuiltAt time.Time        `json:"rebuiltAt"`
	RebuiltBy string           `json:"rebuiltBy"`
}
