package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationSummary is the database representation of one rebuilt summary row.
type DonationSummary struct {
	SummaryID string          `db:"summary_id"`
	CompanyID string          `db:"company_id"`
	Year      int             `db:"year"`
	Month     int             `db:"month"`
	Category  string          `db:"category"`
	AccountID string          `db:"account_id"`
	Total     decimal.Decimal `db:"total"`
	RebuiltAt time.Time       `db:"rebuilt_at"`
	RebuiltBy string          `db:"rebuilt_by"`
}
