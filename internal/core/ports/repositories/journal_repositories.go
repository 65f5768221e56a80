package repositories

import (
	"context"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalRepositoryFacade defines persistence operations for journals and their lines.
type JournalRepositoryFacade interface {
	// SaveJournal persists a journal, its lines and the resulting account
	// balance deltas in one database transaction. balanceChanges maps account
	// IDs to signed deltas computed from the lines.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
	// UpdateJournalStatusAndLinks marks a journal reversed and links the pair.
	UpdateJournalStatusAndLinks(ctx context.Context, journalID string, status domain.JournalStatus, reversingJournalID *string, updatedBy string, updatedAt time.Time) error
	ListJournalsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Journal, *string, error)
}
