package services

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/dto"
)

// LedgerSvcFacade is the ledger posting adapter: it validates and persists
// balanced double-entry journals. It does not trust callers to supply
// balanced lines; account and period state are its exclusive knowledge.
type LedgerSvcFacade interface {
	// CreateAndPost validates the request (balance, minimum lines, distinct
	// active accounts, open period) and persists the journal atomically.
	// Violations fail with ErrPosting.
	CreateAndPost(ctx context.Context, req dto.PostJournalRequest, creatorUserID string) (*domain.Journal, error)
	GetJournalWithLines(ctx context.Context, journalID string, userID string) (*domain.Journal, []domain.JournalLine, error)
	// ReverseJournal posts a mirrored journal and marks the original REVERSED.
	ReverseJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error)
}
