package repositories

import (
	"context"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// DocumentRepositoryFacade defines persistence operations for approval documents
// and their audit-trail events.
type DocumentRepositoryFacade interface {
	SaveDocument(ctx context.Context, doc domain.Document) error
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, doc domain.Document) error
	// UpdateDocumentStatus persists a workflow transition. postedJournalID is
	// non-nil only for the transition into DONE.
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, postedJournalID *string, updatedBy string, updatedAt time.Time) error
	// ListDocumentsByCompany returns a page of documents ordered newest first,
	// optionally filtered by type, with a token for the next page.
	ListDocumentsByCompany(ctx context.Context, companyID string, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.Document, *string, error)

	SaveDocumentEvent(ctx context.Context, event domain.DocumentEvent) error
	ListDocumentEvents(ctx context.Context, documentID string) ([]domain.DocumentEvent, error)
}
