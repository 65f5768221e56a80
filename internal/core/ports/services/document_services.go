package services

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/dto"
)

// DocumentSvcFacade is the approval workflow engine: document CRUD plus the
// four guarded transitions. Every transition validates its own precondition
// and appends an audit-trail event.
type DocumentSvcFacade interface {
	CreateDocument(ctx context.Context, companyID string, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error)
	GetDocumentByID(ctx context.Context, documentID string, userID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, companyID string, params dto.ListDocumentsParams, userID string) ([]domain.Document, *string, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error)

	// SubmitDocument transitions DRAFT -> WAITING_APPROVAL.
	SubmitDocument(ctx context.Context, documentID string, userID string) (*domain.Document, error)
	// ApproveDocument checks the approver capability, the state and the
	// entity invariants (in that order), posts a balanced two-line journal
	// and transitions WAITING_APPROVAL -> DONE. On posting failure the
	// document is left in WAITING_APPROVAL so approval can be retried.
	ApproveDocument(ctx context.Context, documentID string, approverUserID string) (*domain.Document, error)
	// ResetDocumentToDraft transitions WAITING_APPROVAL or CANCELLED -> DRAFT.
	ResetDocumentToDraft(ctx context.Context, documentID string, userID string) (*domain.Document, error)
	// CancelDocument transitions any non-DONE status -> CANCELLED.
	CancelDocument(ctx context.Context, documentID string, userID string) (*domain.Document, error)

	ListDocumentEvents(ctx context.Context, documentID string, userID string) ([]domain.DocumentEvent, error)
}
