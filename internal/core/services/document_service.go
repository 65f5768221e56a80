package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
)

// documentService is the generic approval engine. One instance serves every
// document type; per-type behavior comes from DocumentTypeConfig.
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	companySvc   portssvc.CompanyReaderSvc
	accountSvc   portssvc.AccountSvcFacade
	sequenceSvc  portssvc.SequenceSvcFacade
	ledgerSvc    portssvc.LedgerSvcFacade
}

// NewDocumentService creates the approval workflow service.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	companySvc portssvc.CompanySvcFacade,
	accountSvc portssvc.AccountSvcFacade,
	sequenceSvc portssvc.SequenceSvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService:  BaseService{CompanyAuthorizer: companySvc},
		documentRepo: documentRepo,
		companySvc:   companySvc,
		accountSvc:   accountSvc,
		sequenceSvc:  sequenceSvc,
		ledgerSvc:    ledgerSvc,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// validateAmount enforces the amount invariant on every write.
func (s *documentService) validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return nil
}

// validateAccounts checks that the chosen accounts exist in the company's
// chart, differ from each other and satisfy the per-type account rules.
// Unset account IDs are skipped; approval enforces presence separately.
func (s *documentService) validateAccounts(ctx context.Context, cfg DocumentTypeConfig, companyID, debitAccountID, creditAccountID string) error {
	if debitAccountID != "" && debitAccountID == creditAccountID {
		return fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}

	ids := make([]string, 0, 2)
	if debitAccountID != "" {
		ids = append(ids, debitAccountID)
	}
	if creditAccountID != "" {
		ids = append(ids, creditAccountID)
	}
	if len(ids) == 0 {
		return nil
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, ids)
	if err != nil {
		return err
	}

	if debitAccountID != "" {
		account, ok := accounts[debitAccountID]
		if !ok {
			return fmt.Errorf("%w: debit account %s not found in company", apperrors.ErrValidation, debitAccountID)
		}
		if !cfg.DebitRule.Allows(account) {
			return fmt.Errorf("%w: account %s (%s) is not allowed as debit for %s documents", apperrors.ErrValidation, account.Code, account.AccountType, cfg.TypeName)
		}
	}
	if creditAccountID != "" {
		account, ok := accounts[creditAccountID]
		if !ok {
			return fmt.Errorf("%w: credit account %s not found in company", apperrors.ErrValidation, creditAccountID)
		}
		if !cfg.CreditRule.Allows(account) {
			return fmt.Errorf("%w: account %s (%s) is not allowed as credit for %s documents", apperrors.ErrValidation, account.Code, account.AccountType, cfg.TypeName)
		}
	}
	return nil
}

// recordEvent appends an audit-trail entry for a transition. The trail is
// best effort: a failed append is logged, never failing the transition that
// already committed.
func (s *documentService) recordEvent(ctx context.Context, doc *domain.Document, from, to domain.DocumentStatus, actorID string, journalID *string, note string) {
	event := domain.DocumentEvent{
		EventID:    uuid.NewString(),
		DocumentID: doc.DocumentID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actorID,
		JournalID:  journalID,
		Note:       note,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.documentRepo.SaveDocumentEvent(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to append document event",
			slog.String("document_id", doc.DocumentID),
			slog.String("to_status", string(to)),
			slog.String("error", err.Error()))
	}
}

// CreateDocument creates a document in DRAFT with a freshly issued reference.
func (s *documentService) CreateDocument(ctx context.Context, companyID string, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	cfg, ok := ConfigForType(req.DocType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, req.DocType)
	}

	if err := s.AuthorizeUser(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	company, err := s.companySvc.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.validateAccounts(ctx, cfg, companyID, req.DebitAccountID, req.CreditAccountID); err != nil {
		return nil, err
	}

	direction := req.Direction
	if direction == "" {
		direction = cfg.DefaultDirection
	}

	now := time.Now().UTC()
	doc := domain.Document{
		DocumentID:      uuid.NewString(),
		Reference:       s.sequenceSvc.NextReference(ctx, *company, req.DocType),
		DocType:         req.DocType,
		CompanyID:       companyID,
		Direction:       direction,
		Amount:          req.Amount,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		CounterpartyID:  req.CounterpartyID,
		Label:           req.Label,
		EntryDate:       req.EntryDate,
		Notes:           req.Notes,
		Status:          domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, &doc, "", domain.StatusDraft, creatorUserID, nil, "document created")
	s.LogInfo(ctx, "Document created",
		slog.String("document_id", doc.DocumentID),
		slog.String("reference", doc.Reference),
		slog.String("doc_type", string(doc.DocType)))
	return &doc, nil
}

// GetDocumentByID fetches a document, checking read access on its company.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, doc.CompanyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns a page of the company's documents.
func (s *documentService) ListDocuments(ctx context.Context, companyID string, params dto.ListDocumentsParams, userID string) ([]domain.Document, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	var docType *domain.DocumentType
	if params.DocType != "" {
		t := domain.DocumentType(params.DocType)
		if _, ok := ConfigForType(t); !ok {
			return nil, nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, params.DocType)
		}
		docType = &t
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	return s.documentRepo.ListDocumentsByCompany(ctx, companyID, docType, limit, nextToken)
}

// UpdateDocument applies changes to a draft document. Non-draft documents are
// immutable through this path.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, doc.CompanyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if doc.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: only draft documents can be edited", apperrors.ErrInvalidTransition)
	}

	cfg, _ := ConfigForType(doc.DocType)

	if req.Amount != nil {
		doc.Amount = *req.Amount
	}
	if req.DebitAccountID != nil {
		doc.DebitAccountID = *req.DebitAccountID
	}
	if req.CreditAccountID != nil {
		doc.CreditAccountID = *req.CreditAccountID
	}
	if req.CounterpartyID != nil {
		doc.CounterpartyID = req.CounterpartyID
	}
	if req.Label != nil {
		doc.Label = *req.Label
	}
	if req.EntryDate != nil {
		doc.EntryDate = *req.EntryDate
	}
	if req.Notes != nil {
		doc.Notes = *req.Notes
	}

	if err := s.validateAmount(doc.Amount); err != nil {
		return nil, err
	}
	if err := s.validateAccounts(ctx, cfg, doc.CompanyID, doc.DebitAccountID, doc.CreditAccountID); err != nil {
		return nil, err
	}

	doc.LastUpdatedAt = time.Now().UTC()
	doc.LastUpdatedBy = userID

	if err := s.documentRepo.UpdateDocument(ctx, *doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SubmitDocument transitions DRAFT -> WAITING_APPROVAL.
func (s *documentService) SubmitDocument(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, doc.CompanyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if doc.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: only draft documents can be submitted", apperrors.ErrInvalidTransition)
	}

	return s.transition(ctx, doc, domain.StatusWaitingApproval, userID, nil, "submitted for approval")
}

// ApproveDocument validates the approver capability, the state and the entity
// invariants (in that order), posts the balanced journal and transitions to
// DONE. A posting failure leaves the document in WAITING_APPROVAL so the
// approval can be retried once the underlying issue is fixed.
func (s *documentService) ApproveDocument(ctx context.Context, documentID string, approverUserID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// Capability check comes first: a non-approver is rejected before any
	// validation runs on accounts or amount.
	if err := s.AuthorizeUser(ctx, approverUserID, doc.CompanyID, domain.RoleApprover); err != nil {
		return nil, err
	}

	if doc.Status != domain.StatusWaitingApproval {
		return nil, fmt.Errorf("%w: only waiting documents can be approved", apperrors.ErrInvalidTransition)
	}

	if doc.DebitAccountID == "" || doc.CreditAccountID == "" {
		return nil, fmt.Errorf("%w: both debit and credit accounts are required", apperrors.ErrValidation)
	}
	if err := s.validateAmount(doc.Amount); err != nil {
		return nil, err
	}
	cfg, _ := ConfigForType(doc.DocType)
	if err := s.validateAccounts(ctx, cfg, doc.CompanyID, doc.DebitAccountID, doc.CreditAccountID); err != nil {
		return nil, err
	}

	company, err := s.companySvc.GetCompanyByID(ctx, doc.CompanyID)
	if err != nil {
		return nil, err
	}

	description := doc.Label
	if description == "" {
		description = doc.Reference
	}

	journal, err := s.ledgerSvc.CreateAndPost(ctx, dto.PostJournalRequest{
		CompanyID:    doc.CompanyID,
		JournalDate:  doc.EntryDate,
		Reference:    doc.Reference,
		Description:  description,
		CurrencyCode: company.DefaultCurrencyCode,
		Lines: []dto.PostingLine{
			{
				AccountID:   doc.DebitAccountID,
				Debit:       doc.Amount,
				Credit:      decimal.Zero,
				Description: description,
				PartyID:     doc.CounterpartyID,
			},
			{
				AccountID:   doc.CreditAccountID,
				Debit:       decimal.Zero,
				Credit:      doc.Amount,
				Description: description,
				PartyID:     doc.CounterpartyID,
			},
		},
	}, approverUserID)
	if err != nil {
		// Status stays WAITING_APPROVAL; the cause travels up to the caller.
		s.LogError(ctx, err, "Journal posting failed during approval",
			slog.String("document_id", doc.DocumentID))
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.documentRepo.UpdateDocumentStatus(ctx, doc.DocumentID, domain.StatusDone, &journal.JournalID, approverUserID, now); err != nil {
		return nil, err
	}

	from := doc.Status
	doc.Status = domain.StatusDone
	doc.PostedJournalID = &journal.JournalID
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = approverUserID

	s.recordEvent(ctx, doc, from, domain.StatusDone, approverUserID, &journal.JournalID, "approved, journal posted")
	s.LogInfo(ctx, "Document approved",
		slog.String("document_id", doc.DocumentID),
		slog.String("journal_id", journal.JournalID))
	return doc, nil
}

// ResetDocumentToDraft transitions WAITING_APPROVAL or CANCELLED back to DRAFT.
func (s *documentService) ResetDocumentToDraft(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, doc.CompanyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if doc.Status != domain.StatusWaitingApproval && doc.Status != domain.StatusCancelled {
		return nil, fmt.Errorf("%w: only waiting or cancelled documents can be reset to draft", apperrors.ErrInvalidTransition)
	}

	return s.transition(ctx, doc, domain.StatusDraft, userID, nil, "reset to draft")
}

// CancelDocument transitions any non-DONE document to CANCELLED. Processed
// documents cannot be cancelled; their journal must be reversed instead.
func (s *documentService) CancelDocument(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, doc.CompanyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if doc.Status == domain.StatusDone {
		return nil, fmt.Errorf("%w: cannot cancel a processed document, reverse its journal instead", apperrors.ErrInvalidTransition)
	}

	return s.transition(ctx, doc, domain.StatusCancelled, userID, nil, "cancelled")
}

// ListDocumentEvents returns the audit trail of a document.
func (s *documentService) ListDocumentEvents(ctx context.Context, documentID string, userID string) ([]domain.DocumentEvent, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, doc.CompanyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.documentRepo.ListDocumentEvents(ctx, documentID)
}

// transition persists a plain status change and appends its audit entry.
func (s *documentService) transition(ctx context.Context, doc *domain.Document, to domain.DocumentStatus, actorID string, journalID *string, note string) (*domain.Document, error) {
	now := time.Now().UTC()
	if err := s.documentRepo.UpdateDocumentStatus(ctx, doc.DocumentID, to, journalID, actorID, now); err != nil {
		return nil, err
	}

	from := doc.Status
	doc.Status = to
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = actorID

	s.recordEvent(ctx, doc, from, to, actorID, journalID, note)
	s.LogInfo(ctx, "Document status changed",
		slog.String("document_id", doc.DocumentID),
		slog.String("from", string(from)),
		slog.String("to", string(to)))
	return doc, nil
}
