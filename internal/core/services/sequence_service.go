package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
)

const fallbackTimestampFormat = "20060102150405" // 14 digits

// sequenceService issues per-(company, type) document references backed by an
// atomic counter store.
type sequenceService struct {
	BaseService
	sequenceRepo portsrepo.SequenceRepositoryFacade
	now          func() time.Time
}

// NewSequenceService creates a new sequence service.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepositoryFacade) portssvc.SequenceSvcFacade {
	return &sequenceService{
		sequenceRepo: sequenceRepo,
		now:          time.Now,
	}
}

var _ portssvc.SequenceSvcFacade = (*sequenceService)(nil)

// NextReference returns the next reference for the company and document type,
// e.g. "C01/PAY/000042". When the counter store fails it falls back to a
// timestamp-derived reference "{company}/{type}/{YYYYMMDDHHMMSS}" and logs a
// warning: the reference is a human-facing label, not a primary key, so a
// probabilistically unique fallback beats failing the whole creation.
func (s *sequenceService) NextReference(ctx context.Context, company domain.Company, docType domain.DocumentType) string {
	typeCode := string(docType)
	if cfg, ok := ConfigForType(docType); ok {
		typeCode = cfg.TypeCode
	}

	value, err := s.sequenceRepo.NextValue(ctx, company.CompanyID, docType)
	if err != nil {
		timestamp := s.now().UTC().Format(fallbackTimestampFormat)
		fallback := fmt.Sprintf("%s/%s/%s", company.ShortCode, typeCode, timestamp)
		s.LogWarn(ctx, "Sequence unavailable, using timestamp fallback reference",
			slog.String("company_id", company.CompanyID),
			slog.String("doc_type", string(docType)),
			slog.String("reference", fallback),
			slog.String("error", err.Error()))
		return fallback
	}

	return fmt.Sprintf("%s/%s/%06d", company.ShortCode, typeCode, value)
}
