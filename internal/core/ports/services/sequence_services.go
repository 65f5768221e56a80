package services

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// SequenceSvcFacade issues document references. NextReference never fails:
// when the counter store is unavailable it falls back to a timestamp-derived
// reference and logs a warning (availability over strict ordering).
type SequenceSvcFacade interface {
	NextReference(ctx context.Context, company domain.Company, docType domain.DocumentType) string
}
