package repositories

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// SequenceRepositoryFacade defines the per-(company, document type) counter.
// NextValue must be atomic and monotonic; the underlying store provides the
// concurrency control (row-level locking on the counter row).
type SequenceRepositoryFacade interface {
	NextValue(ctx context.Context, companyID string, docType domain.DocumentType) (int64, error)
}
