package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// NextValue atomically advances the counter for (company, document type) and
// returns the new value. The upsert creates the counter on first use; the row
// update takes a row lock, so concurrent callers serialize and never observe
// the same value.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, companyID string, docType domain.DocumentType) (int64, error) {
	query := `
		INSERT INTO sequences (company_id, doc_type, current_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, doc_type)
		DO UPDATE SET current_value = sequences.current_value + 1
		RETURNING current_value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, companyID, string(docType)).Scan(&value); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrSequenceUnavailable, err)
	}
	return value, nil
}
