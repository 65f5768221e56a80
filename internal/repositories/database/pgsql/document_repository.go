package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	"github.com/awtech/cashdesk/internal/models"
	"github.com/awtech/cashdesk/internal/utils/mapping"
	"github.com/awtech/cashdesk/internal/utils/pagination"
)

const documentColumns = `document_id, reference, doc_type, company_id, direction, amount, debit_account_id, credit_account_id, counterparty_id, label, entry_date, notes, status, posted_journal_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func scanDocument(row pgx.Row) (*models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID, &m.Reference, &m.DocType, &m.CompanyID, &m.Direction,
		&m.Amount, &m.DebitAccountID, &m.CreditAccountID, &m.CounterpartyID,
		&m.Label, &m.EntryDate, &m.Notes, &m.Status, &m.PostedJournalID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.Reference, m.DocType, m.CompanyID, m.Direction,
		m.Amount, m.DebitAccountID, m.CreditAccountID, m.CounterpartyID,
		m.Label, m.EntryDate, m.Notes, m.Status, m.PostedJournalID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "document reference already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert document "+m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document "+documentID, err)
	}
	doc := mapping.ToDomainDocument(*m)
	return &doc, nil
}

func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	query := `
		UPDATE documents
		SET amount = $2, debit_account_id = $3, credit_account_id = $4,
			counterparty_id = $5, label = $6, entry_date = $7, notes = $8,
			direction = $9, last_updated_at = $10, last_updated_by = $11
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.Amount, m.DebitAccountID, m.CreditAccountID,
		m.CounterpartyID, m.Label, m.EntryDate, m.Notes,
		m.Direction, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update document "+m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, postedJournalID *string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE documents
		SET status = $2, posted_journal_id = COALESCE($3, posted_journal_id),
			last_updated_by = $4, last_updated_at = $5
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, documentID, string(status), postedJournalID, updatedBy, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListDocumentsByCompany pages newest first using an (entry_date, created_at)
// keyset token, optionally filtered by document type.
func (r *PgxDocumentRepository) ListDocumentsByCompany(ctx context.Context, companyID string, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.Document, *string, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE company_id = $1`
	args := []any{companyID}

	if docType != nil {
		args = append(args, string(*docType))
		query += ` AND doc_type = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		args = append(args, entryDate, createdAt)
		query += ` AND (entry_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, limit+1)
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query documents for company "+companyID, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan document row", err)
		}
		docs = append(docs, mapping.ToDomainDocument(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating document rows", err)
	}

	var token *string
	if len(docs) > limit {
		docs = docs[:limit]
		last := docs[len(docs)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return docs, token, nil
}

func (r *PgxDocumentRepository) SaveDocumentEvent(ctx context.Context, event domain.DocumentEvent) error {
	m := mapping.ToModelDocumentEvent(event)
	query := `
		INSERT INTO document_events (event_id, document_id, from_status, to_status, actor_id, journal_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.DocumentID, m.FromStatus, m.ToStatus, m.ActorID, m.JournalID, m.Note, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert document event "+m.EventID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) ListDocumentEvents(ctx context.Context, documentID string) ([]domain.DocumentEvent, error) {
	query := `
		SELECT event_id, document_id, from_status, to_status, actor_id, journal_id, note, created_at
		FROM document_events
		WHERE document_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events for document "+documentID, err)
	}
	defer rows.Close()

	var events []domain.DocumentEvent
	for rows.Next() {
		var m models.DocumentEvent
		err := rows.Scan(&m.EventID, &m.DocumentID, &m.FromStatus, &m.ToStatus, &m.ActorID, &m.JournalID, &m.Note, &m.CreatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document event row", err)
		}
		events = append(events, mapping.ToDomainDocumentEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating document event rows", err)
	}
	return events, nil
}
