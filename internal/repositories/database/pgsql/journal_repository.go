package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const (
	entrySelect = `
SELECT entry_id, organization_id, period_id, entry_number, entry_sequence, entry_date, description,
	reference, source_type, source_id, status, currency_code, total_debit, total_credit,
	reversal_of_id, posted_at, created_at, created_by, last_updated_at, last_updated_by
FROM journal_entries
`
	lineSelect = `
SELECT line_id, entry_id, account_id, description, debit, credit, tax_code, tax_amount, line_order
FROM journal_lines
`
)

func scanEntry(row pgx.CollectableRow) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	var sourceType, status string
	err := row.Scan(
		&e.EntryID, &e.OrganizationID, &e.PeriodID, &e.EntryNumber, &e.Sequence, &e.EntryDate, &e.Description,
		&e.Reference, &sourceType, &e.SourceID, &status, &e.CurrencyCode, &e.TotalDebit, &e.TotalCredit,
		&e.ReversalOfID, &e.PostedAt, &e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	e.SourceType = domain.SourceType(sourceType)
	e.Status = domain.EntryStatus(status)
	return e, err
}

func scanLine(row pgx.CollectableRow) (domain.JournalLine, error) {
	var l domain.JournalLine
	var taxAmount decimal.NullDecimal
	err := row.Scan(&l.LineID, &l.EntryID, &l.AccountID, &l.Description, &l.Debit, &l.Credit,
		&l.TaxCode, &taxAmount, &l.LineOrder)
	if taxAmount.Valid {
		l.TaxAmount = &taxAmount.Decimal
	}
	return l, err
}

// findEntry loads one header matching filterQuery and attaches its lines.
func (r *PgxJournalRepository) findEntry(ctx context.Context, what, filterQuery string, args ...any) (*domain.JournalEntry, error) {
	rows, err := r.DB.Query(ctx, entrySelect+filterQuery, args...)
	if err != nil {
		return nil, mapError(err, "failed to query journal entry")
	}
	entry, err := pgx.CollectExactlyOneRow(rows, scanEntry)
	if err != nil {
		return nil, mapError(err, what)
	}

	lineRows, err := r.DB.Query(ctx, lineSelect+`WHERE entry_id = $1 ORDER BY line_order`, entry.EntryID)
	if err != nil {
		return nil, mapError(err, "failed to query journal lines")
	}
	entry.Lines, err = pgx.CollectRows(lineRows, scanLine)
	if err != nil {
		return nil, mapError(err, "failed to collect journal line rows")
	}
	return &entry, nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, "journal entry "+entryID,
		`WHERE organization_id = $1 AND entry_id = $2`, organizationID, entryID)
}

func (r *PgxJournalRepository) FindEntryBySource(ctx context.Context, organizationID string, sourceType domain.SourceType, sourceID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, "journal entry for "+string(sourceType)+" "+sourceID,
		`WHERE organization_id = $1 AND source_type = $2 AND source_id = $3`, organizationID, string(sourceType), sourceID)
}

func (r *PgxJournalRepository) FindReversalOf(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, "reversal of journal entry "+entryID,
		`WHERE organization_id = $1 AND reversal_of_id = $2`, organizationID, entryID)
}

// ListEntries pages headers newest first. One extra row is fetched to decide
// whether a next token is returned.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit = pagination.ClampLimit(limit)
	args := []any{organizationID, limit + 1}
	filter := `WHERE organization_id = $1 `
	if nextToken != nil && *nextToken != "" {
		lastDate, lastSeq, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
		filter += `AND (entry_date, entry_sequence) < ($3, $4) `
		args = append(args, lastDate, lastSeq)
	}

	rows, err := r.DB.Query(ctx, entrySelect+filter+`ORDER BY entry_date DESC, entry_sequence DESC LIMIT $2`, args...)
	if err != nil {
		return nil, nil, mapError(err, "failed to list journal entries")
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, nil, mapError(err, "failed to collect journal entry rows")
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeEntryCursor(last.EntryDate, last.Sequence)
		next = &token
	}
	return entries, next, nil
}

// NextEntrySequence takes a transaction-scoped advisory lock keyed by the organization,
// so concurrent posters for the same tenant are numbered one after another.
func (r *PgxJournalRepository) NextEntrySequence(ctx context.Context, organizationID string) (int, error) {
	if _, err := r.DB.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, organizationID); err != nil {
		return 0, mapError(err, "failed to lock entry numbering")
	}
	var count int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE organization_id = $1`, organizationID).Scan(&count); err != nil {
		return 0, mapError(err, "failed to count journal entries")
	}
	return count + 1, nil
}

func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO journal_entries (
			entry_id, organization_id, period_id, entry_number, entry_sequence, entry_date, description,
			reference, source_type, source_id, status, currency_code, total_debit, total_credit,
			reversal_of_id, posted_at, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`,
		entry.EntryID, entry.OrganizationID, entry.PeriodID, entry.EntryNumber, entry.Sequence, entry.EntryDate, entry.Description,
		entry.Reference, string(entry.SourceType), entry.SourceID, string(entry.Status), entry.CurrencyCode, entry.TotalDebit, entry.TotalCredit,
		entry.ReversalOfID, entry.PostedAt, entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "failed to insert journal entry "+entry.EntryNumber)
	}

	batch := &pgx.Batch{}
	for _, l := range entry.Lines {
		batch.Queue(`
			INSERT INTO journal_lines (line_id, entry_id, account_id, description, debit, credit, tax_code, tax_amount, line_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, l.LineID, entry.EntryID, l.AccountID, l.Description, l.Debit, l.Credit, l.TaxCode, l.TaxAmount, l.LineOrder)
	}
	br := r.DB.SendBatch(ctx, batch)
	for range entry.Lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapError(err, "failed to insert journal lines for "+entry.EntryNumber)
		}
	}
	return mapError(br.Close(), "failed to insert journal lines for "+entry.EntryNumber)
}
