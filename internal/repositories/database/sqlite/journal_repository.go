package sqlite

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type JournalRepository struct {
	BaseRepository
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

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

func scanEntry(row scanner) (domain.JournalEntry, error) {
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

func scanLine(row scanner) (domain.JournalLine, error) {
	var l domain.JournalLine
	var taxAmount decimal.NullDecimal
	err := row.Scan(&l.LineID, &l.EntryID, &l.AccountID, &l.Description, &l.Debit, &l.Credit,
		&l.TaxCode, &taxAmount, &l.LineOrder)
	if taxAmount.Valid {
		l.TaxAmount = &taxAmount.Decimal
	}
	return l, err
}

func (r *JournalRepository) findEntry(ctx context.Context, what, filterQuery string, args ...any) (*domain.JournalEntry, error) {
	entry, err := scanEntry(r.DB.QueryRowContext(ctx, entrySelect+filterQuery, args...))
	if err != nil {
		return nil, mapError(err, what)
	}
	rows, err := r.DB.QueryContext(ctx, lineSelect+`WHERE entry_id = ? ORDER BY line_order`, entry.EntryID)
	if err != nil {
		return nil, mapError(err, "failed to query journal lines")
	}
	entry.Lines, err = collectRows(rows, scanLine)
	if err != nil {
		return nil, mapError(err, "failed to collect journal line rows")
	}
	return &entry, nil
}

func (r *JournalRepository) FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, "journal entry "+entryID, `WHERE organization_id = ? AND entry_id = ?`, organizationID, entryID)
}

func (r *JournalRepository) FindEntryBySource(ctx context.Context, organizationID string, sourceType domain.SourceType, sourceID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, "journal entry for "+string(sourceType)+" "+sourceID,
		`WHERE organization_id = ? AND source_type = ? AND source_id = ?`, organizationID, string(sourceType), sourceID)
}

func (r *JournalRepository) FindReversalOf(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, "reversal of journal entry "+entryID,
		`WHERE organization_id = ? AND reversal_of_id = ?`, organizationID, entryID)
}

func (r *JournalRepository) ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit = pagination.ClampLimit(limit)
	args := []any{organizationID}
	filter := `WHERE organization_id = ? `
	if nextToken != nil && *nextToken != "" {
		lastDate, lastSeq, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
		filter += `AND (entry_date, entry_sequence) < (?, ?) `
		args = append(args, dateArg(lastDate), lastSeq)
	}
	args = append(args, limit+1)

	rows, err := r.DB.QueryContext(ctx, entrySelect+filter+`ORDER BY entry_date DESC, entry_sequence DESC LIMIT ?`, args...)
	if err != nil {
		return nil, nil, mapError(err, "failed to list journal entries")
	}
	entries, err := collectRows(rows, scanEntry)
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

// NextEntrySequence relies on the transaction holding the database write lock
// from BEGIN IMMEDIATE.
func (r *JournalRepository) NextEntrySequence(ctx context.Context, organizationID string) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_entries WHERE organization_id = ?`, organizationID).Scan(&count); err != nil {
		return 0, mapError(err, "failed to count journal entries")
	}
	return count + 1, nil
}

func (r *JournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO journal_entries (
			entry_id, organization_id, period_id, entry_number, entry_sequence, entry_date, description,
			reference, source_type, source_id, status, currency_code, total_debit, total_credit,
			reversal_of_id, posted_at, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.EntryID, entry.OrganizationID, entry.PeriodID, entry.EntryNumber, entry.Sequence, dateArg(entry.EntryDate), entry.Description,
		entry.Reference, string(entry.SourceType), entry.SourceID, string(entry.Status), entry.CurrencyCode, entry.TotalDebit, entry.TotalCredit,
		entry.ReversalOfID, entry.PostedAt, entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "failed to insert journal entry "+entry.EntryNumber)
	}

	for _, l := range entry.Lines {
		_, err := r.DB.ExecContext(ctx, `
			INSERT INTO journal_lines (line_id, entry_id, account_id, description, debit, credit, tax_code, tax_amount, line_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, l.LineID, entry.EntryID, l.AccountID, l.Description, l.Debit, l.Credit, l.TaxCode, l.TaxAmount, l.LineOrder)
		if err != nil {
			return mapError(err, "failed to insert journal lines for "+entry.EntryNumber)
		}
	}
	return nil
}
