package sqlite

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerRepository = (*LedgerRepository)(nil)

const postedLineSelect = `
SELECT
	e.entry_id, e.entry_number, e.entry_sequence, e.entry_date, e.description, e.reference,
	l.line_id, a.account_id, a.code, a.name, t.category, t.normal_balance,
	l.description, l.debit, l.credit, l.tax_code, l.tax_amount, l.line_order
FROM journal_lines l
JOIN journal_entries e ON e.entry_id = l.entry_id
JOIN accounts a ON a.account_id = l.account_id
JOIN account_types t ON t.account_type_id = a.account_type_id
WHERE e.organization_id = ? AND e.status <> 'draft'
`

const postedLineOrder = ` ORDER BY e.entry_date, e.entry_sequence, l.line_order`

func scanPostedLine(row scanner) (domain.PostedLine, error) {
	var p domain.PostedLine
	var category, normal string
	var taxAmount decimal.NullDecimal
	err := row.Scan(
		&p.EntryID, &p.EntryNumber, &p.EntrySequence, &p.EntryDate, &p.EntryDescription, &p.Reference,
		&p.LineID, &p.AccountID, &p.AccountCode, &p.AccountName, &category, &normal,
		&p.LineDescription, &p.Debit, &p.Credit, &p.TaxCode, &taxAmount, &p.LineOrder,
	)
	p.Category = domain.AccountCategory(category)
	p.NormalBalance = domain.NormalBalance(normal)
	if taxAmount.Valid {
		p.TaxAmount = &taxAmount.Decimal
	}
	return p, err
}

func (r *LedgerRepository) queryPostedLines(ctx context.Context, filter string, args ...any) ([]domain.PostedLine, error) {
	rows, err := r.DB.QueryContext(ctx, postedLineSelect+filter+postedLineOrder, args...)
	if err != nil {
		return nil, mapError(err, "failed to query posted lines")
	}
	lines, err := collectRows(rows, scanPostedLine)
	if err != nil {
		return nil, mapError(err, "failed to collect posted line rows")
	}
	return lines, nil
}

func (r *LedgerRepository) ListPostedLinesByAccount(ctx context.Context, organizationID, accountID string) ([]domain.PostedLine, error) {
	return r.queryPostedLines(ctx, ` AND l.account_id = ?`, organizationID, accountID)
}

func (r *LedgerRepository) ListPostedLines(ctx context.Context, organizationID string, asOf *time.Time) ([]domain.PostedLine, error) {
	if asOf == nil {
		return r.queryPostedLines(ctx, "", organizationID)
	}
	return r.queryPostedLines(ctx, ` AND e.entry_date <= ?`, organizationID, dateArg(*asOf))
}

func (r *LedgerRepository) ListTaxLines(ctx context.Context, organizationID string, start, end time.Time) ([]domain.PostedLine, error) {
	return r.queryPostedLines(ctx, ` AND l.tax_code IS NOT NULL AND e.entry_date BETWEEN ? AND ?`,
		organizationID, dateArg(start), dateArg(end))
}
