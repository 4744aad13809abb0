package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxPeriodRepository struct {
	BaseRepository
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const (
	periodSelect = `
SELECT period_id, organization_id, fiscal_year_id, name, start_date, end_date, status, created_at
FROM accounting_periods
`
	fiscalYearSelect = `
SELECT fiscal_year_id, organization_id, name, start_date, end_date, is_closed, created_at
FROM fiscal_years
`
)

func scanPeriod(row pgx.CollectableRow) (domain.AccountingPeriod, error) {
	var p domain.AccountingPeriod
	var status string
	err := row.Scan(&p.PeriodID, &p.OrganizationID, &p.FiscalYearID, &p.Name,
		&p.StartDate, &p.EndDate, &status, &p.CreatedAt)
	p.Status = domain.PeriodStatus(status)
	return p, err
}

func scanFiscalYear(row pgx.CollectableRow) (domain.FiscalYear, error) {
	var fy domain.FiscalYear
	err := row.Scan(&fy.FiscalYearID, &fy.OrganizationID, &fy.Name,
		&fy.StartDate, &fy.EndDate, &fy.IsClosed, &fy.CreatedAt)
	return fy, err
}

func (r *PgxPeriodRepository) getPeriod(ctx context.Context, what, filterQuery string, args ...any) (*domain.AccountingPeriod, error) {
	rows, err := r.DB.Query(ctx, periodSelect+filterQuery, args...)
	if err != nil {
		return nil, mapError(err, "failed to query accounting period")
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPeriod)
	if err != nil {
		return nil, mapError(err, what)
	}
	return &p, nil
}

func (r *PgxPeriodRepository) FindPeriodContaining(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error) {
	return r.getPeriod(ctx, "accounting period covering "+date.Format(domain.DateLayout),
		`WHERE organization_id = $1 AND start_date <= $2 AND end_date >= $2 ORDER BY start_date DESC LIMIT 1`,
		organizationID, domain.TruncateDate(date))
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.AccountingPeriod, error) {
	return r.getPeriod(ctx, "accounting period "+periodID,
		`WHERE organization_id = $1 AND period_id = $2`, organizationID, periodID)
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, organizationID string) ([]domain.AccountingPeriod, error) {
	rows, err := r.DB.Query(ctx, periodSelect+`WHERE organization_id = $1 ORDER BY start_date`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to list accounting periods")
	}
	periods, err := pgx.CollectRows(rows, scanPeriod)
	if err != nil {
		return nil, mapError(err, "failed to collect accounting period rows")
	}
	return periods, nil
}

func (r *PgxPeriodRepository) ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	rows, err := r.DB.Query(ctx, fiscalYearSelect+`WHERE organization_id = $1 ORDER BY start_date`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to list fiscal years")
	}
	years, err := pgx.CollectRows(rows, scanFiscalYear)
	if err != nil {
		return nil, mapError(err, "failed to collect fiscal year rows")
	}
	return years, nil
}

// EnsureFiscalYear relies on UNIQUE (organization_id, start_date): a losing concurrent
// insert does nothing and the winner's row is read back.
func (r *PgxPeriodRepository) EnsureFiscalYear(ctx context.Context, fy domain.FiscalYear) (*domain.FiscalYear, error) {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO fiscal_years (fiscal_year_id, organization_id, name, start_date, end_date, is_closed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id, start_date) DO NOTHING
	`, fy.FiscalYearID, fy.OrganizationID, fy.Name, fy.StartDate, fy.EndDate, fy.IsClosed, fy.CreatedAt)
	if err != nil {
		return nil, mapError(err, "failed to insert fiscal year "+fy.Name)
	}

	rows, err := r.DB.Query(ctx, fiscalYearSelect+`WHERE organization_id = $1 AND start_date = $2`, fy.OrganizationID, fy.StartDate)
	if err != nil {
		return nil, mapError(err, "failed to query fiscal year")
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanFiscalYear)
	if err != nil {
		return nil, mapError(err, "fiscal year "+fy.Name)
	}
	return &stored, nil
}

func (r *PgxPeriodRepository) EnsurePeriod(ctx context.Context, period domain.AccountingPeriod) (*domain.AccountingPeriod, error) {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO accounting_periods (period_id, organization_id, fiscal_year_id, name, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (organization_id, start_date) DO NOTHING
	`, period.PeriodID, period.OrganizationID, period.FiscalYearID, period.Name,
		period.StartDate, period.EndDate, string(period.Status), period.CreatedAt)
	if err != nil {
		return nil, mapError(err, "failed to insert accounting period "+period.Name)
	}
	return r.getPeriod(ctx, "accounting period "+period.Name,
		`WHERE organization_id = $1 AND start_date = $2`, period.OrganizationID, period.StartDate)
}

func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus) error {
	tag, err := r.DB.Exec(ctx, `UPDATE accounting_periods SET status = $3 WHERE organization_id = $1 AND period_id = $2`,
		organizationID, periodID, string(status))
	if err != nil {
		return mapError(err, "failed to update accounting period "+periodID)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "accounting period "+periodID)
	}
	return nil
}
