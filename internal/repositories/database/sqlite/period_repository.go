package sqlite

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

type PeriodRepository struct {
	BaseRepository
}

var _ portsrepo.PeriodRepositoryFacade = (*PeriodRepository)(nil)

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

func scanPeriod(row scanner) (domain.AccountingPeriod, error) {
	var p domain.AccountingPeriod
	var status string
	err := row.Scan(&p.PeriodID, &p.OrganizationID, &p.FiscalYearID, &p.Name,
		&p.StartDate, &p.EndDate, &status, &p.CreatedAt)
	p.Status = domain.PeriodStatus(status)
	return p, err
}

func scanFiscalYear(row scanner) (domain.FiscalYear, error) {
	var fy domain.FiscalYear
	err := row.Scan(&fy.FiscalYearID, &fy.OrganizationID, &fy.Name,
		&fy.StartDate, &fy.EndDate, &fy.IsClosed, &fy.CreatedAt)
	return fy, err
}

func (r *PeriodRepository) getPeriod(ctx context.Context, what, filterQuery string, args ...any) (*domain.AccountingPeriod, error) {
	p, err := scanPeriod(r.DB.QueryRowContext(ctx, periodSelect+filterQuery, args...))
	if err != nil {
		return nil, mapError(err, what)
	}
	return &p, nil
}

func (r *PeriodRepository) FindPeriodContaining(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error) {
	d := dateArg(date)
	return r.getPeriod(ctx, "accounting period covering "+d,
		`WHERE organization_id = ? AND start_date <= ? AND end_date >= ? ORDER BY start_date DESC LIMIT 1`,
		organizationID, d, d)
}

func (r *PeriodRepository) FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.AccountingPeriod, error) {
	return r.getPeriod(ctx, "accounting period "+periodID, `WHERE organization_id = ? AND period_id = ?`, organizationID, periodID)
}

func (r *PeriodRepository) ListPeriods(ctx context.Context, organizationID string) ([]domain.AccountingPeriod, error) {
	rows, err := r.DB.QueryContext(ctx, periodSelect+`WHERE organization_id = ? ORDER BY start_date`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to list accounting periods")
	}
	periods, err := collectRows(rows, scanPeriod)
	if err != nil {
		return nil, mapError(err, "failed to collect accounting period rows")
	}
	return periods, nil
}

func (r *PeriodRepository) ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	rows, err := r.DB.QueryContext(ctx, fiscalYearSelect+`WHERE organization_id = ? ORDER BY start_date`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to list fiscal years")
	}
	years, err := collectRows(rows, scanFiscalYear)
	if err != nil {
		return nil, mapError(err, "failed to collect fiscal year rows")
	}
	return years, nil
}

func (r *PeriodRepository) EnsureFiscalYear(ctx context.Context, fy domain.FiscalYear) (*domain.FiscalYear, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO fiscal_years (fiscal_year_id, organization_id, name, start_date, end_date, is_closed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (organization_id, start_date) DO NOTHING
	`, fy.FiscalYearID, fy.OrganizationID, fy.Name, dateArg(fy.StartDate), dateArg(fy.EndDate), fy.IsClosed, fy.CreatedAt)
	if err != nil {
		return nil, mapError(err, "failed to insert fiscal year "+fy.Name)
	}
	stored, err := scanFiscalYear(r.DB.QueryRowContext(ctx, fiscalYearSelect+`WHERE organization_id = ? AND start_date = ?`,
		fy.OrganizationID, dateArg(fy.StartDate)))
	if err != nil {
		return nil, mapError(err, "fiscal year "+fy.Name)
	}
	return &stored, nil
}

func (r *PeriodRepository) EnsurePeriod(ctx context.Context, period domain.AccountingPeriod) (*domain.AccountingPeriod, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO accounting_periods (period_id, organization_id, fiscal_year_id, name, start_date, end_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (organization_id, start_date) DO NOTHING
	`, period.PeriodID, period.OrganizationID, period.FiscalYearID, period.Name,
		dateArg(period.StartDate), dateArg(period.EndDate), string(period.Status), period.CreatedAt)
	if err != nil {
		return nil, mapError(err, "failed to insert accounting period "+period.Name)
	}
	return r.getPeriod(ctx, "accounting period "+period.Name,
		`WHERE organization_id = ? AND start_date = ?`, period.OrganizationID, dateArg(period.StartDate))
}

func (r *PeriodRepository) UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE accounting_periods SET status = ? WHERE organization_id = ? AND period_id = ?`,
		string(status), organizationID, periodID)
	if err != nil {
		return mapError(err, "failed to update accounting period "+periodID)
	}
	return affectedOrNotFound(res, "accounting period "+periodID)
}
