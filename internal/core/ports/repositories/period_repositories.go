package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// PeriodReader defines read operations for fiscal years and accounting periods
type PeriodReader interface {
	// FindPeriodContaining returns the period whose inclusive range covers date,
	// or apperrors.ErrNotFound.
	FindPeriodContaining(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error)

	FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.AccountingPeriod, error)

	// ListPeriods returns periods ordered by start date.
	ListPeriods(ctx context.Context, organizationID string) ([]domain.AccountingPeriod, error)

	ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error)
}

// PeriodWriter defines write operations for fiscal years and accounting periods
type PeriodWriter interface {
	// EnsureFiscalYear inserts the fiscal year unless one already starts on the same
	// date for the organization, and returns the stored row either way.
	EnsureFiscalYear(ctx context.Context, fy domain.FiscalYear) (*domain.FiscalYear, error)

	// EnsurePeriod inserts the period unless one already starts on the same date for
	// the organization, and returns the stored row either way.
	EnsurePeriod(ctx context.Context, period domain.AccountingPeriod) (*domain.AccountingPeriod, error)

	UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
