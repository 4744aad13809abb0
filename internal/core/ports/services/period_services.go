package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// PeriodResolverSvc resolves the accounting period of a date.
type PeriodResolverSvc interface {
	// ResolveOrCreatePeriod returns the id of the period covering date, creating the
	// fiscal year and monthly period when none exists. It never returns "" with a nil error.
	ResolveOrCreatePeriod(ctx context.Context, organizationID string, date time.Time) (string, error)

	// ResolveOrCreatePeriodTx does the same using repositories bound to the caller's transaction.
	ResolveOrCreatePeriodTx(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, date time.Time) (*domain.AccountingPeriod, error)
}

// PeriodSvcFacade combines all period-related service interfaces
type PeriodSvcFacade interface {
	PeriodResolverSvc

	ListPeriods(ctx context.Context, organizationID string) ([]domain.AccountingPeriod, error)
	ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error)
	UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus) (*domain.AccountingPeriod, error)
}
