package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/google/uuid"
)

// periodService lazily creates fiscal years and monthly accounting periods.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
	orgRepo    portsrepo.OrganizationReader
	txManager  portsrepo.TransactionManager
}

// NewPeriodService creates a new period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, orgRepo portsrepo.OrganizationReader, txManager portsrepo.TransactionManager) portssvc.PeriodSvcFacade {
	return &periodService{
		BaseService: newBaseService(),
		periodRepo:  periodRepo,
		orgRepo:     orgRepo,
		txManager:   txManager,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// ResolveOrCreatePeriod runs the resolution in its own transaction.
func (s *periodService) ResolveOrCreatePeriod(ctx context.Context, organizationID string, date time.Time) (string, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return "", err
	}
	var periodID string
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		period, err := s.ResolveOrCreatePeriodTx(ctx, repos, organizationID, date)
		if err != nil {
			return err
		}
		periodID = period.PeriodID
		return nil
	})
	if err != nil {
		return "", err
	}
	return periodID, nil
}

// ResolveOrCreatePeriodTx returns the period covering date. When none exists it ensures
// the calendar fiscal year and the monthly period. Both inserts are idempotent on
// (organization, start date), so concurrent callers converge on the same rows.
func (s *periodService) ResolveOrCreatePeriodTx(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, date time.Time) (*domain.AccountingPeriod, error) {
	if date.IsZero() {
		return nil, apperrors.NewValidationError("entry date is required")
	}
	date = domain.TruncateDate(date)

	period, err := repos.PeriodRepo.FindPeriodContaining(ctx, organizationID, date)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up accounting period", slog.String("date", date.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to look up accounting period: %w", err)
	}

	now := s.Now()
	fyStart, fyEnd := domain.CalendarYearBounds(date.Year())
	fy, err := repos.PeriodRepo.EnsureFiscalYear(ctx, domain.FiscalYear{
		FiscalYearID:   uuid.NewString(),
		OrganizationID: organizationID,
		Name:           domain.FiscalYearName(date.Year()),
		StartDate:      fyStart,
		EndDate:        fyEnd,
		CreatedAt:      now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure fiscal year", slog.Int("year", date.Year()))
		return nil, fmt.Errorf("failed to create fiscal year: %w", err)
	}
	if fy.IsClosed {
		return nil, apperrors.NewValidationError(fmt.Sprintf("fiscal year %s is closed", fy.Name))
	}

	start, end := domain.MonthBounds(date)
	period, err = repos.PeriodRepo.EnsurePeriod(ctx, domain.AccountingPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: organizationID,
		FiscalYearID:   fy.FiscalYearID,
		Name:           domain.MonthlyPeriodName(date),
		StartDate:      start,
		EndDate:        end,
		Status:         domain.PeriodOpen,
		CreatedAt:      now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure accounting period", slog.String("date", date.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to create accounting period: %w", err)
	}
	if period == nil || period.PeriodID == "" {
		return nil, apperrors.NewPersistenceError("accounting period could not be resolved", nil)
	}
	if !period.Contains(date) {
		// a manually created period starting on the first of the month does not cover this date
		return nil, apperrors.NewValidationError(fmt.Sprintf("no accounting period covers %s", date.Format(domain.DateLayout)))
	}

	s.LogInfo(ctx, "Accounting period resolved",
		slog.String("period_id", period.PeriodID),
		slog.String("period", period.Name))
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context, organizationID string) ([]domain.AccountingPeriod, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}
	return s.periodRepo.ListPeriods(ctx, organizationID)
}

func (s *periodService) ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}
	return s.periodRepo.ListFiscalYears(ctx, organizationID)
}

// UpdatePeriodStatus opens, closes or locks a period. A locked period is final.
func (s *periodService) UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus) (*domain.AccountingPeriod, error) {
	switch status {
	case domain.PeriodOpen, domain.PeriodClosed, domain.PeriodLocked:
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown period status %q", status))
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodLocked && status != domain.PeriodLocked {
		return nil, fmt.Errorf("%w: period %s is locked", apperrors.ErrConflict, period.Name)
	}
	if period.Status == status {
		return period, nil
	}
	if err := s.periodRepo.UpdatePeriodStatus(ctx, organizationID, periodID, status); err != nil {
		s.LogError(ctx, err, "Failed to update period status", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to update period status: %w", err)
	}
	s.LogInfo(ctx, "Period status updated",
		slog.String("period_id", periodID),
		slog.String("from", string(period.Status)),
		slog.String("to", string(status)))
	period.Status = status
	return period, nil
}
