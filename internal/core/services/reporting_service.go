package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService projects ledgers, trial balances and VAT returns from posted lines.
type reportingService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountReader
	orgRepo     portsrepo.OrganizationReader
}

// NewReportingService creates the service behind both LedgerSvc and VATSvc.
func NewReportingService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountReader, orgRepo portsrepo.OrganizationReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: newBaseService(),
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		orgRepo:     orgRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GeneralLedger replays one account's posted lines with a running balance.
func (s *reportingService) GeneralLedger(ctx context.Context, organizationID, accountID string) (*domain.Account, []domain.LedgerRow, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return nil, nil, err
	}

	lines, err := s.ledgerRepo.ListPostedLinesByAccount(ctx, organizationID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve ledger lines", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to retrieve ledger lines: %w", err)
	}

	rows := accounting.ProjectLedger(lines, account.NormalBalance)
	s.LogDebug(ctx, "General ledger generated",
		slog.String("account_id", accountID),
		slog.Int("row_count", len(rows)))
	return account, rows, nil
}

// AccountBalance is the closing balance of the account's general ledger.
func (s *reportingService) AccountBalance(ctx context.Context, organizationID, accountID string) (decimal.Decimal, error) {
	_, rows, err := s.GeneralLedger(ctx, organizationID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.ClosingBalance(rows), nil
}

// TrialBalance generates a trial balance, optionally as of a date (inclusive).
func (s *reportingService) TrialBalance(ctx context.Context, organizationID string, asOf *time.Time) (*domain.TrialBalance, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}
	if asOf != nil {
		d := domain.TruncateDate(*asOf)
		asOf = &d
	}

	lines, err := s.ledgerRepo.ListPostedLines(ctx, organizationID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	tb := accounting.BuildTrialBalance(lines, asOf)
	if !tb.TotalDebit.Equal(tb.TotalCredit) {
		// every stored entry is balanced, so this only happens if storage was tampered with
		err := apperrors.NewPersistenceError(fmt.Sprintf("trial balance does not balance: debits %s, credits %s", tb.TotalDebit, tb.TotalCredit), nil)
		s.LogError(ctx, err, "Ledger integrity check failed", slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("organization_id", organizationID),
		slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}

// VATSummary aggregates tax-coded posted lines dated within [start, end].
func (s *reportingService) VATSummary(ctx context.Context, organizationID string, start, end time.Time) (*domain.VATSummary, error) {
	start, end = domain.TruncateDate(start), domain.TruncateDate(end)
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.NewValidationError("start and end dates are required")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end date must not be before start date")
	}
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.ListTaxLines(ctx, organizationID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve tax lines",
			slog.String("from", start.Format(domain.DateLayout)),
			slog.String("to", end.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve tax lines: %w", err)
	}

	summary := accounting.SummarizeVAT(lines, start, end)
	s.LogInfo(ctx, "VAT summary generated",
		slog.String("from", start.Format(domain.DateLayout)),
		slog.String("to", end.Format(domain.DateLayout)),
		slog.String("net_vat", summary.NetVAT.StringFixed(domain.AmountPlaces)))
	return &summary, nil
}
