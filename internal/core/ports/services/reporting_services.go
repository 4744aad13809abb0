package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc projects balances from posted entries. Nothing here is stored.
type LedgerSvc interface {
	// GeneralLedger returns the account's lines in chronological order with a running balance.
	GeneralLedger(ctx context.Context, organizationID, accountID string) (*domain.Account, []domain.LedgerRow, error)

	// TrialBalance returns each account's net position; asOf is inclusive and optional.
	TrialBalance(ctx context.Context, organizationID string, asOf *time.Time) (*domain.TrialBalance, error)

	// AccountBalance is the closing running balance of the account's general ledger.
	AccountBalance(ctx context.Context, organizationID, accountID string) (decimal.Decimal, error)
}

// VATSvc produces VAT return figures.
type VATSvc interface {
	VATSummary(ctx context.Context, organizationID string, start, end time.Time) (*domain.VATSummary, error)
}

// ReportingSvcFacade combines the ledger and VAT read models.
type ReportingSvcFacade interface {
	LedgerSvc
	VATSvc
}
