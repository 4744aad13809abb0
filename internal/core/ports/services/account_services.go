package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its chart code.
	GetAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error)

	// ListAccounts retrieves the organization's chart ordered by code.
	ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error)

	// ListAccountTypes returns the shared account types.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, organizationID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount removes an account that is neither a system account nor referenced by any line.
	DeleteAccount(ctx context.Context, organizationID, accountID string) error

	// SeedChartOfAccounts creates the onboarding template. Codes that already exist are skipped.
	SeedChartOfAccounts(ctx context.Context, organizationID, userID string) (created []domain.Account, skipped []string, err error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
