package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every lookup is scoped by organization; an account of another tenant is not found.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its chart code.
	FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id. Missing ids are simply absent.
	FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountsByCodes retrieves multiple accounts keyed by code. Missing codes are simply absent.
	FindAccountsByCodes(ctx context.Context, organizationID string, codes []string) (map[string]domain.Account, error)

	// ListAccounts returns the whole chart ordered by code.
	ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error)

	// IsAccountReferenced reports whether any journal line points at the account.
	IsAccountReferenced(ctx context.Context, organizationID, accountID string) (bool, error)
}

// AccountTypeReader reads the shared account type seed data.
type AccountTypeReader interface {
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
	FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A duplicate code returns apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name, active flag and tax code.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an unreferenced account.
	DeleteAccount(ctx context.Context, organizationID, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountTypeReader
	AccountWriter
}
