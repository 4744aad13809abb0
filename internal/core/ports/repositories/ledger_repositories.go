package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// LedgerRepository reads posted (non-draft) lines joined with their entry and account.
type LedgerRepository interface {
	// ListPostedLinesByAccount returns every posted line of one account.
	ListPostedLinesByAccount(ctx context.Context, organizationID, accountID string) ([]domain.PostedLine, error)

	// ListPostedLines returns every posted line of the organization, optionally up to asOf inclusive.
	ListPostedLines(ctx context.Context, organizationID string, asOf *time.Time) ([]domain.PostedLine, error)

	// ListTaxLines returns posted lines carrying a tax code with entry date in [start, end].
	ListTaxLines(ctx context.Context, organizationID string, start, end time.Time) ([]domain.PostedLine, error)
}
