package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// ClassificationSvc suggests accounts for free text and learns from confirmations.
type ClassificationSvc interface {
	// Suggest returns nil, nil when no tier matches.
	Suggest(ctx context.Context, organizationID, description, merchant string) (*domain.Suggestion, error)

	// Learn upserts the rule for the normalized pattern.
	Learn(ctx context.Context, organizationID, pattern, accountID string) (*domain.ClassificationRule, error)

	// RecordMerchantTx learns merchant -> account as a rule and in the merchant map,
	// using repositories bound to the caller's transaction.
	RecordMerchantTx(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID, merchant, accountID string) error

	ListRules(ctx context.Context, organizationID string) ([]domain.ClassificationRule, error)
}
