package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ClassificationReader defines read operations for learned rules and the merchant map
type ClassificationReader interface {
	// ListRules returns the organization's learned rules in stored (insertion) order.
	ListRules(ctx context.Context, organizationID string) ([]domain.ClassificationRule, error)

	// FindMerchantMapping looks up a normalized merchant name, or returns apperrors.ErrNotFound.
	FindMerchantMapping(ctx context.Context, organizationID, merchantName string) (*domain.MerchantMapping, error)
}

// ClassificationWriter defines write operations for learned rules and the merchant map
type ClassificationWriter interface {
	// UpsertRule inserts the rule or, when (organization, pattern) exists, points it at
	// rule.AccountID and increments TimesUsed. The stored row is returned.
	UpsertRule(ctx context.Context, rule domain.ClassificationRule) (*domain.ClassificationRule, error)

	// UpsertMerchantMapping records the merchant's latest account. Last write wins.
	UpsertMerchantMapping(ctx context.Context, mapping domain.MerchantMapping) error
}

// ClassificationRepositoryFacade combines all classification-related repository interfaces
type ClassificationRepositoryFacade interface {
	ClassificationReader
	ClassificationWriter
}
