package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/seeddata"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// learnedConfidence is the confidence of a rule confirmed by a user or a posting.
var learnedConfidence = decimal.NewFromInt(1)

// classificationService suggests accounts from learned rules, the merchant map and the
// built-in keyword list, in that order.
type classificationService struct {
	BaseService
	classificationRepo portsrepo.ClassificationRepositoryFacade
	accountRepo        portsrepo.AccountReader
	orgRepo            portsrepo.OrganizationReader
	builtins           []seeddata.BuiltinMatcher
}

// ClassificationServiceOption is a function that configures a classificationService
type ClassificationServiceOption func(*classificationService)

// WithBuiltinRules replaces the embedded built-in rules.
func WithBuiltinRules(rules []seeddata.BuiltinMatcher) ClassificationServiceOption {
	return func(s *classificationService) {
		s.builtins = rules
	}
}

// NewClassificationService creates a new classification service. The embedded built-in
// rules are compiled here, so a broken rule file fails at startup.
func NewClassificationService(classificationRepo portsrepo.ClassificationRepositoryFacade, accountRepo portsrepo.AccountReader, orgRepo portsrepo.OrganizationReader, options ...ClassificationServiceOption) (portssvc.ClassificationSvc, error) {
	svc := &classificationService{
		BaseService:        newBaseService(),
		classificationRepo: classificationRepo,
		accountRepo:        accountRepo,
		orgRepo:            orgRepo,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.builtins == nil {
		rules, err := seeddata.BuiltinRules()
		if err != nil {
			return nil, err
		}
		svc.builtins = rules
	}
	return svc, nil
}

var _ portssvc.ClassificationSvc = (*classificationService)(nil)

// Suggest tries learned rules in stored order, then an exact merchant-map hit, then
// the built-in rules. A document posting writes a rule for its merchant as well, so the
// merchant-map tier only answers for merchants that no learned rule covers, such as
// mappings loaded from another system.
func (s *classificationService) Suggest(ctx context.Context, organizationID, description, merchant string) (*domain.Suggestion, error) {
	desc := domain.NormalizeText(description)
	merch := domain.NormalizeText(merchant)
	if desc == "" && merch == "" {
		return nil, apperrors.NewValidationError("description or merchant is required")
	}
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}

	rules, err := s.classificationRepo.ListRules(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list classification rules", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list classification rules: %w", err)
	}
	for _, rule := range rules {
		if !patternMatchesAny(rule.Pattern, desc, merch) {
			continue
		}
		account, err := s.usableAccount(ctx, organizationID, rule.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			continue
		}
		return s.suggestion(ctx, account, rule.Confidence, domain.SuggestionLearned,
			fmt.Sprintf("learned rule %q (used %d times)", rule.Pattern, rule.TimesUsed)), nil
	}

	if merch != "" {
		mapping, err := s.classificationRepo.FindMerchantMapping(ctx, organizationID, merch)
		switch {
		case err == nil:
			account, err := s.usableAccount(ctx, organizationID, mapping.GLAccountID)
			if err != nil {
				return nil, err
			}
			if account != nil {
				return s.suggestion(ctx, account, mapping.Confidence, domain.SuggestionMerchantMap,
					fmt.Sprintf("merchant %s was last posted to %s", merch, account.Code)), nil
			}
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to look up merchant mapping", slog.String("merchant", merch))
			return nil, fmt.Errorf("failed to look up merchant mapping: %w", err)
		}
	}

	text := domain.NormalizeText(desc + " " + merch)
	for _, m := range s.builtins {
		if !m.Match(text) {
			continue
		}
		account, err := s.accountRepo.FindAccountByCode(ctx, organizationID, m.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogDebug(ctx, "Builtin rule target missing from chart",
					slog.String("rule", m.Name), slog.String("code", m.AccountCode))
				continue
			}
			return nil, fmt.Errorf("failed to load account %s: %w", m.AccountCode, err)
		}
		if !account.IsActive {
			continue
		}
		return s.suggestion(ctx, account, m.Confidence, domain.SuggestionBuiltin,
			fmt.Sprintf("matched built-in rule %s", m.Name)), nil
	}

	s.LogDebug(ctx, "No classification suggestion", slog.String("organization_id", organizationID))
	return nil, nil
}

// patternMatchesAny reports whether the pattern matches any of the normalized texts.
func patternMatchesAny(pattern string, texts ...string) bool {
	for _, t := range texts {
		if domain.PatternMatches(pattern, t) {
			return true
		}
	}
	return false
}

// usableAccount returns nil for accounts that were deleted or deactivated since the rule was learned.
func (s *classificationService) usableAccount(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load account %s: %w", accountID, err)
	}
	if !account.IsActive {
		return nil, nil
	}
	return account, nil
}

func (s *classificationService) suggestion(ctx context.Context, account *domain.Account, confidence decimal.Decimal, source domain.SuggestionSource, reason string) *domain.Suggestion {
	s.LogDebug(ctx, "Classification suggestion",
		slog.String("source", string(source)),
		slog.String("code", account.Code))
	return &domain.Suggestion{
		AccountID:   account.AccountID,
		AccountCode: account.Code,
		AccountName: account.Name,
		Confidence:  confidence.Round(domain.ConfidencePlaces),
		Reason:      reason,
		Source:      source,
	}
}

// Learn stores pattern -> account, replacing the target of an existing pattern.
func (s *classificationService) Learn(ctx context.Context, organizationID, pattern, accountID string) (*domain.ClassificationRule, error) {
	normalized := domain.NormalizeText(pattern)
	if normalized == "" {
		return nil, apperrors.NewValidationError("pattern is required")
	}
	if accountID == "" {
		return nil, apperrors.NewValidationError("account id is required")
	}
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("account %s does not exist in this organization", accountID))
		}
		return nil, err
	}

	rule, err := s.upsertRule(ctx, s.classificationRepo, organizationID, normalized, accountID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Classification rule learned",
		slog.String("pattern", rule.Pattern),
		slog.String("account_id", rule.AccountID),
		slog.Int("times_used", rule.TimesUsed))
	return rule, nil
}

// RecordMerchantTx learns from a posted document inside the posting transaction. It
// upserts the learned rule for the merchant and records the merchant map entry with
// last-write-wins semantics.
func (s *classificationService) RecordMerchantTx(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID, merchant, accountID string) error {
	normalized := domain.NormalizeText(merchant)
	if normalized == "" || accountID == "" {
		return nil
	}
	if _, err := s.upsertRule(ctx, repos.ClassificationRepo, organizationID, normalized, accountID); err != nil {
		return err
	}
	err := repos.ClassificationRepo.UpsertMerchantMapping(ctx, domain.MerchantMapping{
		OrganizationID: organizationID,
		MerchantName:   normalized,
		GLAccountID:    accountID,
		Confidence:     learnedConfidence,
		LastUsed:       s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record merchant mapping", slog.String("merchant", normalized))
		return fmt.Errorf("failed to record merchant mapping: %w", err)
	}
	return nil
}

func (s *classificationService) upsertRule(ctx context.Context, repo portsrepo.ClassificationWriter, organizationID, pattern, accountID string) (*domain.ClassificationRule, error) {
	now := s.Now()
	rule, err := repo.UpsertRule(ctx, domain.ClassificationRule{
		RuleID:         uuid.NewString(),
		OrganizationID: organizationID,
		Pattern:        pattern,
		AccountID:      accountID,
		Confidence:     learnedConfidence,
		TimesUsed:      1,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert classification rule", slog.String("pattern", pattern))
		return nil, fmt.Errorf("failed to save classification rule: %w", err)
	}
	return rule, nil
}

func (s *classificationService) ListRules(ctx context.Context, organizationID string) ([]domain.ClassificationRule, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}
	return s.classificationRepo.ListRules(ctx, organizationID)
}
