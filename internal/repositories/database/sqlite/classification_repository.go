package sqlite

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

type ClassificationRepository struct {
	BaseRepository
}

var _ portsrepo.ClassificationRepositoryFacade = (*ClassificationRepository)(nil)

const ruleColumns = `rule_id, organization_id, pattern, account_id, confidence, times_used, created_at, updated_at`

func scanRule(row scanner) (domain.ClassificationRule, error) {
	var rule domain.ClassificationRule
	err := row.Scan(&rule.RuleID, &rule.OrganizationID, &rule.Pattern, &rule.AccountID,
		&rule.Confidence, &rule.TimesUsed, &rule.CreatedAt, &rule.UpdatedAt)
	return rule, err
}

func (r *ClassificationRepository) ListRules(ctx context.Context, organizationID string) ([]domain.ClassificationRule, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+ruleColumns+` FROM classification_rules WHERE organization_id = ? ORDER BY rule_seq`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to list classification rules")
	}
	rules, err := collectRows(rows, scanRule)
	if err != nil {
		return nil, mapError(err, "failed to collect classification rule rows")
	}
	return rules, nil
}

func (r *ClassificationRepository) FindMerchantMapping(ctx context.Context, organizationID, merchantName string) (*domain.MerchantMapping, error) {
	var m domain.MerchantMapping
	err := r.DB.QueryRowContext(ctx, `
		SELECT organization_id, merchant_name, gl_account_id, confidence, last_used
		FROM merchant_map
		WHERE organization_id = ? AND merchant_name = ?
	`, organizationID, merchantName).Scan(&m.OrganizationID, &m.MerchantName, &m.GLAccountID, &m.Confidence, &m.LastUsed)
	if err != nil {
		return nil, mapError(err, "merchant mapping "+merchantName)
	}
	return &m, nil
}

// UpsertRule reads the row back with a plain SELECT: RETURNING columns carry no
// declared type, so the driver would not convert timestamps.
func (r *ClassificationRepository) UpsertRule(ctx context.Context, rule domain.ClassificationRule) (*domain.ClassificationRule, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO classification_rules (rule_id, organization_id, pattern, account_id, confidence, times_used, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (organization_id, pattern) DO UPDATE
		SET account_id = excluded.account_id,
			times_used = classification_rules.times_used + 1,
			updated_at = excluded.updated_at
	`, rule.RuleID, rule.OrganizationID, rule.Pattern, rule.AccountID,
		rule.Confidence, rule.TimesUsed, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "failed to upsert classification rule "+rule.Pattern)
	}
	stored, err := scanRule(r.DB.QueryRowContext(ctx,
		`SELECT `+ruleColumns+` FROM classification_rules WHERE organization_id = ? AND pattern = ?`,
		rule.OrganizationID, rule.Pattern))
	if err != nil {
		return nil, mapError(err, "classification rule "+rule.Pattern)
	}
	return &stored, nil
}

func (r *ClassificationRepository) UpsertMerchantMapping(ctx context.Context, mapping domain.MerchantMapping) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO merchant_map (organization_id, merchant_name, gl_account_id, confidence, last_used)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (organization_id, merchant_name) DO UPDATE
		SET gl_account_id = excluded.gl_account_id,
			confidence = excluded.confidence,
			last_used = excluded.last_used
	`, mapping.OrganizationID, mapping.MerchantName, mapping.GLAccountID, mapping.Confidence, mapping.LastUsed)
	return mapError(err, "failed to upsert merchant mapping "+mapping.MerchantName)
}
