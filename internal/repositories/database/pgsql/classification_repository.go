package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxClassificationRepository struct {
	BaseRepository
}

var _ portsrepo.ClassificationRepositoryFacade = (*PgxClassificationRepository)(nil)

const ruleColumns = `rule_id, organization_id, pattern, account_id, confidence, times_used, created_at, updated_at`

func scanRule(row pgx.CollectableRow) (domain.ClassificationRule, error) {
	var rule domain.ClassificationRule
	err := row.Scan(&rule.RuleID, &rule.OrganizationID, &rule.Pattern, &rule.AccountID,
		&rule.Confidence, &rule.TimesUsed, &rule.CreatedAt, &rule.UpdatedAt)
	return rule, err
}

// ListRules returns rules in insertion order so the first stored match wins.
func (r *PgxClassificationRepository) ListRules(ctx context.Context, organizationID string) ([]domain.ClassificationRule, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+ruleColumns+` FROM classification_rules WHERE organization_id = $1 ORDER BY rule_seq`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to list classification rules")
	}
	rules, err := pgx.CollectRows(rows, scanRule)
	if err != nil {
		return nil, mapError(err, "failed to collect classification rule rows")
	}
	return rules, nil
}

func (r *PgxClassificationRepository) FindMerchantMapping(ctx context.Context, organizationID, merchantName string) (*domain.MerchantMapping, error) {
	var m domain.MerchantMapping
	err := r.DB.QueryRow(ctx, `
		SELECT organization_id, merchant_name, gl_account_id, confidence, last_used
		FROM merchant_map
		WHERE organization_id = $1 AND merchant_name = $2
	`, organizationID, merchantName).Scan(&m.OrganizationID, &m.MerchantName, &m.GLAccountID, &m.Confidence, &m.LastUsed)
	if err != nil {
		return nil, mapError(err, "merchant mapping "+merchantName)
	}
	return &m, nil
}

func (r *PgxClassificationRepository) UpsertRule(ctx context.Context, rule domain.ClassificationRule) (*domain.ClassificationRule, error) {
	rows, err := r.DB.Query(ctx, `
		INSERT INTO classification_rules (rule_id, organization_id, pattern, account_id, confidence, times_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (organization_id, pattern) DO UPDATE
		SET account_id = EXCLUDED.account_id,
			times_used = classification_rules.times_used + 1,
			updated_at = EXCLUDED.updated_at
		RETURNING `+ruleColumns,
		rule.RuleID, rule.OrganizationID, rule.Pattern, rule.AccountID,
		rule.Confidence, rule.TimesUsed, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "failed to upsert classification rule")
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanRule)
	if err != nil {
		return nil, mapError(err, "failed to upsert classification rule "+rule.Pattern)
	}
	return &stored, nil
}

func (r *PgxClassificationRepository) UpsertMerchantMapping(ctx context.Context, mapping domain.MerchantMapping) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO merchant_map (organization_id, merchant_name, gl_account_id, confidence, last_used)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (organization_id, merchant_name) DO UPDATE
		SET gl_account_id = EXCLUDED.gl_account_id,
			confidence = EXCLUDED.confidence,
			last_used = EXCLUDED.last_used
	`, mapping.OrganizationID, mapping.MerchantName, mapping.GLAccountID, mapping.Confidence, mapping.LastUsed)
	return mapError(err, "failed to upsert merchant mapping "+mapping.MerchantName)
}
