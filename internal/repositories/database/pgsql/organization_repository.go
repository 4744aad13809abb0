package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

const organizationSelect = `
SELECT organization_id, name, base_currency, fiscal_year_start_month,
	created_at, created_by, last_updated_at, last_updated_by
FROM organizations
`

func scanOrganization(row pgx.CollectableRow) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(&o.OrganizationID, &o.Name, &o.BaseCurrency, &o.FiscalYearStartMonth,
		&o.CreatedAt, &o.CreatedBy, &o.LastUpdatedAt, &o.LastUpdatedBy)
	return o, err
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	rows, err := r.DB.Query(ctx, organizationSelect+`WHERE organization_id = $1`, organizationID)
	if err != nil {
		return nil, mapError(err, "failed to query organization")
	}
	org, err := pgx.CollectExactlyOneRow(rows, scanOrganization)
	if err != nil {
		return nil, mapError(err, "organization "+organizationID)
	}
	return &org, nil
}

func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.DB.Query(ctx, organizationSelect+`ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "failed to list organizations")
	}
	orgs, err := pgx.CollectRows(rows, scanOrganization)
	if err != nil {
		return nil, mapError(err, "failed to collect organization rows")
	}
	return orgs, nil
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		INSERT INTO organizations (organization_id, name, base_currency, fiscal_year_start_month,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.Exec(ctx, query, org.OrganizationID, org.Name, org.BaseCurrency, org.FiscalYearStartMonth,
		org.CreatedAt, org.CreatedBy, org.LastUpdatedAt, org.LastUpdatedBy)
	return mapError(err, "failed to save organization "+org.OrganizationID)
}
