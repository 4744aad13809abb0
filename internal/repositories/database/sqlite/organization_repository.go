package sqlite

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

type OrganizationRepository struct {
	BaseRepository
}

var _ portsrepo.OrganizationRepositoryFacade = (*OrganizationRepository)(nil)

const organizationSelect = `
SELECT organization_id, name, base_currency, fiscal_year_start_month,
	created_at, created_by, last_updated_at, last_updated_by
FROM organizations
`

func scanOrganization(row scanner) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(&o.OrganizationID, &o.Name, &o.BaseCurrency, &o.FiscalYearStartMonth,
		&o.CreatedAt, &o.CreatedBy, &o.LastUpdatedAt, &o.LastUpdatedBy)
	return o, err
}

func (r *OrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := scanOrganization(r.DB.QueryRowContext(ctx, organizationSelect+`WHERE organization_id = ?`, organizationID))
	if err != nil {
		return nil, mapError(err, "organization "+organizationID)
	}
	return &org, nil
}

func (r *OrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.DB.QueryContext(ctx, organizationSelect+`ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "failed to list organizations")
	}
	orgs, err := collectRows(rows, scanOrganization)
	if err != nil {
		return nil, mapError(err, "failed to collect organization rows")
	}
	return orgs, nil
}

func (r *OrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO organizations (organization_id, name, base_currency, fiscal_year_start_month,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, org.OrganizationID, org.Name, org.BaseCurrency, org.FiscalYearStartMonth,
		org.CreatedAt, org.CreatedBy, org.LastUpdatedAt, org.LastUpdatedBy)
	return mapError(err, "failed to save organization "+org.OrganizationID)
}
