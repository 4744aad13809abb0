package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// OrganizationReader defines read operations for tenants
type OrganizationReader interface {
	// FindOrganizationByID returns apperrors.ErrNotFound when the tenant does not exist.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for tenants
type OrganizationWriter interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
