package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// OrganizationReaderSvc defines read operations for tenants
type OrganizationReaderSvc interface {
	// GetOrganization retrieves a specific tenant by its ID.
	GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error)

	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}

// OrganizationWriterSvc defines write operations for tenants
type OrganizationWriterSvc interface {
	// CreateOrganization persists a new tenant. An empty OrganizationID gets a generated one.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
