package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CreateOrganizationRequest defines data for creating a new tenant.
type CreateOrganizationRequest struct {
	OrganizationID       string `json:"organizationID" binding:"omitempty,max=64" validate:"omitempty,max=64"`
	Name                 string `json:"name" binding:"required,max=255" validate:"required,max=255"`
	BaseCurrency         string `json:"baseCurrency" binding:"omitempty,len=3" validate:"omitempty,len=3"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth" binding:"omitempty,min=1,max=12" validate:"omitempty,min=1,max=12"`
}

// OrganizationResponse defines data returned for a tenant.
type OrganizationResponse struct {
	OrganizationID       string    `json:"organizationID"`
	Name                 string    `json:"name"`
	BaseCurrency         string    `json:"baseCurrency"`
	FiscalYearStartMonth int       `json:"fiscalYearStartMonth"`
	CreatedAt            time.Time `json:"createdAt"`
	CreatedBy            string    `json:"createdBy"`
}

// ToOrganizationResponse converts domain.Organization to DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:       o.OrganizationID,
		Name:                 o.Name,
		BaseCurrency:         o.BaseCurrency,
		FiscalYearStartMonth: o.FiscalYearStartMonth,
		CreatedAt:            o.CreatedAt,
		CreatedBy:            o.CreatedBy,
	}
}

// ListOrganizationsResponse wraps a list of tenants.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToListOrganizationsResponse converts a slice of domain.Organization to DTO.
func ToListOrganizationsResponse(orgs []domain.Organization) ListOrganizationsResponse {
	list := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		list[i] = ToOrganizationResponse(&orgs[i])
	}
	return ListOrganizationsResponse{Organizations: list}
}
