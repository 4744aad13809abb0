package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

// DefaultBaseCurrency is used when a tenant is created without one.
const DefaultBaseCurrency = "AED"

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service with the provided dependencies
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &organizationService{
		BaseService: newBaseService(),
		orgRepo:     orgRepo,
	}
}

// Ensure organizationService implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.requireOrganization(ctx, s.orgRepo, organizationID)
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.ListOrganizations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations")
		return nil, err
	}
	if orgs == nil {
		return []domain.Organization{}, nil
	}
	return orgs, nil
}

// CreateOrganization creates a tenant. Fiscal years are calendar years, so only a
// January start is accepted.
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.OrganizationID = strings.TrimSpace(req.OrganizationID)
	req.BaseCurrency = strings.ToUpper(strings.TrimSpace(req.BaseCurrency))
	if err := dto.Validate(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.FiscalYearStartMonth == 0 {
		req.FiscalYearStartMonth = 1
	}
	if req.FiscalYearStartMonth != 1 {
		return nil, apperrors.NewValidationError("fiscal years must start in January")
	}
	if req.BaseCurrency == "" {
		req.BaseCurrency = DefaultBaseCurrency
	}
	if req.OrganizationID == "" {
		req.OrganizationID = uuid.NewString()
	}

	org := domain.Organization{
		OrganizationID:       req.OrganizationID,
		Name:                 req.Name,
		BaseCurrency:         req.BaseCurrency,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		AuditFields:          domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: organization %s already exists", apperrors.ErrDuplicate, org.OrganizationID)
		}
		s.LogError(ctx, err, "Failed to save organization", slog.String("organization_id", org.OrganizationID))
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("base_currency", org.BaseCurrency))
	return &org, nil
}
