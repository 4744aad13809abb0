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
	"github.com/SscSPs/ledger_core/internal/core/seeddata"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

// accountService manages an organization's chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	orgRepo     portsrepo.OrganizationReader
	chart       func() ([]seeddata.ChartAccount, error)
}

// AccountServiceOption is a function that configures an accountService
type AccountServiceOption func(*accountService)

// WithChartTemplate replaces the embedded onboarding chart.
func WithChartTemplate(chart func() ([]seeddata.ChartAccount, error)) AccountServiceOption {
	return func(s *accountService) {
		s.chart = chart
	}
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, orgRepo portsrepo.OrganizationReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		BaseService: newBaseService(),
		accountRepo: accountRepo,
		orgRepo:     orgRepo,
		chart:       seeddata.ChartOfAccounts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account after checking its type and code.
func (s *accountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if err := dto.Validate(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}

	accType, err := s.accountRepo.FindAccountTypeByID(ctx, req.AccountTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown account type %q", req.AccountTypeID))
		}
		return nil, fmt.Errorf("failed to load account type: %w", err)
	}

	account := domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: organizationID,
		AccountTypeID:  accType.AccountTypeID,
		Code:           req.Code,
		Name:           req.Name,
		IsActive:       true,
		IsSystem:       req.IsSystem,
		TaxCode:        req.TaxCode,
		Category:       accType.Category,
		NormalBalance:  accType.NormalBalance,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, account.Code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("organization_id", organizationID), slog.String("code", account.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, organizationID, strings.TrimSpace(code))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("organization_id", organizationID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	return s.accountRepo.ListAccountTypes(ctx)
}

// UpdateAccount applies the provided fields. Code and type are fixed once created.
func (s *accountService) UpdateAccount(ctx context.Context, organizationID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		account.Name = name
	}
	if req.IsActive != nil {
		if account.IsSystem && !*req.IsActive {
			return nil, fmt.Errorf("%w: system account %s cannot be deactivated", apperrors.ErrConflict, account.Code)
		}
		account.IsActive = *req.IsActive
	}
	if req.TaxCode != nil {
		if *req.TaxCode == "" {
			account.TaxCode = nil
		} else {
			account.TaxCode = req.TaxCode
		}
	}
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// DeleteAccount refuses system accounts and accounts any journal line references.
func (s *accountService) DeleteAccount(ctx context.Context, organizationID, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return fmt.Errorf("%w: system account %s cannot be deleted", apperrors.ErrConflict, account.Code)
	}
	referenced, err := s.accountRepo.IsAccountReferenced(ctx, organizationID, accountID)
	if err != nil {
		return fmt.Errorf("failed to check account usage: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: account %s has journal lines and cannot be deleted", apperrors.ErrConflict, account.Code)
	}
	if err := s.accountRepo.DeleteAccount(ctx, organizationID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("code", account.Code))
	return nil
}

// SeedChartOfAccounts creates every template account whose code is not yet in the chart.
func (s *accountService) SeedChartOfAccounts(ctx context.Context, organizationID, userID string) ([]domain.Account, []string, error) {
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, nil, err
	}
	template, err := s.chart()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load chart template: %w", err)
	}

	codes := make([]string, len(template))
	for i, a := range template {
		codes[i] = a.Code
	}
	existing, err := s.accountRepo.FindAccountsByCodes(ctx, organizationID, codes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load existing accounts: %w", err)
	}

	var created []domain.Account
	var skipped []string
	for _, a := range template {
		if _, ok := existing[a.Code]; ok {
			skipped = append(skipped, a.Code)
			continue
		}
		req := dto.CreateAccountRequest{
			Code:          a.Code,
			Name:          a.Name,
			AccountTypeID: a.AccountTypeID,
			IsSystem:      a.IsSystem,
		}
		if a.TaxCode != "" {
			taxCode := a.TaxCode
			req.TaxCode = &taxCode
		}
		account, err := s.CreateAccount(ctx, organizationID, req, userID)
		if err != nil {
			// a concurrent seed may have inserted the code in the meantime
			if errors.Is(err, apperrors.ErrDuplicate) {
				skipped = append(skipped, a.Code)
				continue
			}
			return created, skipped, err
		}
		created = append(created, *account)
	}

	s.LogInfo(ctx, "Chart of accounts seeded",
		slog.String("organization_id", organizationID),
		slog.Int("created", len(created)),
		slog.Int("skipped", len(skipped)))
	return created, skipped, nil
}
