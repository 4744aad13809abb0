package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code          string  `json:"code" binding:"required,max=20" validate:"required,max=20"`
	Name          string  `json:"name" binding:"required,max=255" validate:"required,max=255"`
	AccountTypeID string  `json:"accountTypeID" binding:"required" validate:"required"`
	TaxCode       *string `json:"taxCode" binding:"omitempty,max=20" validate:"omitempty,max=20"`
	IsSystem      bool    `json:"isSystem"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255" validate:"omitempty,max=255"`
	IsActive *bool   `json:"isActive"`
	TaxCode  *string `json:"taxCode" binding:"omitempty,max=20" validate:"omitempty,max=20"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	AccountTypeID string    `json:"accountTypeID"`
	Category      string    `json:"category"`
	NormalBalance string    `json:"normalBalance"`
	IsActive      bool      `json:"isActive"`
	IsSystem      bool      `json:"isSystem"`
	TaxCode       *string   `json:"taxCode,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountTypeID: acc.AccountTypeID,
		Category:      string(acc.Category),
		NormalBalance: string(acc.NormalBalance),
		IsActive:      acc.IsActive,
		IsSystem:      acc.IsSystem,
		TaxCode:       acc.TaxCode,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// SeedChartResponse reports what the onboarding template created.
type SeedChartResponse struct {
	Created []AccountResponse `json:"created"`
	Skipped []string          `json:"skipped"`
}
