package domain

// AccountCategory is the fundamental accounting classification of an account type.
type AccountCategory string

const (
	Asset     AccountCategory = "asset"
	Liability AccountCategory = "liability"
	Equity    AccountCategory = "equity"
	Revenue   AccountCategory = "revenue"
	Expense   AccountCategory = "expense"
)

// IsValid reports whether c is one of the five known categories.
func (c AccountCategory) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalBalance returns the side on which accounts of this category increase.
func (c AccountCategory) NormalBalance() NormalBalance {
	switch c {
	case Asset, Expense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// NormalBalance is the natural increasing side of an account.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "debit"
	NormalCredit NormalBalance = "credit"
)

// AccountType is shared seed data: every tenant's accounts point at one of these.
type AccountType struct {
	AccountTypeID string          `json:"accountTypeID"`
	Name          string          `json:"name"`
	Category      AccountCategory `json:"category"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	DisplayOrder  int             `json:"displayOrder"`
}

// Account is one row of an organization's chart of accounts.
// Category and NormalBalance are denormalized from the account type when loaded.
type Account struct {
	AccountID      string          `json:"accountID"`
	OrganizationID string          `json:"organizationID"`
	AccountTypeID  string          `json:"accountTypeID"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	IsActive       bool            `json:"isActive"`
	IsSystem       bool            `json:"isSystem"`
	TaxCode        *string         `json:"taxCode,omitempty"`
	Category       AccountCategory `json:"category"`
	NormalBalance  NormalBalance   `json:"normalBalance"`
	AuditFields
}

// ReservedAccountCodes names the chart-of-accounts codes the posting template depends on.
type ReservedAccountCodes struct {
	VATInput        string
	VATOutput       string
	AccountsPayable string
}

// DefaultReservedAccountCodes matches the onboarding chart template.
func DefaultReservedAccountCodes() ReservedAccountCodes {
	return ReservedAccountCodes{
		VATInput:        "1150",
		VATOutput:       "2150",
		AccountsPayable: "2000",
	}
}
