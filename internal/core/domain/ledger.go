package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostedLine is a journal line joined with its entry header and account, the input
// every ledger projection is computed from.
type PostedLine struct {
	EntryID          string
	EntryNumber      string
	EntrySequence    int
	EntryDate        time.Time
	EntryDescription string
	Reference        *string
	LineID           string
	AccountID        string
	AccountCode      string
	AccountName      string
	Category         AccountCategory
	NormalBalance    NormalBalance
	LineDescription  *string
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	TaxCode          *string
	TaxAmount        *decimal.Decimal
	LineOrder        int
}

// LedgerRow is one line of an account's general ledger.
type LedgerRow struct {
	Date           time.Time       `json:"date"`
	EntryID        string          `json:"entryID"`
	EntryNumber    string          `json:"entryNumber"`
	Description    string          `json:"description"`
	Reference      *string         `json:"reference,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// TrialBalanceRow is one account's net position. At most one of Debit/Credit is non-zero.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Category    AccountCategory `json:"category"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance is the organization-wide snapshot. TotalDebit always equals TotalCredit.
type TrialBalance struct {
	AsOf        *time.Time        `json:"asOf,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}
