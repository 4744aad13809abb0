package dto

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse represents one row of an account's general ledger
type LedgerRowResponse struct {
	Date           string          `json:"date"`
	EntryID        string          `json:"entryID"`
	EntryNumber    string          `json:"entryNumber"`
	Description    string          `json:"description"`
	Reference      *string         `json:"reference,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerResponse represents the general ledger report response
type GeneralLedgerResponse struct {
	AccountID      string              `json:"accountID"`
	AccountCode    string              `json:"accountCode"`
	AccountName    string              `json:"accountName"`
	NormalBalance  string              `json:"normalBalance"`
	Rows           []LedgerRowResponse `json:"rows"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
}

// ToGeneralLedgerResponse converts ledger rows for one account.
func ToGeneralLedgerResponse(acc *domain.Account, rows []domain.LedgerRow) GeneralLedgerResponse {
	resp := GeneralLedgerResponse{
		AccountID:      acc.AccountID,
		AccountCode:    acc.Code,
		AccountName:    acc.Name,
		NormalBalance:  string(acc.NormalBalance),
		Rows:           make([]LedgerRowResponse, len(rows)),
		ClosingBalance: decimal.Zero,
	}
	for i, r := range rows {
		resp.Rows[i] = LedgerRowResponse{
			Date:           r.Date.Format(domain.DateLayout),
			EntryID:        r.EntryID,
			EntryNumber:    r.EntryNumber,
			Description:    r.Description,
			Reference:      r.Reference,
			Debit:          r.Debit,
			Credit:         r.Credit,
			RunningBalance: r.RunningBalance,
		}
		resp.ClosingBalance = r.RunningBalance
	}
	return resp
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Category    string          `json:"category"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf,omitempty"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	var resp TrialBalanceResponse
	if tb.AsOf != nil {
		resp.AsOf = tb.AsOf.Format(domain.DateLayout)
	}
	resp.Rows = make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   r.AccountID,
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			Category:    string(r.Category),
			Debit:       r.Debit,
			Credit:      r.Credit,
		}
	}
	resp.Totals.Debit = tb.TotalDebit
	resp.Totals.Credit = tb.TotalCredit
	return resp
}

// VATSummaryResponse represents the VAT return figures for a date range
type VATSummaryResponse struct {
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	OutputVAT        decimal.Decimal `json:"outputVat"`
	InputVAT         decimal.Decimal `json:"inputVat"`
	NetVAT           decimal.Decimal `json:"netVat"`
	TaxableSales     decimal.Decimal `json:"taxableSales"`
	TaxablePurchases decimal.Decimal `json:"taxablePurchases"`
	Position         string          `json:"position"`
}

// ToVATSummaryResponse converts a domain.VATSummary.
func ToVATSummaryResponse(s *domain.VATSummary) VATSummaryResponse {
	position := "nil"
	switch {
	case s.NetVAT.IsPositive():
		position = "payable"
	case s.NetVAT.IsNegative():
		position = "refund_due"
	}
	return VATSummaryResponse{
		StartDate:        s.StartDate.Format(domain.DateLayout),
		EndDate:          s.EndDate.Format(domain.DateLayout),
		OutputVAT:        s.OutputVAT,
		InputVAT:         s.InputVAT,
		NetVAT:           s.NetVAT,
		TaxableSales:     s.TaxableSales,
		TaxablePurchases: s.TaxablePurchases,
		Position:         position,
	}
}
