package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies what produced a journal entry.
type SourceType string

const (
	SourceManual   SourceType = "manual"
	SourceInvoice  SourceType = "invoice"
	SourceBill     SourceType = "bill"
	SourcePayment  SourceType = "payment"
	SourceDocument SourceType = "document"
)

// IsValid reports whether s is a known source type.
func (s SourceType) IsValid() bool {
	switch s {
	case SourceManual, SourceInvoice, SourceBill, SourcePayment, SourceDocument:
		return true
	}
	return false
}

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	EntryStatusDraft    EntryStatus = "draft"
	EntryStatusPosted   EntryStatus = "posted"
	EntryStatusReversed EntryStatus = "reversed"
)

// JournalEntry is the immutable header of a balanced accounting record.
type JournalEntry struct {
	EntryID        string          `json:"entryID"`
	OrganizationID string          `json:"organizationID"`
	PeriodID       string          `json:"periodID"`
	EntryNumber    string          `json:"entryNumber"`
	Sequence       int             `json:"sequence"`
	EntryDate      time.Time       `json:"entryDate"`
	Description    string          `json:"description"`
	Reference      *string         `json:"reference,omitempty"`
	SourceType     SourceType      `json:"sourceType"`
	SourceID       *string         `json:"sourceID,omitempty"`
	Status         EntryStatus     `json:"status"`
	CurrencyCode   string          `json:"currencyCode"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ReversalOfID   *string         `json:"reversalOfID,omitempty"`
	PostedAt       time.Time       `json:"postedAt"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is one movement against a single account. Lines are append-only.
type JournalLine struct {
	LineID      string           `json:"lineID"`
	EntryID     string           `json:"entryID"`
	AccountID   string           `json:"accountID"`
	Description *string          `json:"description,omitempty"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	TaxCode     *string          `json:"taxCode,omitempty"`
	TaxAmount   *decimal.Decimal `json:"taxAmount,omitempty"`
	LineOrder   int              `json:"lineOrder"`
}

// EntryDraft is an unposted entry as supplied by a caller.
type EntryDraft struct {
	EntryDate    time.Time
	Description  string
	Reference    *string
	SourceType   SourceType
	SourceID     *string
	CurrencyCode string
	ReversalOfID *string
	Lines        []LineDraft
}

// LineDraft is one unposted line.
type LineDraft struct {
	AccountID   string
	Description *string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	TaxCode     *string
	TaxAmount   *decimal.Decimal
}

// Totals sums debits and credits after rounding each line to the minor unit.
func (d EntryDraft) Totals() (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range d.Lines {
		debit = debit.Add(RoundAmount(l.Debit))
		credit = credit.Add(RoundAmount(l.Credit))
	}
	return debit, credit
}

// AccountIDs returns the distinct account ids referenced by the draft, in line order.
func (d EntryDraft) AccountIDs() []string {
	seen := make(map[string]struct{}, len(d.Lines))
	ids := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.AccountID == "" {
			continue
		}
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}

// ValidationResult is the outcome of validating an EntryDraft.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// FirstError returns the user-facing message, or "" when valid.
func (r ValidationResult) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// FormatEntryNumber renders JE-YYYYMM-NNNN.
func FormatEntryNumber(entryDate time.Time, seq int) string {
	return fmt.Sprintf("JE-%s-%04d", entryDate.Format("200601"), seq)
}

// DocumentPosting is the normalized payload the document verification workflow supplies
// once a human has confirmed the extracted fields.
type DocumentPosting struct {
	DocumentID       string
	Date             time.Time
	TotalAmount      decimal.Decimal
	VATAmount        decimal.Decimal
	NetAmount        decimal.Decimal
	CurrencyCode     string
	MerchantName     string
	ExpenseAccountID string
	Reference        *string
}
