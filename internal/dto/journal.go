package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one line of a manual journal entry.
// AccountID is checked by the journal engine so that all line problems are reported together.
type JournalLineRequest struct {
	AccountID   string           `json:"accountID"`
	Description *string          `json:"description"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	TaxCode     *string          `json:"taxCode" binding:"omitempty,max=20" validate:"omitempty,max=20"`
	TaxAmount   *decimal.Decimal `json:"taxAmount"`
}

// CreateJournalEntryRequest defines the data needed to validate or post an entry.
type CreateJournalEntryRequest struct {
	EntryDate    string               `json:"entryDate" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
	Description  string               `json:"description" binding:"required,max=500" validate:"required,max=500"`
	Reference    *string              `json:"reference" binding:"omitempty,max=100" validate:"omitempty,max=100"`
	SourceType   string               `json:"sourceType" binding:"omitempty,oneof=manual invoice bill payment document" validate:"omitempty,oneof=manual invoice bill payment document"`
	SourceID     *string              `json:"sourceID"`
	CurrencyCode string               `json:"currencyCode" binding:"omitempty,len=3" validate:"omitempty,len=3"`
	Lines        []JournalLineRequest `json:"lines" binding:"required,dive" validate:"required,dive"`
}

// ToDraft converts the request into a domain.EntryDraft.
func (r CreateJournalEntryRequest) ToDraft() (domain.EntryDraft, error) {
	entryDate, err := domain.ParseDate(r.EntryDate)
	if err != nil {
		return domain.EntryDraft{}, fmt.Errorf("invalid entryDate %q: %w", r.EntryDate, err)
	}
	sourceType := domain.SourceType(r.SourceType)
	if sourceType == "" {
		sourceType = domain.SourceManual
	}
	draft := domain.EntryDraft{
		EntryDate:    entryDate,
		Description:  r.Description,
		Reference:    r.Reference,
		SourceType:   sourceType,
		SourceID:     r.SourceID,
		CurrencyCode: r.CurrencyCode,
		Lines:        make([]domain.LineDraft, len(r.Lines)),
	}
	for i, l := range r.Lines {
		draft.Lines[i] = domain.LineDraft{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			TaxCode:     l.TaxCode,
			TaxAmount:   l.TaxAmount,
		}
	}
	return draft, nil
}

// PostDocumentRequest is the confirmed payload of a verified receipt or bill.
type PostDocumentRequest struct {
	DocumentID   string          `json:"documentID" binding:"required" validate:"required"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	VATAmount    decimal.Decimal `json:"vatAmount"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	CurrencyCode string          `json:"currency" binding:"omitempty,len=3" validate:"omitempty,len=3"`
	MerchantName string          `json:"merchantName" binding:"required,max=255" validate:"required,max=255"`
	GLAccountID  string          `json:"glAccountID" binding:"required" validate:"required"`
	Reference    *string         `json:"reference"`
}

// ToDocumentPosting converts the request into a domain.DocumentPosting.
func (r PostDocumentRequest) ToDocumentPosting() (domain.DocumentPosting, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.DocumentPosting{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	return domain.DocumentPosting{
		DocumentID:       r.DocumentID,
		Date:             date,
		TotalAmount:      r.TotalAmount,
		VATAmount:        r.VATAmount,
		NetAmount:        r.NetAmount,
		CurrencyCode:     r.CurrencyCode,
		MerchantName:     r.MerchantName,
		ExpenseAccountID: r.GLAccountID,
		Reference:        r.Reference,
	}, nil
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string           `json:"lineID"`
	AccountID   string           `json:"accountID"`
	Description *string          `json:"description,omitempty"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	TaxCode     *string          `json:"taxCode,omitempty"`
	TaxAmount   *decimal.Decimal `json:"taxAmount,omitempty"`
	LineOrder   int              `json:"lineOrder"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID      string                `json:"entryID"`
	EntryNumber  string                `json:"entryNumber"`
	PeriodID     string                `json:"periodID"`
	EntryDate    string                `json:"entryDate"`
	Description  string                `json:"description"`
	Reference    *string               `json:"reference,omitempty"`
	SourceType   string                `json:"sourceType"`
	SourceID     *string               `json:"sourceID,omitempty"`
	Status       string                `json:"status"`
	CurrencyCode string                `json:"currencyCode"`
	TotalDebit   decimal.Decimal       `json:"totalDebit"`
	TotalCredit  decimal.Decimal       `json:"totalCredit"`
	ReversalOfID *string               `json:"reversalOfID,omitempty"`
	PostedAt     time.Time             `json:"postedAt"`
	CreatedBy    string                `json:"createdBy"`
	Lines        []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:      e.EntryID,
		EntryNumber:  e.EntryNumber,
		PeriodID:     e.PeriodID,
		EntryDate:    e.EntryDate.Format(domain.DateLayout),
		Description:  e.Description,
		Reference:    e.Reference,
		SourceType:   string(e.SourceType),
		SourceID:     e.SourceID,
		Status:       string(e.Status),
		CurrencyCode: e.CurrencyCode,
		TotalDebit:   e.TotalDebit,
		TotalCredit:  e.TotalCredit,
		ReversalOfID: e.ReversalOfID,
		PostedAt:     e.PostedAt,
		CreatedBy:    e.CreatedBy,
	}
	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			TaxCode:     l.TaxCode,
			TaxAmount:   l.TaxAmount,
			LineOrder:   l.LineOrder,
		})
	}
	return resp
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ValidateJournalEntryResponse reports the outcome of a dry-run validation.
type ValidateJournalEntryResponse struct {
	Valid  bool     `json:"valid"`
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors"`
}

// ToValidateJournalEntryResponse converts a domain.ValidationResult.
func ToValidateJournalEntryResponse(r domain.ValidationResult) ValidateJournalEntryResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidateJournalEntryResponse{Valid: r.Valid, Error: r.FirstError(), Errors: errs}
}
