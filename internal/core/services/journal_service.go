package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ports"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
)

// DefaultDocumentTaxCode tags the lines of a document posting that carry VAT.
const DefaultDocumentTaxCode = "VAT5"

// journalService validates and posts journal entries.
type journalService struct {
	BaseService
	journalRepo     portsrepo.JournalReader
	orgRepo         portsrepo.OrganizationReader
	txManager       portsrepo.TransactionManager
	periodSvc       portssvc.PeriodResolverSvc
	classifier      portssvc.ClassificationSvc
	audit           ports.AuditWriter
	reserved        domain.ReservedAccountCodes
	documentTaxCode string
}

// JournalServiceOption is a function that configures a journalService
type JournalServiceOption func(*journalService)

// WithReservedAccountCodes overrides the chart codes used by the document template.
func WithReservedAccountCodes(codes domain.ReservedAccountCodes) JournalServiceOption {
	return func(s *journalService) {
		s.reserved = codes
	}
}

// WithDocumentTaxCode overrides the tax code stamped on document VAT lines.
func WithDocumentTaxCode(code string) JournalServiceOption {
	return func(s *journalService) {
		if code != "" {
			s.documentTaxCode = code
		}
	}
}

// WithAuditWriter sets where post-commit audit events go.
func WithAuditWriter(w ports.AuditWriter) JournalServiceOption {
	return func(s *journalService) {
		s.audit = w
	}
}

// WithClassificationService lets document postings teach the learner.
func WithClassificationService(c portssvc.ClassificationSvc) JournalServiceOption {
	return func(s *journalService) {
		s.classifier = c
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalReader, orgRepo portsrepo.OrganizationReader, txManager portsrepo.TransactionManager, periodSvc portssvc.PeriodResolverSvc, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		BaseService:     newBaseService(),
		journalRepo:     journalRepo,
		orgRepo:         orgRepo,
		txManager:       txManager,
		periodSvc:       periodSvc,
		reserved:        domain.DefaultReservedAccountCodes(),
		documentTaxCode: DefaultDocumentTaxCode,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// Validate applies the structural entry rules without touching storage.
func (s *journalService) Validate(draft domain.EntryDraft) domain.ValidationResult {
	return accounting.ValidateDraft(draft)
}

// PostEntry validates the draft and persists it in a single transaction.
func (s *journalService) PostEntry(ctx context.Context, organizationID string, draft domain.EntryDraft, userID string) (*domain.JournalEntry, error) {
	org, err := s.prepareDraft(ctx, organizationID, &draft)
	if err != nil {
		return nil, err
	}

	var entry *domain.JournalEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var txErr error
		entry, txErr = s.postInTx(ctx, repos, org, draft, userID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("total", entry.TotalDebit.StringFixed(domain.AmountPlaces)))
	s.recordAudit(ctx, domain.AuditEntryPosted, entry, userID, nil)
	return entry, nil
}

// PostDocument builds the fixed template for a verified document:
//
//	Dr expense        net
//	Dr VAT input      vat   (only when vat > 0)
//	Cr payable        total
//
// Both reserved accounts must exist in the chart; a missing one fails the posting.
func (s *journalService) PostDocument(ctx context.Context, organizationID string, doc domain.DocumentPosting, userID string) (*domain.JournalEntry, error) {
	if errs := validateDocument(doc); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}
	org, err := s.requireOrganization(ctx, s.orgRepo, organizationID)
	if err != nil {
		return nil, err
	}

	var entry *domain.JournalEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		draft, err := s.buildDocumentDraft(ctx, repos, organizationID, doc)
		if err != nil {
			return err
		}
		if _, err := s.prepareDraftFor(org, &draft); err != nil {
			return err
		}
		entry, err = s.postInTx(ctx, repos, org, draft, userID)
		if err != nil {
			return err
		}
		if s.classifier != nil {
			if err := s.classifier.RecordMerchantTx(ctx, repos, organizationID, doc.MerchantName, doc.ExpenseAccountID); err != nil {
				return fmt.Errorf("failed to record merchant classification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Document posted",
		slog.String("document_id", doc.DocumentID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("merchant", doc.MerchantName))
	s.recordAudit(ctx, domain.AuditDocumentPosted, entry, userID, map[string]string{
		"document_id": doc.DocumentID,
		"merchant":    doc.MerchantName,
	})
	return entry, nil
}

// ReverseEntry posts the mirror image of an entry dated today. The original is left untouched.
func (s *journalService) ReverseEntry(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error) {
	org, err := s.requireOrganization(ctx, s.orgRepo, organizationID)
	if err != nil {
		return nil, err
	}

	var reversal *domain.JournalEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		original, err := repos.JournalRepo.FindEntryByID(ctx, organizationID, entryID)
		if err != nil {
			return err
		}
		if original.ReversalOfID != nil {
			return fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrConflict, original.EntryNumber)
		}
		existing, err := repos.JournalRepo.FindReversalOf(ctx, organizationID, entryID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: entry %s was already reversed by %s", apperrors.ErrConflict, original.EntryNumber, existing.EntryNumber)
		case !errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("failed to check for existing reversal: %w", err)
		}

		draft := domain.EntryDraft{
			EntryDate:    domain.TruncateDate(s.Now()),
			Description:  fmt.Sprintf("Reversal of %s", original.EntryNumber),
			Reference:    &original.EntryNumber,
			SourceType:   domain.SourceManual,
			CurrencyCode: original.CurrencyCode,
			ReversalOfID: &original.EntryID,
			Lines:        make([]domain.LineDraft, len(original.Lines)),
		}
		for i, l := range original.Lines {
			draft.Lines[i] = domain.LineDraft{
				AccountID:   l.AccountID,
				Description: l.Description,
				Debit:       l.Credit,
				Credit:      l.Debit,
				TaxCode:     l.TaxCode,
				TaxAmount:   l.TaxAmount,
			}
		}
		if res := s.Validate(draft); !res.Valid {
			return apperrors.NewValidationError(res.Errors...)
		}
		reversal, err = s.postInTx(ctx, repos, org, draft, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("original_entry_id", entryID),
		slog.String("reversal_entry_number", reversal.EntryNumber))
	s.recordAudit(ctx, domain.AuditEntryReversed, reversal, userID, map[string]string{"reversal_of": entryID})
	return reversal, nil
}

func (s *journalService) GetEntry(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, organizationID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if nextToken != nil && *nextToken != "" {
		if _, _, err := pagination.DecodeEntryCursor(*nextToken); err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
	}
	if _, err := s.requireOrganization(ctx, s.orgRepo, organizationID); err != nil {
		return nil, nil, err
	}
	return s.journalRepo.ListEntries(ctx, organizationID, pagination.ClampLimit(limit), nextToken)
}

// prepareDraft validates a caller-supplied draft and fills defaults from the organization.
func (s *journalService) prepareDraft(ctx context.Context, organizationID string, draft *domain.EntryDraft) (*domain.Organization, error) {
	if res := s.Validate(*draft); !res.Valid {
		return nil, apperrors.NewValidationError(res.Errors...)
	}
	org, err := s.requireOrganization(ctx, s.orgRepo, organizationID)
	if err != nil {
		return nil, err
	}
	return s.prepareDraftFor(org, draft)
}

func (s *journalService) prepareDraftFor(org *domain.Organization, draft *domain.EntryDraft) (*domain.Organization, error) {
	if draft.SourceType == "" {
		draft.SourceType = domain.SourceManual
	}
	if !draft.SourceType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown source type %q", draft.SourceType))
	}
	if draft.SourceID != nil && *draft.SourceID == "" {
		draft.SourceID = nil
	}
	if draft.CurrencyCode == "" {
		draft.CurrencyCode = org.BaseCurrency
	}
	if draft.CurrencyCode != org.BaseCurrency {
		return nil, apperrors.NewValidationError(fmt.Sprintf("currency %s does not match the organization's base currency %s", draft.CurrencyCode, org.BaseCurrency))
	}
	if draft.EntryDate.IsZero() {
		return nil, apperrors.NewValidationError("entry date is required")
	}
	if draft.Description == "" {
		return nil, apperrors.NewValidationError("description is required")
	}
	return org, nil
}

// postInTx persists a validated draft using repositories bound to the open transaction.
func (s *journalService) postInTx(ctx context.Context, repos portsrepo.RepositoryProvider, org *domain.Organization, draft domain.EntryDraft, userID string) (*domain.JournalEntry, error) {
	organizationID := org.OrganizationID

	accounts, err := repos.AccountRepo.FindAccountsByIDs(ctx, organizationID, draft.AccountIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	var accountErrs []string
	for i, l := range draft.Lines {
		acc, ok := accounts[l.AccountID]
		switch {
		case !ok:
			accountErrs = append(accountErrs, fmt.Sprintf("line %d: account %s does not exist in this organization", i+1, l.AccountID))
		case !acc.IsActive:
			accountErrs = append(accountErrs, fmt.Sprintf("line %d: account %s is inactive", i+1, acc.Code))
		}
	}
	if len(accountErrs) > 0 {
		return nil, apperrors.NewValidationError(accountErrs...)
	}

	if draft.SourceID != nil {
		existing, err := repos.JournalRepo.FindEntryBySource(ctx, organizationID, draft.SourceType, *draft.SourceID)
		switch {
		case err == nil:
			return nil, fmt.Errorf("%w: %s %s was already posted as %s", apperrors.ErrConflict, draft.SourceType, *draft.SourceID, existing.EntryNumber)
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed to check source document: %w", err)
		}
	}

	period, err := s.periodSvc.ResolveOrCreatePeriodTx(ctx, repos, organizationID, draft.EntryDate)
	if err != nil {
		return nil, err
	}
	if !period.IsOpen() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("accounting period %s is %s", period.Name, period.Status))
	}

	seq, err := repos.JournalRepo.NextEntrySequence(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate entry number: %w", err)
	}

	now := s.Now()
	entryDate := domain.TruncateDate(draft.EntryDate)
	totalDebit, totalCredit := draft.Totals()
	entry := domain.JournalEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: organizationID,
		PeriodID:       period.PeriodID,
		EntryNumber:    domain.FormatEntryNumber(entryDate, seq),
		Sequence:       seq,
		EntryDate:      entryDate,
		Description:    draft.Description,
		Reference:      draft.Reference,
		SourceType:     draft.SourceType,
		SourceID:       draft.SourceID,
		Status:         domain.EntryStatusPosted,
		CurrencyCode:   draft.CurrencyCode,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ReversalOfID:   draft.ReversalOfID,
		PostedAt:       now,
		AuditFields:    domain.NewAuditFields(userID, now),
		Lines:          make([]domain.JournalLine, len(draft.Lines)),
	}
	for i, l := range draft.Lines {
		line := domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       domain.RoundAmount(l.Debit),
			Credit:      domain.RoundAmount(l.Credit),
			TaxCode:     l.TaxCode,
			LineOrder:   i + 1,
		}
		if l.TaxAmount != nil {
			tax := domain.RoundAmount(*l.TaxAmount)
			line.TaxAmount = &tax
		}
		entry.Lines[i] = line
	}

	if err := repos.JournalRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_number", entry.EntryNumber))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	return &entry, nil
}

func validateDocument(doc domain.DocumentPosting) []string {
	var errs []string
	if doc.DocumentID == "" {
		errs = append(errs, "document id is required")
	}
	if doc.ExpenseAccountID == "" {
		errs = append(errs, "expense account is required")
	}
	if doc.MerchantName == "" {
		errs = append(errs, "merchant name is required")
	}
	if doc.Date.IsZero() {
		errs = append(errs, "document date is required")
	}
	if !doc.NetAmount.IsPositive() {
		errs = append(errs, "net amount must be greater than zero")
	}
	if doc.VATAmount.IsNegative() {
		errs = append(errs, "vat amount cannot be negative")
	}
	net, vat, total := domain.RoundAmount(doc.NetAmount), domain.RoundAmount(doc.VATAmount), domain.RoundAmount(doc.TotalAmount)
	if !net.Add(vat).Equal(total) {
		errs = append(errs, fmt.Sprintf("document amounts do not add up: net %s + vat %s != total %s",
			net.StringFixed(domain.AmountPlaces), vat.StringFixed(domain.AmountPlaces), total.StringFixed(domain.AmountPlaces)))
	}
	return errs
}

// buildDocumentDraft resolves the reserved accounts and lays out the template lines.
func (s *journalService) buildDocumentDraft(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, doc domain.DocumentPosting) (domain.EntryDraft, error) {
	hasVAT := doc.VATAmount.IsPositive()
	codes := []string{s.reserved.AccountsPayable}
	if hasVAT {
		codes = append(codes, s.reserved.VATInput)
	}
	reserved, err := repos.AccountRepo.FindAccountsByCodes(ctx, organizationID, codes)
	if err != nil {
		return domain.EntryDraft{}, fmt.Errorf("failed to load reserved accounts: %w", err)
	}

	var missing []string
	payable, ok := reserved[s.reserved.AccountsPayable]
	if !ok {
		missing = append(missing, fmt.Sprintf("accounts payable account (code %s) is missing from the chart of accounts", s.reserved.AccountsPayable))
	}
	vatInput, vatOK := reserved[s.reserved.VATInput]
	if hasVAT && !vatOK {
		missing = append(missing, fmt.Sprintf("VAT input account (code %s) is missing from the chart of accounts", s.reserved.VATInput))
	}
	if len(missing) > 0 {
		s.LogError(ctx, errors.New("reserved account missing"), "Document posting rejected",
			slog.String("document_id", doc.DocumentID))
		return domain.EntryDraft{}, apperrors.NewValidationError(missing...)
	}

	documentID := doc.DocumentID
	merchant := doc.MerchantName
	taxCode := s.documentTaxCode
	draft := domain.EntryDraft{
		EntryDate:    doc.Date,
		Description:  fmt.Sprintf("Bill from %s", merchant),
		Reference:    doc.Reference,
		SourceType:   domain.SourceDocument,
		SourceID:     &documentID,
		CurrencyCode: doc.CurrencyCode,
	}

	expense := domain.LineDraft{
		AccountID:   doc.ExpenseAccountID,
		Description: &merchant,
		Debit:       doc.NetAmount,
		Credit:      decimal.Zero,
	}
	if hasVAT {
		expense.TaxCode = &taxCode
	}
	draft.Lines = append(draft.Lines, expense)

	if hasVAT {
		vat := domain.RoundAmount(doc.VATAmount)
		draft.Lines = append(draft.Lines, domain.LineDraft{
			AccountID: vatInput.AccountID,
			Debit:     vat,
			Credit:    decimal.Zero,
			TaxCode:   &taxCode,
			TaxAmount: &vat,
		})
	}

	draft.Lines = append(draft.Lines, domain.LineDraft{
		AccountID:   payable.AccountID,
		Description: &merchant,
		Debit:       decimal.Zero,
		Credit:      doc.TotalAmount,
	})

	if res := s.Validate(draft); !res.Valid {
		return domain.EntryDraft{}, apperrors.NewValidationError(res.Errors...)
	}
	return draft, nil
}

// recordAudit hands the event to the audit writer. Failures are logged, never returned:
// the entry is already committed.
func (s *journalService) recordAudit(ctx context.Context, action domain.AuditAction, entry *domain.JournalEntry, userID string, details map[string]string) {
	if s.audit == nil {
		return
	}
	if details == nil {
		details = map[string]string{}
	}
	details["entry_number"] = entry.EntryNumber
	details["total"] = entry.TotalDebit.StringFixed(domain.AmountPlaces)
	event := domain.AuditEvent{
		OrganizationID: entry.OrganizationID,
		Action:         action,
		EntityType:     "journal_entry",
		EntityID:       entry.EntryID,
		UserID:         userID,
		OccurredAt:     entry.PostedAt,
		Details:        details,
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to record audit event",
			slog.String("action", string(action)),
			slog.String("entry_id", entry.EntryID))
	}
}
