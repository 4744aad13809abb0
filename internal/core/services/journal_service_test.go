package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type JournalServiceTestSuite struct {
	suite.Suite
	orgRepo     *MockOrganizationRepository
	accountRepo *MockAccountRepository
	periodRepo  *MockPeriodRepository
	journalRepo *MockJournalRepository
	classRepo   *MockClassificationRepository
	audit       *MockAuditWriter
	tx          *fakeTxManager
	service     portssvc.JournalSvcFacade

	orgID  string
	userID string
	org    domain.Organization
	march  domain.AccountingPeriod

	cash, sales, office, vatIn, payable domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.orgRepo = new(MockOrganizationRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.periodRepo = new(MockPeriodRepository)
	suite.journalRepo = new(MockJournalRepository)
	suite.classRepo = new(MockClassificationRepository)
	suite.audit = new(MockAuditWriter)
	suite.tx = &fakeTxManager{repos: portsrepo.RepositoryProvider{
		OrganizationRepo:   suite.orgRepo,
		AccountRepo:        suite.accountRepo,
		PeriodRepo:         suite.periodRepo,
		JournalRepo:        suite.journalRepo,
		ClassificationRepo: suite.classRepo,
	}}

	suite.orgID = "org-1"
	suite.userID = "user-1"
	suite.org = domain.Organization{OrganizationID: suite.orgID, Name: "Acme Trading", BaseCurrency: "AED"}
	suite.march = domain.AccountingPeriod{
		PeriodID:       "per-2024-03",
		OrganizationID: suite.orgID,
		Name:           "March 2024",
		StartDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:         domain.PeriodOpen,
	}

	account := func(id, code string, cat domain.AccountCategory) domain.Account {
		return domain.Account{AccountID: id, OrganizationID: suite.orgID, Code: code, Name: code, IsActive: true, Category: cat, NormalBalance: cat.NormalBalance()}
	}
	suite.cash = account("acc-cash", "1000", domain.Asset)
	suite.sales = account("acc-sales", "4000", domain.Revenue)
	suite.office = account("acc-office", "6300", domain.Expense)
	suite.vatIn = account("acc-vat-in", "1150", domain.Asset)
	suite.payable = account("acc-ap", "2000", domain.Liability)

	periodSvc := services.NewPeriodService(suite.periodRepo, suite.orgRepo, suite.tx)
	classifier, err := services.NewClassificationService(suite.classRepo, suite.accountRepo, suite.orgRepo)
	suite.Require().NoError(err)
	suite.service = services.NewJournalService(suite.journalRepo, suite.orgRepo, suite.tx, periodSvc,
		services.WithClassificationService(classifier),
		services.WithAuditWriter(suite.audit))

	suite.orgRepo.On("FindOrganizationByID", mock.Anything, suite.orgID).Return(&suite.org, nil).Maybe()
	suite.audit.On("Record", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (suite *JournalServiceTestSuite) saleDraft() domain.EntryDraft {
	return domain.EntryDraft{
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		Lines: []domain.LineDraft{
			{AccountID: suite.cash.AccountID, Debit: dec("100")},
			{AccountID: suite.sales.AccountID, Credit: dec("100")},
		},
	}
}

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, []string{"acc-cash", "acc-sales"}).
		Return(map[string]domain.Account{"acc-cash": suite.cash, "acc-sales": suite.sales}, nil).Once()
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, mock.AnythingOfType("time.Time")).Return(&suite.march, nil).Once()
	suite.journalRepo.On("NextEntrySequence", mock.Anything, suite.orgID).Return(7, nil).Once()
	suite.journalRepo.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryNumber == "JE-202403-0007" && len(e.Lines) == 2 && e.PeriodID == suite.march.PeriodID
	})).Return(nil).Once()

	entry, err := suite.service.PostEntry(context.Background(), suite.orgID, suite.saleDraft(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-202403-0007", entry.EntryNumber)
	suite.Equal(7, entry.Sequence)
	suite.Equal(domain.EntryStatusPosted, entry.Status)
	suite.Equal(domain.SourceManual, entry.SourceType)
	suite.Equal("AED", entry.CurrencyCode)
	suite.True(entry.TotalDebit.Equal(dec("100")))
	suite.True(entry.TotalCredit.Equal(entry.TotalDebit))
	suite.Equal(1, entry.Lines[0].LineOrder)
	suite.Equal(2, entry.Lines[1].LineOrder)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Equal(1, suite.tx.calls)
	suite.journalRepo.AssertExpectations(suite.T())
	suite.audit.AssertCalled(suite.T(), "Record", mock.Anything, mock.MatchedBy(func(ev domain.AuditEvent) bool {
		return ev.Action == domain.AuditEntryPosted && ev.EntityID == entry.EntryID
	}))
}

func (suite *JournalServiceTestSuite) TestPostEntry_OutOfBalance() {
	draft := suite.saleDraft()
	draft.Lines[1].Credit = dec("90")

	entry, err := suite.service.PostEntry(context.Background(), suite.orgID, draft, suite.userID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("journal entry is out of balance: debits 100.00, credits 90.00", err.Error())
	suite.Equal(0, suite.tx.calls)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnknownAndInactiveAccounts() {
	inactive := suite.sales
	inactive.IsActive = false
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, mock.Anything).
		Return(map[string]domain.Account{"acc-sales": inactive}, nil).Once()

	_, err := suite.service.PostEntry(context.Background(), suite.orgID, suite.saleDraft(), suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal([]string{
		"line 1: account acc-cash does not exist in this organization",
		"line 2: account 4000 is inactive",
	}, verr.Messages)
	suite.journalRepo.AssertNotCalled(suite.T(), "NextEntrySequence", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_CurrencyMismatch() {
	draft := suite.saleDraft()
	draft.CurrencyCode = "USD"

	_, err := suite.service.PostEntry(context.Background(), suite.orgID, draft, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "base currency AED")
}

func (suite *JournalServiceTestSuite) TestPostEntry_ClosedPeriod() {
	closed := suite.march
	closed.Status = domain.PeriodClosed
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, mock.Anything).
		Return(map[string]domain.Account{"acc-cash": suite.cash, "acc-sales": suite.sales}, nil).Once()
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, mock.Anything).Return(&closed, nil).Once()

	_, err := suite.service.PostEntry(context.Background(), suite.orgID, suite.saleDraft(), suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("accounting period March 2024 is closed", err.Error())
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_SourceAlreadyPosted() {
	draft := suite.saleDraft()
	draft.SourceType = domain.SourceInvoice
	sourceID := "inv-9"
	draft.SourceID = &sourceID

	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, mock.Anything).
		Return(map[string]domain.Account{"acc-cash": suite.cash, "acc-sales": suite.sales}, nil).Once()
	suite.journalRepo.On("FindEntryBySource", mock.Anything, suite.orgID, domain.SourceInvoice, "inv-9").
		Return(&domain.JournalEntry{EntryNumber: "JE-202403-0002"}, nil).Once()

	_, err := suite.service.PostEntry(context.Background(), suite.orgID, draft, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "JE-202403-0002")
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnknownOrganization() {
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostEntry(context.Background(), "missing", suite.saleDraft(), suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) document() domain.DocumentPosting {
	return domain.DocumentPosting{
		DocumentID:       "doc-1",
		Date:             time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:      dec("525"),
		VATAmount:        dec("25"),
		NetAmount:        dec("500"),
		MerchantName:     "Office  Mart",
		ExpenseAccountID: suite.office.AccountID,
	}
}

func (suite *JournalServiceTestSuite) TestPostDocument_Template() {
	suite.accountRepo.On("FindAccountsByCodes", mock.Anything, suite.orgID, []string{"2000", "1150"}).
		Return(map[string]domain.Account{"2000": suite.payable, "1150": suite.vatIn}, nil).Once()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, []string{"acc-office", "acc-vat-in", "acc-ap"}).
		Return(map[string]domain.Account{"acc-office": suite.office, "acc-vat-in": suite.vatIn, "acc-ap": suite.payable}, nil).Once()
	suite.journalRepo.On("FindEntryBySource", mock.Anything, suite.orgID, domain.SourceDocument, "doc-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, mock.Anything).Return(&suite.march, nil).Once()
	suite.journalRepo.On("NextEntrySequence", mock.Anything, suite.orgID).Return(1, nil).Once()
	suite.journalRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()
	suite.classRepo.On("UpsertRule", mock.Anything, mock.MatchedBy(func(r domain.ClassificationRule) bool {
		return r.Pattern == "OFFICE MART" && r.AccountID == "acc-office"
	})).Return(&domain.ClassificationRule{Pattern: "OFFICE MART", AccountID: "acc-office", TimesUsed: 1}, nil).Once()
	suite.classRepo.On("UpsertMerchantMapping", mock.Anything, mock.MatchedBy(func(m domain.MerchantMapping) bool {
		return m.MerchantName == "OFFICE MART" && m.GLAccountID == "acc-office"
	})).Return(nil).Once()

	entry, err := suite.service.PostDocument(context.Background(), suite.orgID, suite.document(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-202403-0001", entry.EntryNumber)
	suite.Equal(domain.SourceDocument, entry.SourceType)
	suite.Require().NotNil(entry.SourceID)
	suite.Equal("doc-1", *entry.SourceID)
	suite.Equal("Bill from Office  Mart", entry.Description)
	suite.True(entry.TotalDebit.Equal(dec("525")))
	suite.True(entry.TotalCredit.Equal(dec("525")))

	suite.Require().Len(entry.Lines, 3)
	expense, vat, ap := entry.Lines[0], entry.Lines[1], entry.Lines[2]
	suite.Equal("acc-office", expense.AccountID)
	suite.True(expense.Debit.Equal(dec("500")))
	suite.Require().NotNil(expense.TaxCode)
	suite.Equal("VAT5", *expense.TaxCode)
	suite.Nil(expense.TaxAmount)

	suite.Equal("acc-vat-in", vat.AccountID)
	suite.True(vat.Debit.Equal(dec("25")))
	suite.Require().NotNil(vat.TaxAmount)
	suite.True(vat.TaxAmount.Equal(dec("25")))

	suite.Equal("acc-ap", ap.AccountID)
	suite.True(ap.Credit.Equal(dec("525")))
	suite.Nil(ap.TaxCode)

	suite.classRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostDocument_ZeroVATSkipsVATLine() {
	doc := suite.document()
	doc.VATAmount, doc.TotalAmount = decimal.Zero, dec("500")

	suite.accountRepo.On("FindAccountsByCodes", mock.Anything, suite.orgID, []string{"2000"}).
		Return(map[string]domain.Account{"2000": suite.payable}, nil).Once()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, []string{"acc-office", "acc-ap"}).
		Return(map[string]domain.Account{"acc-office": suite.office, "acc-ap": suite.payable}, nil).Once()
	suite.journalRepo.On("FindEntryBySource", mock.Anything, suite.orgID, domain.SourceDocument, "doc-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, mock.Anything).Return(&suite.march, nil).Once()
	suite.journalRepo.On("NextEntrySequence", mock.Anything, suite.orgID).Return(3, nil).Once()
	suite.journalRepo.On("SaveEntry", mock.Anything, mock.Anything).Return(nil).Once()
	suite.classRepo.On("UpsertRule", mock.Anything, mock.Anything).Return(&domain.ClassificationRule{}, nil).Once()
	suite.classRepo.On("UpsertMerchantMapping", mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.PostDocument(context.Background(), suite.orgID, doc, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entry.Lines, 2)
	suite.Nil(entry.Lines[0].TaxCode)
}

func (suite *JournalServiceTestSuite) TestPostDocument_MissingVATInputAccountFails() {
	suite.accountRepo.On("FindAccountsByCodes", mock.Anything, suite.orgID, []string{"2000", "1150"}).
		Return(map[string]domain.Account{"2000": suite.payable}, nil).Once()

	entry, err := suite.service.PostDocument(context.Background(), suite.orgID, suite.document(), suite.userID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("VAT input account (code 1150) is missing from the chart of accounts", err.Error())
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
	suite.classRepo.AssertNotCalled(suite.T(), "UpsertRule", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostDocument_AmountsMustAddUp() {
	doc := suite.document()
	doc.TotalAmount = dec("530")

	_, err := suite.service.PostDocument(context.Background(), suite.orgID, doc, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("document amounts do not add up: net 500.00 + vat 25.00 != total 530.00", err.Error())
	suite.Equal(0, suite.tx.calls)
}

func (suite *JournalServiceTestSuite) posted() *domain.JournalEntry {
	taxCode := "VAT5"
	tax := dec("25")
	return &domain.JournalEntry{
		EntryID:        "je-1",
		OrganizationID: suite.orgID,
		EntryNumber:    "JE-202403-0001",
		CurrencyCode:   "AED",
		Status:         domain.EntryStatusPosted,
		Lines: []domain.JournalLine{
			{AccountID: "acc-office", Debit: dec("500"), Credit: decimal.Zero, TaxCode: &taxCode, LineOrder: 1},
			{AccountID: "acc-vat-in", Debit: dec("25"), Credit: decimal.Zero, TaxCode: &taxCode, TaxAmount: &tax, LineOrder: 2},
			{AccountID: "acc-ap", Debit: decimal.Zero, Credit: dec("525"), LineOrder: 3},
		},
	}
}

func (suite *JournalServiceTestSuite) TestReverseEntry_SwapsSides() {
	today := domain.AccountingPeriod{PeriodID: "per-now", Name: "Now", Status: domain.PeriodOpen}
	suite.journalRepo.On("FindEntryByID", mock.Anything, suite.orgID, "je-1").Return(suite.posted(), nil).Once()
	suite.journalRepo.On("FindReversalOf", mock.Anything, suite.orgID, "je-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, suite.orgID, mock.Anything).
		Return(map[string]domain.Account{"acc-office": suite.office, "acc-vat-in": suite.vatIn, "acc-ap": suite.payable}, nil).Once()
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, mock.Anything).Return(&today, nil).Once()
	suite.journalRepo.On("NextEntrySequence", mock.Anything, suite.orgID).Return(2, nil).Once()
	suite.journalRepo.On("SaveEntry", mock.Anything, mock.Anything).Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(context.Background(), suite.orgID, "je-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversal.ReversalOfID)
	suite.Equal("je-1", *reversal.ReversalOfID)
	suite.Require().NotNil(reversal.Reference)
	suite.Equal("JE-202403-0001", *reversal.Reference)
	suite.Equal("Reversal of JE-202403-0001", reversal.Description)
	suite.Equal(domain.TruncateDate(time.Now().UTC()), reversal.EntryDate)
	suite.Require().Len(reversal.Lines, 3)
	suite.True(reversal.Lines[0].Credit.Equal(dec("500")))
	suite.True(reversal.Lines[1].Credit.Equal(dec("25")))
	suite.Require().NotNil(reversal.Lines[1].TaxAmount)
	suite.True(reversal.Lines[2].Debit.Equal(dec("525")))
	suite.journalRepo.AssertNotCalled(suite.T(), "FindEntryBySource", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_AlreadyReversed() {
	suite.journalRepo.On("FindEntryByID", mock.Anything, suite.orgID, "je-1").Return(suite.posted(), nil).Once()
	suite.journalRepo.On("FindReversalOf", mock.Anything, suite.orgID, "je-1").
		Return(&domain.JournalEntry{EntryNumber: "JE-202404-0009"}, nil).Once()

	_, err := suite.service.ReverseEntry(context.Background(), suite.orgID, "je-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_CannotReverseAReversal() {
	entry := suite.posted()
	original := "je-0"
	entry.ReversalOfID = &original
	suite.journalRepo.On("FindEntryByID", mock.Anything, suite.orgID, "je-1").Return(entry, nil).Once()

	_, err := suite.service.ReverseEntry(context.Background(), suite.orgID, "je-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestListEntries_InvalidToken() {
	token := "!!!"
	_, _, err := suite.service.ListEntries(context.Background(), suite.orgID, 10, &token)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestListEntries_ClampsLimit() {
	suite.journalRepo.On("ListEntries", mock.Anything, suite.orgID, 200, (*string)(nil)).
		Return([]domain.JournalEntry{{EntryID: "je-1"}}, nil, nil).Once()

	entries, next, err := suite.service.ListEntries(context.Background(), suite.orgID, 5000, nil)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.Nil(next)
}
