// Package storetest holds the storage scenarios every RepositoryProvider implementation
// must pass. Driver packages run LedgerSuite from their own tests.
package storetest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// LedgerSuite posts through the real services against a migrated database.
type LedgerSuite struct {
	suite.Suite

	// Open returns a migrated, empty database for one test and the repositories bound
	// to it. Closing is registered with t.Cleanup by the caller.
	Open func(t *testing.T) (*sql.DB, portsrepo.RepositoryProvider)
	// Rebind rewrites the ? placeholders of the raw SQL used by the scenarios.
	Rebind func(query string) string

	ctx      context.Context
	db       *sql.DB
	repos    portsrepo.RepositoryProvider
	svc      *portssvc.ServiceContainer
	orgID    string
	accounts map[string]domain.Account
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.db, s.repos = s.Open(s.T())

	var err error
	s.svc, err = services.NewServiceContainer(nil, s.repos, nil)
	s.Require().NoError(err)

	org, err := s.svc.Organization.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{OrganizationID: "acme", Name: "Acme Trading"}, "tester")
	s.Require().NoError(err)
	s.orgID = org.OrganizationID

	_, _, err = s.svc.Account.SeedChartOfAccounts(s.ctx, s.orgID, "tester")
	s.Require().NoError(err)
	list, err := s.svc.Account.ListAccounts(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.accounts = make(map[string]domain.Account, len(list))
	for _, a := range list {
		s.accounts[a.Code] = a
	}
}

func (s *LedgerSuite) rebind(query string) string {
	if s.Rebind == nil {
		return query
	}
	return s.Rebind(query)
}

func (s *LedgerSuite) exec(query string, args ...any) error {
	_, err := s.db.ExecContext(s.ctx, s.rebind(query), args...)
	return err
}

func (s *LedgerSuite) id(code string) string {
	a, ok := s.accounts[code]
	s.Require().True(ok, "account %s not seeded", code)
	return a.AccountID
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func (s *LedgerSuite) post(date time.Time, desc string, debitCode, creditCode, amount string) *domain.JournalEntry {
	entry, err := s.svc.Journal.PostEntry(s.ctx, s.orgID, domain.EntryDraft{
		EntryDate:   date,
		Description: desc,
		Lines: []domain.LineDraft{
			{AccountID: s.id(debitCode), Debit: dec(amount)},
			{AccountID: s.id(creditCode), Credit: dec(amount)},
		},
	}, "tester")
	s.Require().NoError(err)
	return entry
}

func (s *LedgerSuite) TestPostAndReadBack() {
	entry := s.post(day(2024, 3, 5), "Owner investment", "1010", "3000", "10000")

	s.Equal("JE-202403-0001", entry.EntryNumber)
	stored, err := s.svc.Journal.GetEntry(s.ctx, s.orgID, entry.EntryID)
	s.Require().NoError(err)
	s.Equal(day(2024, 3, 5), stored.EntryDate.UTC())
	s.Require().Len(stored.Lines, 2)
	s.True(stored.Lines[0].Debit.Equal(dec("10000")))
	s.True(stored.Lines[1].Credit.Equal(dec("10000")))
	s.True(stored.TotalDebit.Equal(stored.TotalCredit))

	periods, err := s.svc.Period.ListPeriods(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Require().Len(periods, 1)
	s.Equal("March 2024", periods[0].Name)
	s.Equal(day(2024, 3, 31), periods[0].EndDate.UTC())
}

func (s *LedgerSuite) TestTrialBalanceAlwaysBalances() {
	s.post(day(2024, 1, 2), "Capital", "1010", "3000", "50000")
	s.post(day(2024, 1, 10), "Rent", "6100", "1010", "12000")
	s.post(day(2024, 2, 1), "Sale", "1100", "4000", "7350.55")
	s.post(day(2024, 2, 20), "Collection", "1010", "1100", "7350.55")

	tb, err := s.svc.Ledger.TrialBalance(s.ctx, s.orgID, nil)
	s.Require().NoError(err)
	s.True(tb.TotalDebit.Equal(tb.TotalCredit))
	s.True(tb.TotalDebit.Equal(dec("57350.55")), "total was %s", tb.TotalDebit)

	asOf := day(2024, 1, 31)
	tbJan, err := s.svc.Ledger.TrialBalance(s.ctx, s.orgID, &asOf)
	s.Require().NoError(err)
	s.True(tbJan.TotalDebit.Equal(dec("50000")))

	bank, rows, err := s.svc.Ledger.GeneralLedger(s.ctx, s.orgID, s.id("1010"))
	s.Require().NoError(err)
	s.Equal("1010", bank.Code)
	s.Require().Len(rows, 3)
	s.True(rows[2].RunningBalance.Equal(dec("45350.55")))
}

func (s *LedgerSuite) TestGeneralLedgerClosingMatchesTrialBalance() {
	s.post(day(2024, 1, 2), "Capital", "1010", "3000", "50000")
	s.post(day(2024, 1, 10), "Rent", "6100", "1010", "12000")
	s.post(day(2024, 2, 1), "Sale", "1100", "4000", "7350.55")
	s.post(day(2024, 2, 20), "Collection", "1010", "1100", "7350.55")
	// overdraws petty cash so one debit-normal account shows a credit figure
	s.post(day(2024, 2, 25), "Stationery", "6300", "1000", "42.10")

	tb, err := s.svc.Ledger.TrialBalance(s.ctx, s.orgID, nil)
	s.Require().NoError(err)
	byAccount := make(map[string]domain.TrialBalanceRow, len(tb.Rows))
	for _, row := range tb.Rows {
		byAccount[row.AccountID] = row
	}

	for code, account := range s.accounts {
		_, rows, err := s.svc.Ledger.GeneralLedger(s.ctx, s.orgID, account.AccountID)
		s.Require().NoError(err)
		closing := decimal.Zero
		if len(rows) > 0 {
			closing = rows[len(rows)-1].RunningBalance
		}

		expected := decimal.Zero
		if row, ok := byAccount[account.AccountID]; ok {
			expected = row.Debit.Sub(row.Credit)
			if account.NormalBalance == domain.NormalCredit {
				expected = expected.Neg()
			}
		}
		s.True(closing.Equal(expected), "account %s: ledger closes at %s, trial balance shows %s", code, closing, expected)
	}

	cash, ok := byAccount[s.id("1000")]
	s.Require().True(ok)
	s.True(cash.Credit.Equal(dec("42.10")))
}

func (s *LedgerSuite) TestDraftEntriesStayOutOfReports() {
	s.post(day(2024, 3, 1), "Capital", "1010", "3000", "1000")
	periodID, err := s.svc.Period.ResolveOrCreatePeriod(s.ctx, s.orgID, day(2024, 3, 2))
	s.Require().NoError(err)

	now := time.Now().UTC()
	draftID := uuid.NewString()
	err = s.repos.JournalRepo.SaveEntry(s.ctx, domain.JournalEntry{
		EntryID:        draftID,
		OrganizationID: s.orgID,
		PeriodID:       periodID,
		EntryNumber:    "JE-202403-9999",
		Sequence:       9999,
		EntryDate:      day(2024, 3, 2),
		Description:    "Unapproved purchase",
		SourceType:     domain.SourceManual,
		Status:         domain.EntryStatusDraft,
		CurrencyCode:   "AED",
		TotalDebit:     dec("300"),
		TotalCredit:    dec("300"),
		PostedAt:       now,
		AuditFields:    domain.NewAuditFields("tester", now),
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: draftID, AccountID: s.id("6300"), Debit: dec("300"), Credit: decimal.Zero, LineOrder: 1},
			{LineID: uuid.NewString(), EntryID: draftID, AccountID: s.id("1010"), Debit: decimal.Zero, Credit: dec("300"), LineOrder: 2},
		},
	})
	s.Require().NoError(err)

	tb, err := s.svc.Ledger.TrialBalance(s.ctx, s.orgID, nil)
	s.Require().NoError(err)
	s.True(tb.TotalDebit.Equal(dec("1000")), "total was %s", tb.TotalDebit)

	_, rows, err := s.svc.Ledger.GeneralLedger(s.ctx, s.orgID, s.id("6300"))
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *LedgerSuite) TestConcurrentPeriodResolutionIsIdempotent() {
	const workers = 8
	ids := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = s.svc.Period.ResolveOrCreatePeriod(s.ctx, s.orgID, day(2024, 7, 15))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		s.Require().NoError(errs[i])
		s.Equal(ids[0], ids[i])
	}
	periods, err := s.svc.Period.ListPeriods(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Len(periods, 1)

	years, err := s.svc.Period.ListFiscalYears(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Require().Len(years, 1)
	s.Equal("FY 2024", years[0].Name)
}

func (s *LedgerSuite) TestConcurrentPostingGetsDistinctNumbers() {
	const workers = 5
	numbers := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := s.svc.Journal.PostEntry(s.ctx, s.orgID, domain.EntryDraft{
				EntryDate:   day(2024, 5, 1+i),
				Description: fmt.Sprintf("Petty cash %d", i),
				Lines: []domain.LineDraft{
					{AccountID: s.id("6300"), Debit: dec("10")},
					{AccountID: s.id("1000"), Credit: dec("10")},
				},
			}, "tester")
			if assert.NoError(s.T(), err) {
				numbers <- entry.EntryNumber
			}
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for n := range numbers {
		s.False(seen[n], "duplicate entry number %s", n)
		seen[n] = true
	}
	s.Len(seen, workers)
	for i := 1; i <= workers; i++ {
		s.True(seen[fmt.Sprintf("JE-202405-%04d", i)], "missing sequence %d", i)
	}
}

func (s *LedgerSuite) TestDocumentPostingTemplate() {
	entry, err := s.svc.Journal.PostDocument(s.ctx, s.orgID, domain.DocumentPosting{
		DocumentID:       "doc-1",
		Date:             day(2024, 2, 10),
		NetAmount:        dec("500"),
		VATAmount:        dec("25"),
		TotalAmount:      dec("525"),
		MerchantName:     "Office Mart",
		ExpenseAccountID: s.id("6300"),
	}, "tester")
	s.Require().NoError(err)
	s.Require().Len(entry.Lines, 3)
	s.Equal(s.id("6300"), entry.Lines[0].AccountID)
	s.Equal(s.id("1150"), entry.Lines[1].AccountID)
	s.Equal(s.id("2000"), entry.Lines[2].AccountID)
	s.True(entry.Lines[2].Credit.Equal(dec("525")))

	vat, err := s.svc.VAT.VATSummary(s.ctx, s.orgID, day(2024, 1, 1), day(2024, 3, 31))
	s.Require().NoError(err)
	s.True(vat.InputVAT.Equal(dec("25")), "input vat was %s", vat.InputVAT)
	s.True(vat.TaxablePurchases.Equal(dec("500")))
	s.True(vat.NetVAT.Equal(dec("-25")))

	// the merchant is now learned
	suggestion, err := s.svc.Classification.Suggest(s.ctx, s.orgID, "office mart receipt", "")
	s.Require().NoError(err)
	s.Require().NotNil(suggestion)
	s.Equal("6300", suggestion.AccountCode)
	s.Equal(domain.SuggestionLearned, suggestion.Source)

	// the same document cannot be posted twice
	_, err = s.svc.Journal.PostDocument(s.ctx, s.orgID, domain.DocumentPosting{
		DocumentID: "doc-1", Date: day(2024, 2, 10), NetAmount: dec("500"), VATAmount: dec("25"),
		TotalAmount: dec("525"), MerchantName: "Office Mart", ExpenseAccountID: s.id("6300"),
	}, "tester")
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LedgerSuite) TestDocumentPostingFailsWithoutVATAccount() {
	s.Require().NoError(s.exec(`DELETE FROM accounts WHERE organization_id = ? AND code = '1150'`, s.orgID))

	_, err := s.svc.Journal.PostDocument(s.ctx, s.orgID, domain.DocumentPosting{
		DocumentID: "doc-2", Date: day(2024, 2, 10), NetAmount: dec("100"), VATAmount: dec("5"),
		TotalAmount: dec("105"), MerchantName: "DEWA", ExpenseAccountID: s.id("6200"),
	}, "tester")
	s.Require().Error(err)
	s.Contains(err.Error(), "VAT input account (code 1150) is missing from the chart of accounts")

	var count int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM journal_entries`).Scan(&count))
	s.Zero(count)
}

func (s *LedgerSuite) TestPostedEntriesAreImmutable() {
	entry := s.post(day(2024, 4, 1), "Deposit", "1010", "3000", "100")

	err := s.exec(`UPDATE journal_entries SET description = 'tampered' WHERE entry_id = ?`, entry.EntryID)
	s.Require().Error(err)
	s.Contains(err.Error(), "immutable")

	err = s.exec(`DELETE FROM journal_lines WHERE entry_id = ?`, entry.EntryID)
	s.Require().Error(err)
	s.Contains(err.Error(), "immutable")

	// an account with lines cannot be deleted
	err = s.svc.Account.DeleteAccount(s.ctx, s.orgID, s.id("1010"))
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LedgerSuite) TestReversalNetsToZero() {
	entry := s.post(day(2024, 6, 3), "Wrong posting", "6600", "1000", "80")
	reversal, err := s.svc.Journal.ReverseEntry(s.ctx, s.orgID, entry.EntryID, "tester")
	s.Require().NoError(err)
	s.Require().NotNil(reversal.ReversalOfID)
	s.Equal(entry.EntryID, *reversal.ReversalOfID)

	balance, err := s.svc.Ledger.AccountBalance(s.ctx, s.orgID, s.id("6600"))
	s.Require().NoError(err)
	s.True(balance.IsZero())

	_, err = s.svc.Journal.ReverseEntry(s.ctx, s.orgID, entry.EntryID, "tester")
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LedgerSuite) TestLearnUpsertsRule() {
	_, err := s.svc.Classification.Learn(s.ctx, s.orgID, "  careem  ride ", s.id("6500"))
	s.Require().NoError(err)
	rule, err := s.svc.Classification.Learn(s.ctx, s.orgID, "CAREEM RIDE", s.id("6550"))
	s.Require().NoError(err)

	s.Equal("CAREEM RIDE", rule.Pattern)
	s.Equal(s.id("6550"), rule.AccountID)
	s.Equal(2, rule.TimesUsed)

	rules, err := s.svc.Classification.ListRules(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Len(rules, 1)
}

func (s *LedgerSuite) TestFirstStoredRuleWins() {
	_, err := s.svc.Classification.Learn(s.ctx, s.orgID, "careem", s.id("6500"))
	s.Require().NoError(err)
	_, err = s.svc.Classification.Learn(s.ctx, s.orgID, "careem ride", s.id("6550"))
	s.Require().NoError(err)
	// confirming the later rule again must not move it ahead of the first one
	_, err = s.svc.Classification.Learn(s.ctx, s.orgID, "careem ride", s.id("6550"))
	s.Require().NoError(err)

	rules, err := s.svc.Classification.ListRules(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Require().Len(rules, 2)
	s.Equal("CAREEM", rules[0].Pattern)
	s.Equal("CAREEM RIDE", rules[1].Pattern)

	suggestion, err := s.svc.Classification.Suggest(s.ctx, s.orgID, "Careem ride to DXB", "")
	s.Require().NoError(err)
	s.Require().NotNil(suggestion)
	s.Equal("6500", suggestion.AccountCode)
	s.Equal(domain.SuggestionLearned, suggestion.Source)
}

func (s *LedgerSuite) TestMerchantMapServesMerchantsWithoutRule() {
	err := s.repos.ClassificationRepo.UpsertMerchantMapping(s.ctx, domain.MerchantMapping{
		OrganizationID: s.orgID,
		MerchantName:   "SPINNEYS",
		GLAccountID:    s.id("6300"),
		Confidence:     dec("0.9"),
		LastUsed:       time.Now().UTC(),
	})
	s.Require().NoError(err)

	suggestion, err := s.svc.Classification.Suggest(s.ctx, s.orgID, "card purchase 4471", "Spinneys")
	s.Require().NoError(err)
	s.Require().NotNil(suggestion)
	s.Equal("6300", suggestion.AccountCode)
	s.Equal(domain.SuggestionMerchantMap, suggestion.Source)
	s.True(suggestion.Confidence.Equal(dec("0.9")))
}

func (s *LedgerSuite) TestListEntriesPaginates() {
	for i := 1; i <= 3; i++ {
		s.post(day(2024, 8, i), fmt.Sprintf("Sale %d", i), "1000", "4000", "10")
	}

	page, next, err := s.svc.Journal.ListEntries(s.ctx, s.orgID, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Require().NotNil(next)
	s.Equal("JE-202408-0003", page[0].EntryNumber)
	s.Equal("JE-202408-0002", page[1].EntryNumber)

	rest, next, err := s.svc.Journal.ListEntries(s.ctx, s.orgID, 2, next)
	s.Require().NoError(err)
	s.Nil(next)
	s.Require().Len(rest, 1)
	s.Equal("JE-202408-0001", rest[0].EntryNumber)
}

func (s *LedgerSuite) TestUnknownEntryIsNotFound() {
	_, err := s.svc.Journal.GetEntry(s.ctx, s.orgID, "missing")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}
