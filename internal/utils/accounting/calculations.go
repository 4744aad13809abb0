package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the movement of a line in the account's own polarity.
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func SignedAmount(debit, credit decimal.Decimal, normal domain.NormalBalance) decimal.Decimal {
	if normal == domain.NormalDebit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// ValidateDraft checks the structural rules every entry must satisfy before posting.
// All problems are collected; the first one is the user-facing message.
func ValidateDraft(draft domain.EntryDraft) domain.ValidationResult {
	var errs []string

	if len(draft.Lines) < 2 {
		errs = append(errs, "journal entry must have at least two lines")
	}

	for i, line := range draft.Lines {
		n := i + 1
		if line.AccountID == "" {
			errs = append(errs, fmt.Sprintf("line %d: account is required", n))
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, fmt.Sprintf("line %d: amounts cannot be negative", n))
			continue
		}
		debit, credit := domain.RoundAmount(line.Debit), domain.RoundAmount(line.Credit)
		switch {
		case !debit.IsZero() && !credit.IsZero():
			errs = append(errs, fmt.Sprintf("line %d: a line cannot carry both a debit and a credit", n))
		case debit.IsZero() && credit.IsZero():
			errs = append(errs, fmt.Sprintf("line %d: a line must carry a debit or a credit", n))
		}
		if line.TaxAmount != nil && line.TaxAmount.IsNegative() {
			errs = append(errs, fmt.Sprintf("line %d: tax amount cannot be negative", n))
		}
	}

	totalDebit, totalCredit := draft.Totals()
	if !totalDebit.Add(totalCredit).IsPositive() {
		errs = append(errs, "journal entry total must be greater than zero")
	}
	if !totalDebit.Equal(totalCredit) {
		errs = append(errs, fmt.Sprintf("journal entry is out of balance: debits %s, credits %s",
			totalDebit.StringFixed(domain.AmountPlaces), totalCredit.StringFixed(domain.AmountPlaces)))
	}

	return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// sortChronologically orders lines by entry date, then entry creation order, then line order.
func sortChronologically(lines []domain.PostedLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if a.EntrySequence != b.EntrySequence {
			return a.EntrySequence < b.EntrySequence
		}
		return a.LineOrder < b.LineOrder
	})
}

// ProjectLedger replays an account's posted lines into general ledger rows with a
// running balance seeded at zero. The input slice is not modified.
func ProjectLedger(lines []domain.PostedLine, normal domain.NormalBalance) []domain.LedgerRow {
	ordered := make([]domain.PostedLine, len(lines))
	copy(ordered, lines)
	sortChronologically(ordered)

	rows := make([]domain.LedgerRow, 0, len(ordered))
	balance := decimal.Zero
	for _, l := range ordered {
		balance = balance.Add(SignedAmount(l.Debit, l.Credit, normal))
		description := l.EntryDescription
		if l.LineDescription != nil && *l.LineDescription != "" {
			description = *l.LineDescription
		}
		rows = append(rows, domain.LedgerRow{
			Date:           l.EntryDate,
			EntryID:        l.EntryID,
			EntryNumber:    l.EntryNumber,
			Description:    description,
			Reference:      l.Reference,
			Debit:          domain.RoundAmount(l.Debit),
			Credit:         domain.RoundAmount(l.Credit),
			RunningBalance: domain.RoundAmount(balance),
		})
	}
	return rows
}

// ClosingBalance is the last running balance of a ledger, or zero when it is empty.
func ClosingBalance(rows []domain.LedgerRow) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return rows[len(rows)-1].RunningBalance
}

type accountTotals struct {
	row    domain.TrialBalanceRow
	normal domain.NormalBalance
	debit  decimal.Decimal
	credit decimal.Decimal
}

// BuildTrialBalance aggregates posted lines per account and converts each net position
// into a single debit or credit figure. Net-zero accounts are omitted.
func BuildTrialBalance(lines []domain.PostedLine, asOf *time.Time) domain.TrialBalance {
	byAccount := make(map[string]*accountTotals)
	for _, l := range lines {
		t, ok := byAccount[l.AccountID]
		if !ok {
			t = &accountTotals{
				row: domain.TrialBalanceRow{
					AccountID:   l.AccountID,
					AccountCode: l.AccountCode,
					AccountName: l.AccountName,
					Category:    l.Category,
				},
				normal: l.NormalBalance,
				debit:  decimal.Zero,
				credit: decimal.Zero,
			}
			byAccount[l.AccountID] = t
		}
		t.debit = t.debit.Add(l.Debit)
		t.credit = t.credit.Add(l.Credit)
	}

	tb := domain.TrialBalance{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(byAccount)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, t := range byAccount {
		net := domain.RoundAmount(SignedAmount(t.debit, t.credit, t.normal))
		if net.IsZero() {
			continue
		}
		row := t.row
		row.Debit, row.Credit = decimal.Zero, decimal.Zero
		// A positive net sits on the normal side; a negative net flips to the other one.
		onDebitSide := (t.normal == domain.NormalDebit) == net.IsPositive()
		if onDebitSide {
			row.Debit = net.Abs()
		} else {
			row.Credit = net.Abs()
		}
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}

	sort.Slice(tb.Rows, func(i, j int) bool {
		return tb.Rows[i].AccountCode < tb.Rows[j].AccountCode
	})
	return tb
}

// SummarizeVAT sums tax-coded lines whose entry date falls in [start, end].
// The side of the tax is decided by the category of the tagged account.
func SummarizeVAT(lines []domain.PostedLine, start, end time.Time) domain.VATSummary {
	summary := domain.VATSummary{
		StartDate:        start,
		EndDate:          end,
		OutputVAT:        decimal.Zero,
		InputVAT:         decimal.Zero,
		TaxableSales:     decimal.Zero,
		TaxablePurchases: decimal.Zero,
	}
	from, to := domain.TruncateDate(start), domain.TruncateDate(end)

	for _, l := range lines {
		if l.TaxCode == nil || *l.TaxCode == "" {
			continue
		}
		d := domain.TruncateDate(l.EntryDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		summary.LineCount++

		tax := decimal.Zero
		if l.TaxAmount != nil {
			tax = *l.TaxAmount
		}
		// tax follows the line's direction, so credit notes and reversals net out
		switch l.Category {
		case domain.Revenue, domain.Liability:
			if l.Debit.GreaterThan(l.Credit) {
				tax = tax.Neg()
			}
			summary.OutputVAT = summary.OutputVAT.Add(tax)
			if l.Category == domain.Revenue {
				summary.TaxableSales = summary.TaxableSales.Add(l.Credit.Sub(l.Debit))
			}
		case domain.Expense, domain.Asset:
			if l.Credit.GreaterThan(l.Debit) {
				tax = tax.Neg()
			}
			summary.InputVAT = summary.InputVAT.Add(tax)
			if l.Category == domain.Expense {
				summary.TaxablePurchases = summary.TaxablePurchases.Add(l.Debit.Sub(l.Credit))
			}
		}
	}

	summary.OutputVAT = domain.RoundAmount(summary.OutputVAT)
	summary.InputVAT = domain.RoundAmount(summary.InputVAT)
	summary.TaxableSales = domain.RoundAmount(summary.TaxableSales)
	summary.TaxablePurchases = domain.RoundAmount(summary.TaxablePurchases)
	summary.NetVAT = summary.OutputVAT.Sub(summary.InputVAT)
	return summary
}
