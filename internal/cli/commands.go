package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/spf13/cobra"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			up := args[0] == "up"
			if err := rt.open(cmd.Context(), &up); err != nil {
				return err
			}
			defer rt.close()
			if !up {
				if err := rt.store.MigrateDown(rt.logger); err != nil {
					return err
				}
			}
			printf(cmd.OutOrStdout(), "migrations %s complete (%s)\n", args[0], rt.store.Driver)
			return nil
		},
	}
}

func newCreateOrgCommand(rt *runtime) *cobra.Command {
	var req dto.CreateOrganizationRequest

	cmd := &cobra.Command{
		Use:   "create-org",
		Short: "Register an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.open(cmd.Context(), nil); err != nil {
				return err
			}
			defer rt.close()
			org, err := rt.svc.Organization.CreateOrganization(cmd.Context(), req, rt.userID)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "created organization %s (%s, %s)\n", org.OrganizationID, org.Name, org.BaseCurrency)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.OrganizationID, "id", "", "organization id (generated when empty)")
	cmd.Flags().StringVar(&req.Name, "name", "", "organization name (required)")
	cmd.Flags().StringVar(&req.BaseCurrency, "currency", "", "base currency code")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSeedChartCommand(rt *runtime) *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "seed-chart",
		Short: "Create the default chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.open(cmd.Context(), nil); err != nil {
				return err
			}
			defer rt.close()
			created, skipped, err := rt.svc.Account.SeedChartOfAccounts(cmd.Context(), orgID, rt.userID)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "created %d accounts, skipped %d existing\n", len(created), len(skipped))
			return nil
		},
	}
	orgFlag(cmd, &orgID)
	return cmd
}

func newTrialBalanceCommand(rt *runtime) *cobra.Command {
	var orgID, asOfStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var asOf *time.Time
			if asOfStr != "" {
				d, err := domain.ParseDate(asOfStr)
				if err != nil {
					return fmt.Errorf("--as-of must be formatted as YYYY-MM-DD: %w", err)
				}
				asOf = &d
			}
			if err := rt.open(cmd.Context(), nil); err != nil {
				return err
			}
			defer rt.close()
			tb, err := rt.svc.Ledger.TrialBalance(cmd.Context(), orgID, asOf)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			printf(w, "CODE\tACCOUNT\tDEBIT\tCREDIT\t\n")
			for _, r := range tb.Rows {
				printf(w, "%s\t%s\t%s\t%s\t\n", r.AccountCode, r.AccountName,
					r.Debit.StringFixed(domain.AmountPlaces), r.Credit.StringFixed(domain.AmountPlaces))
			}
			printf(w, "\tTOTAL\t%s\t%s\t\n", tb.TotalDebit.StringFixed(domain.AmountPlaces), tb.TotalCredit.StringFixed(domain.AmountPlaces))
			return w.Flush()
		},
	}
	orgFlag(cmd, &orgID)
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "include entries up to this date (YYYY-MM-DD)")
	return cmd
}

func newVATSummaryCommand(rt *runtime) *cobra.Command {
	var orgID, from, to string
	var year, quarter int

	cmd := &cobra.Command{
		Use:   "vat-summary",
		Short: "Print output and input VAT for a quarter or a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := vatPeriod(year, quarter, from, to)
			if err != nil {
				return err
			}
			if err := rt.open(cmd.Context(), nil); err != nil {
				return err
			}
			defer rt.close()
			s, err := rt.svc.VAT.VATSummary(cmd.Context(), orgID, start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printf(out, "VAT %s to %s\n", s.StartDate.Format(domain.DateLayout), s.EndDate.Format(domain.DateLayout))
			printf(out, "  output VAT:        %s\n", s.OutputVAT.StringFixed(domain.AmountPlaces))
			printf(out, "  input VAT:         %s\n", s.InputVAT.StringFixed(domain.AmountPlaces))
			printf(out, "  net VAT:           %s\n", s.NetVAT.StringFixed(domain.AmountPlaces))
			printf(out, "  taxable sales:     %s\n", s.TaxableSales.StringFixed(domain.AmountPlaces))
			printf(out, "  taxable purchases: %s\n", s.TaxablePurchases.StringFixed(domain.AmountPlaces))
			return nil
		},
	}
	orgFlag(cmd, &orgID)
	cmd.Flags().IntVar(&year, "year", 0, "calendar year")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "quarter 1-4")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("year", "quarter")
	cmd.MarkFlagsRequiredTogether("from", "to")
	cmd.MarkFlagsMutuallyExclusive("year", "from")
	return cmd
}

func vatPeriod(year, quarter int, from, to string) (time.Time, time.Time, error) {
	if year != 0 {
		return domain.QuarterBounds(year, quarter)
	}
	if from == "" {
		return time.Time{}, time.Time{}, errors.New("either --year/--quarter or --from/--to is required")
	}
	start, err := domain.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	return start, end, nil
}

func newSuggestCommand(rt *runtime) *cobra.Command {
	var orgID, description, merchant string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest an account for a transaction description",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.open(cmd.Context(), nil); err != nil {
				return err
			}
			defer rt.close()
			s, err := rt.svc.Classification.Suggest(cmd.Context(), orgID, description, merchant)
			if err != nil {
				return err
			}
			if s == nil {
				printf(cmd.OutOrStdout(), "no suggestion\n")
				return nil
			}
			printf(cmd.OutOrStdout(), "%s %s (confidence %s, %s): %s\n",
				s.AccountCode, s.AccountName, s.Confidence.StringFixed(2), s.Source, s.Reason)
			return nil
		},
	}
	orgFlag(cmd, &orgID)
	cmd.Flags().StringVar(&description, "description", "", "transaction description")
	cmd.Flags().StringVar(&merchant, "merchant", "", "merchant name")
	cmd.MarkFlagsOneRequired("description", "merchant")
	return cmd
}

func newLearnCommand(rt *runtime) *cobra.Command {
	var orgID, pattern, code string

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Teach a pattern to account mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.open(cmd.Context(), nil); err != nil {
				return err
			}
			defer rt.close()
			account, err := rt.svc.Account.GetAccountByCode(cmd.Context(), orgID, code)
			if err != nil {
				return fmt.Errorf("account %s: %w", code, err)
			}
			rule, err := rt.svc.Classification.Learn(cmd.Context(), orgID, pattern, account.AccountID)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%q -> %s %s (used %d times)\n", rule.Pattern, account.Code, account.Name, rule.TimesUsed)
			return nil
		},
	}
	orgFlag(cmd, &orgID)
	cmd.Flags().StringVar(&pattern, "pattern", "", "description or merchant pattern (required)")
	cmd.Flags().StringVar(&code, "account-code", "", "target account code (required)")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("account-code")
	return cmd
}

func orgFlag(cmd *cobra.Command, orgID *string) {
	cmd.Flags().StringVar(orgID, "org", "", "organization id (required)")
	_ = cmd.MarkFlagRequired("org")
}
