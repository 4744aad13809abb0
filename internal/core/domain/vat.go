package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VATSummary aggregates tax-coded lines over a date range.
type VATSummary struct {
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	OutputVAT        decimal.Decimal `json:"outputVat"`
	InputVAT         decimal.Decimal `json:"inputVat"`
	NetVAT           decimal.Decimal `json:"netVat"`
	TaxableSales     decimal.Decimal `json:"taxableSales"`
	TaxablePurchases decimal.Decimal `json:"taxablePurchases"`
	LineCount        int             `json:"lineCount"`
}

// QuarterBounds returns the first and last day of a calendar quarter (1-4).
func QuarterBounds(year, quarter int) (time.Time, time.Time, error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, fmt.Errorf("quarter must be between 1 and 4, got %d", quarter)
	}
	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 3, -1), nil
}
