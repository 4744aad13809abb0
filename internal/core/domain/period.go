package domain

import (
	"fmt"
	"time"
)

// PeriodStatus enumerates valid period states.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
	PeriodLocked PeriodStatus = "locked"
)

// FiscalYear groups the accounting periods of one year.
type FiscalYear struct {
	FiscalYearID   string    `json:"fiscalYearID"`
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	IsClosed       bool      `json:"isClosed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AccountingPeriod is a date window entries are posted into. Both ends are inclusive.
type AccountingPeriod struct {
	PeriodID       string       `json:"periodID"`
	OrganizationID string       `json:"organizationID"`
	FiscalYearID   string       `json:"fiscalYearID"`
	Name           string       `json:"name"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Contains reports whether date falls inside [StartDate, EndDate].
func (p AccountingPeriod) Contains(date time.Time) bool {
	d := TruncateDate(date)
	return !d.Before(TruncateDate(p.StartDate)) && !d.After(TruncateDate(p.EndDate))
}

// IsOpen reports whether entries may be posted into the period.
func (p AccountingPeriod) IsOpen() bool {
	return p.Status == PeriodOpen
}

// CalendarYearBounds returns Jan 1 and Dec 31 of year.
func CalendarYearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first and last calendar day of the month containing date.
func MonthBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// FiscalYearName formats the name of an auto-created fiscal year, e.g. "FY 2024".
func FiscalYearName(year int) string {
	return fmt.Sprintf("FY %d", year)
}

// MonthlyPeriodName formats the name of an auto-created period, e.g. "March 2024".
func MonthlyPeriodName(date time.Time) string {
	return fmt.Sprintf("%s %d", date.Month().String(), date.Year())
}
