package dto

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ResolvePeriodRequest asks for the period covering a date, creating it when needed.
type ResolvePeriodRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
}

// UpdatePeriodStatusRequest changes whether a period accepts postings.
type UpdatePeriodStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed locked" validate:"required,oneof=open closed locked"`
}

// PeriodResponse defines the data returned for an accounting period.
type PeriodResponse struct {
	PeriodID     string `json:"periodID"`
	FiscalYearID string `json:"fiscalYearID"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       string `json:"status"`
}

// ToPeriodResponse converts a domain.AccountingPeriod to PeriodResponse DTO
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:     p.PeriodID,
		FiscalYearID: p.FiscalYearID,
		Name:         p.Name,
		StartDate:    p.StartDate.Format(domain.DateLayout),
		EndDate:      p.EndDate.Format(domain.DateLayout),
		Status:       string(p.Status),
	}
}

// ToListPeriodResponse converts periods to their DTOs.
func ToListPeriodResponse(periods []domain.AccountingPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string `json:"fiscalYearID"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsClosed     bool   `json:"isClosed"`
}

func ToListFiscalYearResponse(years []domain.FiscalYear) []FiscalYearResponse {
	res := make([]FiscalYearResponse, len(years))
	for i, fy := range years {
		res[i] = FiscalYearResponse{
			FiscalYearID: fy.FiscalYearID,
			Name:         fy.Name,
			StartDate:    fy.StartDate.Format(domain.DateLayout),
			EndDate:      fy.EndDate.Format(domain.DateLayout),
			IsClosed:     fy.IsClosed,
		}
	}
	return res
}
