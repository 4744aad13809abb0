package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to ledger projections and VAT returns.
type reportingHandler struct {
	ledgerService portssvc.LedgerSvc
	vatService    portssvc.VATSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(ls portssvc.LedgerSvc, vs portssvc.VATSvc) *reportingHandler {
	return &reportingHandler{
		ledgerService: ls,
		vatService:    vs,
	}
}

// registerReportingRoutes registers report routes under an organization group.
func registerReportingRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, vatService portssvc.VATSvc) {
	h := newReportingHandler(ledgerService, vatService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/general-ledger/:account_id", h.getGeneralLedger)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/vat-summary", h.getVATSummary)
	}
}

// getGeneralLedger godoc
// @Summary General ledger for an account
// @Description Posted lines in chronological order with a running balance in the account's normal polarity
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/general-ledger/{account_id} [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, rows, err := h.ledgerService.GeneralLedger(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to generate general ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(account, rows))
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Net position per account, optionally as of a date. Totals always agree.
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var asOf *time.Time
	if s := c.Query("asOf"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be formatted as YYYY-MM-DD"})
			return
		}
		asOf = &d
	}

	tb, err := h.ledgerService.TrialBalance(c.Request.Context(), c.Param("organization_id"), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getVATSummary godoc
// @Summary VAT return summary
// @Description Output and input VAT for a date range, or for a calendar quarter when year and quarter are given
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Param year query int false "Calendar year"
// @Param quarter query int false "Quarter 1-4"
// @Success 200 {object} dto.VATSummaryResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/vat-summary [get]
func (h *reportingHandler) getVATSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, err := vatRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.vatService.VATSummary(c.Request.Context(), c.Param("organization_id"), start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to generate VAT summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToVATSummaryResponse(summary))
}

func vatRange(c *gin.Context) (time.Time, time.Time, error) {
	if y, q := c.Query("year"), c.Query("quarter"); y != "" || q != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("year is missing or malformed")
		}
		quarter, err := strconv.Atoi(q)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("quarter is missing or malformed")
		}
		return domain.QuarterBounds(year, quarter)
	}
	start, err := domain.ParseDate(c.Query("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("startDate is missing or malformed")
	}
	end, err := domain.ParseDate(c.Query("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("endDate is missing or malformed")
	}
	return start, end, nil
}
