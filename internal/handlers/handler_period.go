package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.GET("", h.listPeriods)
		periods.POST("/resolve", h.resolvePeriod)
		periods.PATCH("/:period_id/status", h.updatePeriodStatus)
	}
	rg.GET("/fiscal-years", h.listFiscalYears)
}

// listFiscalYears godoc
// @Summary List fiscal years
// @Tags periods
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Success 200 {array} dto.FiscalYearResponse
// @Failure 404 {object} map[string]string "Organization not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/fiscal-years [get]
func (h *periodHandler) listFiscalYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	years, err := h.periodService.ListFiscalYears(c.Request.Context(), c.Param("organization_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list fiscal years")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFiscalYearResponse(years))
}

// listPeriods godoc
// @Summary List accounting periods
// @Tags periods
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Success 200 {array} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Organization not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periods, err := h.periodService.ListPeriods(c.Request.Context(), c.Param("organization_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodResponse(periods))
}

// resolvePeriod godoc
// @Summary Resolve or create the period covering a date
// @Description Returns the monthly period containing the date, creating the fiscal year and period when missing
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   request body dto.ResolvePeriodRequest true "Date to resolve"
// @Success 200 {object} map[string]string "periodID"
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /organizations/{organization_id}/periods/resolve [post]
func (h *periodHandler) resolvePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolvePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolvePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}
	periodID, err := h.periodService.ResolveOrCreatePeriod(c.Request.Context(), c.Param("organization_id"), date)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve accounting period")
		return
	}
	c.JSON(http.StatusOK, gin.H{"periodID": periodID})
}

// updatePeriodStatus godoc
// @Summary Open, close or lock a period
// @Description Posting requires an open period. A locked period cannot be reopened.
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   period_id path string true "Period ID"
// @Param   request body dto.UpdatePeriodStatusRequest true "New status"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 409 {object} map[string]string "Period is locked"
// @Security BearerAuth
// @Router /organizations/{organization_id}/periods/{period_id}/status [patch]
func (h *periodHandler) updatePeriodStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePeriodStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePeriodStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	period, err := h.periodService.UpdatePeriodStatus(c.Request.Context(), c.Param("organization_id"), c.Param("period_id"), domain.PeriodStatus(req.Status))
	if err != nil {
		respondError(c, logger, err, "Failed to update period status")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
