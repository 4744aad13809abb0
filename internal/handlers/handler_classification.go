package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type classificationHandler struct {
	classificationService portssvc.ClassificationSvc
}

func registerClassificationRoutes(rg *gin.RouterGroup, classificationService portssvc.ClassificationSvc) {
	h := &classificationHandler{classificationService: classificationService}

	classification := rg.Group("/classification")
	{
		classification.POST("/suggest", h.suggest)
		classification.POST("/learn", h.learn)
		classification.GET("/rules", h.listRules)
	}
}

// suggest godoc
// @Summary Suggest an account for a transaction
// @Description Learned rules first, then merchant history, then built-in keywords. Returns a null suggestion when nothing matches.
// @Tags classification
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   request body dto.SuggestAccountRequest true "Description and merchant"
// @Success 200 {object} dto.SuggestAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /organizations/{organization_id}/classification/suggest [post]
func (h *classificationHandler) suggest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SuggestAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Suggest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	suggestion, err := h.classificationService.Suggest(c.Request.Context(), c.Param("organization_id"), req.Description, req.Merchant)
	if err != nil {
		respondError(c, logger, err, "Failed to suggest account")
		return
	}
	c.JSON(http.StatusOK, dto.ToSuggestAccountResponse(suggestion))
}

// learn godoc
// @Summary Learn a classification rule
// @Description Upserts the rule for the normalized pattern and counts its use
// @Tags classification
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   request body dto.LearnRuleRequest true "Pattern and account"
// @Success 200 {object} dto.ClassificationRuleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/classification/learn [post]
func (h *classificationHandler) learn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LearnRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Learn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	rule, err := h.classificationService.Learn(c.Request.Context(), c.Param("organization_id"), req.Pattern, req.AccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to learn classification rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToClassificationRuleResponse(rule))
}

// listRules godoc
// @Summary List learned classification rules
// @Tags classification
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Success 200 {array} dto.ClassificationRuleResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/classification/rules [get]
func (h *classificationHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rules, err := h.classificationService.ListRules(c.Request.Context(), c.Param("organization_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list classification rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClassificationRuleResponse(rules))
}
