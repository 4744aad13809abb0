package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal and document routes under an organization group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("/validate", h.validateEntry)
		journals.POST("", h.postEntry)
		journals.GET("", h.listEntries)
		journals.GET("/:entry_id", h.getEntry)
		journals.POST("/:entry_id/reverse", h.reverseEntry)
	}
	rg.POST("/documents/post", h.postDocument)
}

// validateEntry godoc
// @Summary Validate a journal entry without posting it
// @Description Reports every structural problem. The first error is the user-facing message.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Draft entry"
// @Success 200 {object} dto.ValidateJournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /organizations/{organization_id}/journals/validate [post]
func (h *journalHandler) validateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToValidateJournalEntryResponse(h.journalService.Validate(draft)))
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates and persists a balanced entry, assigning its period and JE-YYYYMM-NNNN number
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Entry to post"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Source already posted or period not open"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /organizations/{organization_id}/journals [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := callerID(c, logger)
	if !ok {
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("organization_id", organizationID))
	entry, err := h.journalService.PostEntry(c.Request.Context(), organizationID, draft, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to post journal entry")
		return
	}
	logger.Info("Journal entry posted", slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journals
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/journals/{entry_id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("organization_id"), c.Param("entry_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Newest first, paginated with an opaque token
// @Tags journals
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Security BearerAuth
// @Router /organizations/{organization_id}/journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	entries, next, err := h.journalService.ListEntries(c.Request.Context(), c.Param("organization_id"), params.Limit, token)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}
	resp := dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: next,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts a new entry dated today with every line's sides swapped. The original is not modified.
// @Tags journals
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   entry_id path string true "Entry ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already reversed"
// @Security BearerAuth
// @Router /organizations/{organization_id}/journals/{entry_id}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	entry, err := h.journalService.ReverseEntry(c.Request.Context(), c.Param("organization_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reverse journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// postDocument godoc
// @Summary Post a verified purchase document
// @Description Debits the expense account with the net amount and VAT input with the VAT, crediting accounts payable with the total
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document body dto.PostDocumentRequest true "Verified document"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Validation error or reserved account missing"
// @Failure 409 {object} map[string]string "Document already posted"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/post [post]
func (h *journalHandler) postDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	doc, err := req.ToDocumentPosting()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalService.PostDocument(c.Request.Context(), c.Param("organization_id"), doc, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
