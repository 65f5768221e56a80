package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
	"github.com/awtech/cashdesk/internal/middleware"
)

// journalHandler exposes the ledger posting adapter directly, for entries that
// do not originate from an approval document.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newJournalHandler(ledgerService portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{ledgerService: ledgerService}
}

// postJournal godoc
// @Summary Post a balanced journal entry
// @Tags journals
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param journal body dto.PostJournalRequest true "Journal and lines"
// @Success 201 {object} dto.JournalResponse
// @Failure 422 {object} map[string]string "Posting rejected"
// @Router /companies/{companyID}/journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	req.CompanyID = c.Param("companyID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.ledgerService.CreateAndPost(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Journal posted", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal and its lines
// @Tags journals
// @Produce json
// @Param companyID path string true "Company ID"
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.GetJournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /companies/{companyID}/journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, lines, err := h.ledgerService.GetJournalWithLines(c.Request.Context(), c.Param("journalID"), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.GetJournalResponse{
		Journal: dto.ToJournalResponse(journal),
		Lines:   dto.ToJournalLineResponses(lines),
	})
}

// reverseJournal godoc
// @Summary Reverse a posted journal
// @Tags journals
// @Produce json
// @Param companyID path string true "Company ID"
// @Param journalID path string true "Journal ID"
// @Success 201 {object} dto.JournalResponse
// @Failure 422 {object} map[string]string "Journal already reversed or period locked"
// @Router /companies/{companyID}/journals/{journalID}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.ledgerService.ReverseJournal(c.Request.Context(), c.Param("journalID"), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Journal reversed", slog.String("reversal_id", reversal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversal))
}
