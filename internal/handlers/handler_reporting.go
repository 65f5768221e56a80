package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
	"github.com/awtech/cashdesk/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// trialBalance godoc
// @Summary Trial balance for a company as of a date
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Param asOf query string false "As-of date (RFC3339), defaults to now"
// @Success 200 {object} dto.TrialBalanceResponse
// @Router /companies/{companyID}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected RFC3339"})
			return
		}
		asOf = parsed
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("companyID"), asOf, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(asOf, rows))
}

// rebuildDonationSummaries godoc
// @Summary Rebuild the donation summaries for one month
// @Tags reports
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param period body dto.RebuildDonationSummaryRequest true "Year and month"
// @Success 200 {object} dto.ListDonationSummariesResponse
// @Failure 403 {object} map[string]string "Approver capability required"
// @Router /companies/{companyID}/reports/donation-summaries [post]
func (h *reportingHandler) rebuildDonationSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RebuildDonationSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reportingService.RebuildDonationSummaries(c.Request.Context(), c.Param("companyID"), req.Year, req.Month, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Donation summaries rebuilt",
		slog.Int("year", req.Year),
		slog.Int("month", req.Month),
		slog.Int("rows", len(rows)))
	c.JSON(http.StatusOK, dto.ToDonationSummaryResponses(rows))
}

// listDonationSummaries godoc
// @Summary List the stored donation summaries for one month
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ListDonationSummariesResponse
// @Router /companies/{companyID}/reports/donation-summaries [get]
func (h *reportingHandler) listDonationSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reportingService.ListDonationSummaries(c.Request.Context(), c.Param("companyID"), year, month, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationSummaryResponses(rows))
}
