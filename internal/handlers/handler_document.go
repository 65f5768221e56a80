package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awtech/cashdesk/internal/core/domain"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
	"github.com/awtech/cashdesk/internal/middleware"
)

// documentHandler serves the approval workflow endpoints for every document type.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(documentService portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: documentService}
}

// RegisterDocumentRoutes mounts the document workflow endpoints on the given
// company-scoped router group.
func RegisterDocumentRoutes(company *gin.RouterGroup, documentSvc portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentSvc)

	documents := company.Group("/documents")
	documents.POST("", h.createDocument)
	documents.GET("", h.listDocuments)
	documents.GET("/:documentID", h.getDocument)
	documents.PUT("/:documentID", h.updateDocument)
	documents.POST("/:documentID/submit", h.submitDocument)
	documents.POST("/:documentID/approve", h.approveDocument)
	documents.POST("/:documentID/reset", h.resetDocument)
	documents.POST("/:documentID/cancel", h.cancelDocument)
	documents.GET("/:documentID/events", h.listDocumentEvents)
}

// createDocument godoc
// @Summary Create a document in DRAFT
// @Tags documents
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Router /companies/{companyID}/documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Document created", slog.String("document_id", doc.DocumentID), slog.String("reference", doc.Reference))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List the company's documents
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param docType query string false "Filter by document type"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Router /companies/{companyID}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	docs, nextToken, err := h.documentService.ListDocuments(c.Request.Context(), c.Param("companyID"), params, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{
		Documents: dto.ToDocumentResponses(docs),
		NextToken: nextToken,
	})
}

// getDocument godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /companies/{companyID}/documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("documentID"), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Edit a draft document
// @Tags documents
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 409 {object} map[string]string "Only draft documents can be edited"
// @Router /companies/{companyID}/documents/{documentID} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("documentID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// submitDocument godoc
// @Summary Submit a draft document for approval
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 409 {object} map[string]string "Only draft documents can be submitted"
// @Router /companies/{companyID}/documents/{documentID}/submit [post]
func (h *documentHandler) submitDocument(c *gin.Context) {
	h.transition(c, h.documentService.SubmitDocument)
}

// approveDocument godoc
// @Summary Approve a waiting document, posting its journal
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} map[string]string "Approver capability required"
// @Failure 409 {object} map[string]string "Only waiting documents can be approved"
// @Failure 422 {object} map[string]string "Ledger posting failed"
// @Router /companies/{companyID}/documents/{documentID}/approve [post]
func (h *documentHandler) approveDocument(c *gin.Context) {
	h.transition(c, h.documentService.ApproveDocument)
}

// resetDocument godoc
// @Summary Reset a waiting or cancelled document to draft
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 409 {object} map[string]string "Document cannot be reset from its status"
// @Router /companies/{companyID}/documents/{documentID}/reset [post]
func (h *documentHandler) resetDocument(c *gin.Context) {
	h.transition(c, h.documentService.ResetDocumentToDraft)
}

// cancelDocument godoc
// @Summary Cancel a non-processed document
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 409 {object} map[string]string "Processed documents cannot be cancelled"
// @Router /companies/{companyID}/documents/{documentID}/cancel [post]
func (h *documentHandler) cancelDocument(c *gin.Context) {
	h.transition(c, h.documentService.CancelDocument)
}

// listDocumentEvents godoc
// @Summary List the audit trail of a document
// @Tags documents
// @Produce json
// @Param companyID path string true "Company ID"
// @Param documentID path string true "Document ID"
// @Success 200 {array} dto.DocumentEventResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /companies/{companyID}/documents/{documentID}/events [get]
func (h *documentHandler) listDocumentEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	events, err := h.documentService.ListDocumentEvents(c.Request.Context(), c.Param("documentID"), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	responses := make([]dto.DocumentEventResponse, len(events))
	for i, e := range events {
		responses[i] = dto.ToDocumentEventResponse(&e)
	}
	c.JSON(http.StatusOK, responses)
}

// transition runs one of the four workflow transitions, which all share the
// same request and response shape.
func (h *documentHandler) transition(c *gin.Context, op func(ctx context.Context, documentID, userID string) (*domain.Document, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := op(c.Request.Context(), c.Param("documentID"), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Document transition applied",
		slog.String("document_id", doc.DocumentID),
		slog.String("status", string(doc.Status)))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
