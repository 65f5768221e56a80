package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
	"github.com/awtech/cashdesk/internal/handlers"
	"github.com/awtech/cashdesk/internal/middleware"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, companyID string, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) GetDocumentByID(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, companyID string, params dto.ListDocumentsParams, userID string) ([]domain.Document, *string, error) {
	args := m.Called(ctx, companyID, params, userID)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return docs, next, args.Error(2)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) SubmitDocument(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ApproveDocument(ctx context.Context, documentID string, approverUserID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, approverUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ResetDocumentToDraft(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) CancelDocument(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListDocumentEvents(ctx context.Context, documentID string, userID string) ([]domain.DocumentEvent, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentEvent), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	jwtSecret           string
	companyID           string
	userID              string
}

func (suite *DocumentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cashdesk-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDocumentService = new(MockDocumentService)

	company := suite.router.Group("/api/v1/companies/:companyID")
	handlers.RegisterDocumentRoutes(company, suite.mockDocumentService)
}

func (suite *DocumentHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DocumentHandlerTestSuite) sampleDocument(status domain.DocumentStatus) *domain.Document {
	return &domain.Document{
		DocumentID:      uuid.NewString(),
		Reference:       "C01/PAY/000007",
		DocType:         domain.TypePayment,
		CompanyID:       suite.companyID,
		Direction:       domain.DirectionSending,
		Amount:          decimal.NewFromInt(1200),
		DebitAccountID:  uuid.NewString(),
		CreditAccountID: uuid.NewString(),
		Label:           "Office rent",
		EntryDate:       time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC),
		Status:          status,
	}
}

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestCreateDocument_Success() {
	expected := suite.sampleDocument(domain.StatusDraft)

	suite.mockDocumentService.On("CreateDocument",
		mock.Anything,
		suite.companyID,
		mock.MatchedBy(func(req dto.CreateDocumentRequest) bool {
			return req.DocType == domain.TypePayment && req.Amount.Equal(decimal.NewFromInt(1200))
		}),
		suite.userID,
	).Return(expected, nil).Once()

	body := dto.CreateDocumentRequest{
		DocType:         domain.TypePayment,
		Amount:          decimal.NewFromInt(1200),
		DebitAccountID:  expected.DebitAccountID,
		CreditAccountID: expected.CreditAccountID,
		Label:           "Office rent",
		EntryDate:       expected.EntryDate,
	}
	url := fmt.Sprintf("/api/v1/companies/%s/documents", suite.companyID)
	w := suite.doRequest(http.MethodPost, url, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.DocumentID, resp.DocumentID)
	suite.Equal(expected.Reference, resp.Reference)
	suite.Equal(string(domain.StatusDraft), resp.Status)

	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCreateDocument_BadPayload() {
	url := fmt.Sprintf("/api/v1/companies/%s/documents", suite.companyID)
	w := suite.doRequest(http.MethodPost, url, gin.H{"docType": "PAYMENT"}) // amount and entryDate missing

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "CreateDocument")
}

func (suite *DocumentHandlerTestSuite) TestCreateDocument_NoToken() {
	url := fmt.Sprintf("/api/v1/companies/%s/documents", suite.companyID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "CreateDocument")
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_Success() {
	expected := suite.sampleDocument(domain.StatusWaitingApproval)

	suite.mockDocumentService.On("SubmitDocument", mock.Anything, expected.DocumentID, suite.userID).
		Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s/submit", suite.companyID, expected.DocumentID)
	w := suite.doRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.StatusWaitingApproval), resp.Status)

	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestApproveDocument_Forbidden() {
	documentID := uuid.NewString()

	suite.mockDocumentService.On("ApproveDocument", mock.Anything, documentID, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s/approve", suite.companyID, documentID)
	w := suite.doRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestApproveDocument_WrongState() {
	documentID := uuid.NewString()

	suite.mockDocumentService.On("ApproveDocument", mock.Anything, documentID, suite.userID).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s/approve", suite.companyID, documentID)
	w := suite.doRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestApproveDocument_PostingFailed() {
	documentID := uuid.NewString()

	suite.mockDocumentService.On("ApproveDocument", mock.Anything, documentID, suite.userID).
		Return(nil, apperrors.ErrPosting).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s/approve", suite.companyID, documentID)
	w := suite.doRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCancelDocument_DoneConflict() {
	documentID := uuid.NewString()

	suite.mockDocumentService.On("CancelDocument", mock.Anything, documentID, suite.userID).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s/cancel", suite.companyID, documentID)
	w := suite.doRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestListDocuments_PassesFilter() {
	docs := []domain.Document{*suite.sampleDocument(domain.StatusDone)}
	next := "tok-123"

	suite.mockDocumentService.On("ListDocuments",
		mock.Anything,
		suite.companyID,
		mock.MatchedBy(func(p dto.ListDocumentsParams) bool {
			return p.DocType == "SALARY" && p.Limit == 5
		}),
		suite.userID,
	).Return(docs, &next, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents?docType=SALARY&limit=5", suite.companyID)
	w := suite.doRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDocumentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Documents, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)

	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	documentID := uuid.NewString()

	suite.mockDocumentService.On("GetDocumentByID", mock.Anything, documentID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s", suite.companyID, documentID)
	w := suite.doRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestListDocumentEvents_Success() {
	documentID := uuid.NewString()
	journalID := uuid.NewString()
	events := []domain.DocumentEvent{
		{
			EventID:    uuid.NewString(),
			DocumentID: documentID,
			FromStatus: domain.StatusDraft,
			ToStatus:   domain.StatusWaitingApproval,
			ActorID:    suite.userID,
			CreatedAt:  time.Now().Add(-time.Hour),
		},
		{
			EventID:    uuid.NewString(),
			DocumentID: documentID,
			FromStatus: domain.StatusWaitingApproval,
			ToStatus:   domain.StatusDone,
			ActorID:    suite.userID,
			JournalID:  &journalID,
			Note:       "approved, journal posted",
			CreatedAt:  time.Now(),
		},
	}

	suite.mockDocumentService.On("ListDocumentEvents", mock.Anything, documentID, suite.userID).
		Return(events, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/documents/%s/events", suite.companyID, documentID)
	w := suite.doRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.DocumentEventResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(string(domain.StatusDone), resp[1].ToStatus)
	suite.Require().NotNil(resp[1].JournalID)
	suite.Equal(journalID, *resp[1].JournalID)

	suite.mockDocumentService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
