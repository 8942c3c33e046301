package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/eggkhata/egg_khata_app/internal/handlers"
	"github.com/eggkhata/egg_khata_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockPostingService) GetContactTransactions(ctx context.Context, contactID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, contactID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.PostingSvc = (*MockPostingService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPostingService *MockPostingService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "eka-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPostingService = new(MockPostingService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		Posting: suite.mockPostingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestPostTransaction_Success() {
	userID := uuid.NewString()
	contactID := uuid.NewString()
	productID := uuid.NewString()

	reqBody := dto.CreateTransactionRequest{
		ContactID: contactID,
		Type:      domain.Sale,
		Amount:    decimal.NewFromInt(700),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: productID, QtyTrays: 2, QtyLoose: 10, RateApplied: decimal.NewFromInt(10), BreakageQty: 5},
		},
	}

	expectedResult := &domain.PostingResult{
		Transaction: domain.Transaction{
			TransactionID: uuid.NewString(),
			ContactID:     contactID,
			Type:          domain.Sale,
			Amount:        decimal.NewFromInt(700),
			Date:          time.Now(),
		},
		Warnings: []string{"stock for White Large is negative: 48 trays, -15 loose"},
	}

	suite.mockPostingService.On("PostTransaction",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.ContactID == contactID && r.Type == domain.Sale && len(r.Items) == 1
		}),
		userID,
	).Return(expectedResult, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.PostingResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Equal(expectedResult.Transaction.TransactionID, responseBody.Transaction.TransactionID)
	suite.Require().Len(responseBody.Warnings, 1)
	suite.Contains(responseBody.Warnings[0], "negative")

	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_ValidationErrorReturns400() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransactionRequest{
		ContactID: uuid.NewString(),
		Type:      domain.PaymentIn,
		Amount:    decimal.NewFromInt(100),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: uuid.NewString(), QtyTrays: 1, RateApplied: decimal.NewFromInt(10)},
		},
	}

	suite.mockPostingService.On("PostTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), userID).
		Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_UnknownContactReturns404() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransactionRequest{
		ContactID: uuid.NewString(),
		Type:      domain.PaymentIn,
		Amount:    decimal.NewFromInt(100),
	}

	suite.mockPostingService.On("PostTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), userID).
		Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_MissingTokenReturns401() {
	reqBody := dto.CreateTransactionRequest{
		ContactID: uuid.NewString(),
		Type:      domain.Sale,
		Amount:    decimal.NewFromInt(100),
	}

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockPostingService.On("GetTransactionByID", mock.Anything, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID: transactionID,
		ContactID:     uuid.NewString(),
		Type:          domain.PaymentIn,
		Amount:        decimal.NewFromInt(900),
		Date:          time.Now(),
	}

	suite.mockPostingService.On("GetTransactionByID", mock.Anything, transactionID).
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.TransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Equal(transactionID, responseBody.TransactionID)
	suite.Equal(domain.PaymentIn, responseBody.Type)
}

func (suite *TransactionHandlerTestSuite) TestGetContactTransactions_PaginatedPage() {
	userID := uuid.NewString()
	contactID := uuid.NewString()
	inToken := "b3BhcXVlLWN1cnNvcg=="
	outToken := "bmV4dC1jdXJzb3I="
	page := []domain.Transaction{
		{TransactionID: uuid.NewString(), ContactID: contactID, Type: domain.Sale, Amount: decimal.NewFromInt(700), Date: time.Now()},
		{TransactionID: uuid.NewString(), ContactID: contactID, Type: domain.PaymentIn, Amount: decimal.NewFromInt(900), Date: time.Now()},
	}

	suite.mockPostingService.On("GetContactTransactions", mock.Anything, contactID, 2, &inToken).
		Return(page, &outToken, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/contacts/"+contactID+"/transactions?limit=2&nextToken="+inToken, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListTransactionsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Len(responseBody.Transactions, 2)
	suite.Require().NotNil(responseBody.NextToken)
	suite.Equal(outToken, *responseBody.NextToken)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetContactTransactions_BadTokenReturns400() {
	userID := uuid.NewString()
	contactID := uuid.NewString()

	suite.mockPostingService.On("GetContactTransactions", mock.Anything, contactID, 0, mock.Anything).
		Return(nil, nil, apperrors.ErrValidation).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/contacts/"+contactID+"/transactions?nextToken=garbage", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
