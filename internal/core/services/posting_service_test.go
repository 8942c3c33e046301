package services_test

import (
	"context"
	"testing"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/core/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockPostingRepo *MockPostingRepository
	mockContactRepo *MockContactRepository
	mockProductRepo *MockProductRepository
	service         portssvc.PostingSvc

	contactID string
	productID string
	userID    string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockPostingRepo = new(MockPostingRepository)
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewPostingService(suite.mockPostingRepo, suite.mockContactRepo, suite.mockProductRepo)

	suite.contactID = uuid.NewString()
	suite.productID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) expectContactExists() {
	contact := &domain.Contact{
		ContactID:      suite.contactID,
		Name:           "Anand Traders",
		Type:           domain.Customer,
		CurrentBalance: decimal.Zero,
	}
	suite.mockContactRepo.On("FindContactByID", mock.Anything, suite.contactID).Return(contact, nil).Once()
}

func (suite *PostingServiceTestSuite) expectProductExists() {
	products := map[string]domain.Product{
		suite.productID: {ProductID: suite.productID, Name: "White Large", CurrentStockQtyTrays: 50},
	}
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{suite.productID}).Return(products, nil).Once()
}

// A sale of 2 trays + 10 loose at 10 per egg with 5 broken eggs: 70 billable
// eggs make the amount 700, stock loses 2 trays and 15 loose (breakage is not
// billed but still leaves the shelf).
func (suite *PostingServiceTestSuite) TestPostTransaction_Sale() {
	ctx := context.Background()
	rate := decimal.NewFromInt(10)
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.Sale,
		Amount:    decimal.NewFromInt(700), // (2*30 + 10) eggs at 10
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: suite.productID, QtyTrays: 2, QtyLoose: 10, RateApplied: rate, BreakageQty: 5},
		},
	}

	suite.expectContactExists()
	suite.expectProductExists()

	suite.mockPostingRepo.On("SavePosting", mock.Anything,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionItem"),
		map[string]domain.StockDelta{suite.productID: {Trays: -2, Loose: -15}},
		decimal.NewFromInt(700),
	).Return(map[string]domain.StockLevel{suite.productID: {Trays: 48, Loose: -15}}, nil).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.Sale, result.Transaction.Type)
	suite.NotEmpty(result.Transaction.TransactionID)
	suite.Len(result.Transaction.Items, 1)
	suite.Equal(suite.userID, result.Transaction.CreatedBy)

	// Loose stock went negative, so the posting carries a warning.
	suite.Require().Len(result.Warnings, 1)
	suite.Contains(result.Warnings[0], "White Large")
	suite.Contains(result.Warnings[0], "negative")

	suite.mockPostingRepo.AssertExpectations(suite.T())
	suite.mockContactRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_PurchaseAddsStock() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.Purchase,
		Amount:    decimal.NewFromInt(300),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: suite.productID, QtyTrays: 5, RateApplied: decimal.NewFromInt(2)},
		},
	}

	suite.expectContactExists()
	suite.expectProductExists()

	// Purchase: stock up 5 trays, balance down by 300.
	suite.mockPostingRepo.On("SavePosting", mock.Anything,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionItem"),
		map[string]domain.StockDelta{suite.productID: {Trays: 5, Loose: 0}},
		decimal.NewFromInt(-300),
	).Return(map[string]domain.StockLevel{suite.productID: {Trays: 55, Loose: 0}}, nil).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(result.Warnings)
	suite.mockPostingRepo.AssertExpectations(suite.T())
}

// Warning order follows product names, not the IDs the engine works with.
func (suite *PostingServiceTestSuite) TestPostTransaction_WarningsSortedByProductName() {
	ctx := context.Background()
	// ID order (aaaa < zzzz) is the reverse of name order.
	whiteID := "aaaa-" + uuid.NewString()
	brownID := "zzzz-" + uuid.NewString()
	rate := decimal.NewFromInt(1)
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.Sale,
		Amount:    decimal.NewFromInt(60), // 2 trays at 1 per egg
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: whiteID, QtyTrays: 1, RateApplied: rate},
			{ProductID: brownID, QtyTrays: 1, RateApplied: rate},
		},
	}

	suite.expectContactExists()
	products := map[string]domain.Product{
		whiteID: {ProductID: whiteID, Name: "White Large"},
		brownID: {ProductID: brownID, Name: "Brown Medium"},
	}
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{whiteID, brownID}).Return(products, nil).Once()

	suite.mockPostingRepo.On("SavePosting", mock.Anything,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionItem"),
		mock.AnythingOfType("map[string]domain.StockDelta"),
		decimal.NewFromInt(60),
	).Return(map[string]domain.StockLevel{
		whiteID: {Trays: -1, Loose: 0},
		brownID: {Trays: -2, Loose: 0},
	}, nil).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 2)
	suite.Contains(result.Warnings[0], "Brown Medium")
	suite.Contains(result.Warnings[1], "White Large")
}

func (suite *PostingServiceTestSuite) TestPostTransaction_PaymentInLowersBalance() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.PaymentIn,
		Amount:    decimal.NewFromInt(900),
	}

	suite.expectContactExists()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{}).Return(map[string]domain.Product{}, nil).Once()

	suite.mockPostingRepo.On("SavePosting", mock.Anything,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionItem"),
		map[string]domain.StockDelta{},
		decimal.NewFromInt(-900),
	).Return(map[string]domain.StockLevel{}, nil).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(result.Warnings)
	suite.Empty(result.Transaction.Items)
	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_InvalidType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.TransactionType("REFUND"),
		Amount:    decimal.NewFromInt(100),
	}

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "SavePosting")
}

func (suite *PostingServiceTestSuite) TestPostTransaction_ZeroPaymentRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.PaymentOut,
		Amount:    decimal.Zero,
	}

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_ZeroSaleAllowed() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.Sale,
		Amount:    decimal.Zero,
	}

	suite.expectContactExists()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{}).Return(map[string]domain.Product{}, nil).Once()
	suite.mockPostingRepo.On("SavePosting", mock.Anything,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionItem"),
		map[string]domain.StockDelta{},
		decimal.Zero,
	).Return(map[string]domain.StockLevel{}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_ItemsOnPaymentRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.PaymentIn,
		Amount:    decimal.NewFromInt(100),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: suite.productID, QtyTrays: 1, RateApplied: decimal.NewFromInt(10)},
		},
	}

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "line items")
}

func (suite *PostingServiceTestSuite) TestPostTransaction_AmountMismatch() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.Sale,
		Amount:    decimal.NewFromInt(999), // items total is 700
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: suite.productID, QtyTrays: 2, QtyLoose: 10, RateApplied: decimal.NewFromInt(10)},
		},
	}

	suite.expectContactExists()
	suite.expectProductExists()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "does not match")
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "SavePosting")
}

func (suite *PostingServiceTestSuite) TestPostTransaction_UnknownContact() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.PaymentIn,
		Amount:    decimal.NewFromInt(100),
	}

	suite.mockContactRepo.On("FindContactByID", mock.Anything, suite.contactID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "SavePosting")
}

func (suite *PostingServiceTestSuite) TestPostTransaction_UnknownProductFailsWholePosting() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.Sale,
		Amount:    decimal.NewFromInt(300),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: suite.productID, QtyTrays: 1, RateApplied: decimal.NewFromInt(10)},
		},
	}

	suite.expectContactExists()
	// Repository returns an empty map: the product does not exist.
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{suite.productID}).Return(map[string]domain.Product{}, nil).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "SavePosting")
}

func (suite *PostingServiceTestSuite) TestPostTransaction_RepoErrorBubblesUp() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ContactID: suite.contactID,
		Type:      domain.PaymentOut,
		Amount:    decimal.NewFromInt(50),
	}

	suite.expectContactExists()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{}).Return(map[string]domain.Product{}, nil).Once()
	suite.mockPostingRepo.On("SavePosting", mock.Anything,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionItem"),
		map[string]domain.StockDelta{},
		decimal.NewFromInt(50),
	).Return(nil, assert.AnError).Once()

	result, err := suite.service.PostTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *PostingServiceTestSuite) TestGetContactTransactions_ChecksContact() {
	ctx := context.Background()

	suite.mockContactRepo.On("FindContactByID", mock.Anything, suite.contactID).Return(nil, apperrors.ErrNotFound).Once()

	txns, nextToken, err := suite.service.GetContactTransactions(ctx, suite.contactID, 20, nil)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.Nil(nextToken)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "ListTransactionsByContactID")
}

func (suite *PostingServiceTestSuite) TestGetContactTransactions_Success() {
	ctx := context.Background()
	suite.expectContactExists()

	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), ContactID: suite.contactID, Type: domain.Sale, Amount: decimal.NewFromInt(700)},
	}
	suite.mockPostingRepo.On("ListTransactionsByContactID", mock.Anything, suite.contactID, 20, (*string)(nil)).Return(expected, nil, nil).Once()

	txns, nextToken, err := suite.service.GetContactTransactions(ctx, suite.contactID, 20, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.Nil(nextToken, "a single page has no next token")
}

func (suite *PostingServiceTestSuite) TestGetContactTransactions_PassesPageToken() {
	ctx := context.Background()
	suite.expectContactExists()

	inToken := "opaque-cursor"
	outToken := "next-cursor"
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), ContactID: suite.contactID, Type: domain.PaymentIn, Amount: decimal.NewFromInt(900)},
	}
	suite.mockPostingRepo.On("ListTransactionsByContactID", mock.Anything, suite.contactID, 1, &inToken).Return(expected, &outToken, nil).Once()

	txns, nextToken, err := suite.service.GetContactTransactions(ctx, suite.contactID, 1, &inToken)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.Require().NotNil(nextToken)
	suite.Equal(outToken, *nextToken)
	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
