package services_test

import (
	"context"
	"testing"
	"time"

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

type ContactServiceTestSuite struct {
	suite.Suite
	mockRepo *MockContactRepository
	service  portssvc.ContactSvcFacade
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockContactRepository)
	suite.service = services.NewContactService(suite.mockRepo)
}

func (suite *ContactServiceTestSuite) TestCreateContact_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	adjustment := decimal.RequireFromString("-0.25")
	req := dto.CreateContactRequest{
		Name:            "Anand Traders",
		Type:            domain.Customer,
		Phone:           "9876543210",
		PriceAdjustment: &adjustment,
	}

	suite.mockRepo.On("SaveContact", ctx, mock.AnythingOfType("domain.Contact")).Return(nil).Once()

	contact, err := suite.service.CreateContact(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(contact)
	suite.NotEmpty(contact.ContactID)
	suite.Equal(req.Name, contact.Name)
	suite.Equal(domain.Customer, contact.Type)
	suite.True(contact.CurrentBalance.IsZero(), "balance must start at zero")
	suite.True(contact.PriceAdjustment.Equal(adjustment))
	suite.Equal(creatorUserID, contact.CreatedBy)
	suite.WithinDuration(time.Now(), contact.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestCreateContact_DefaultsAdjustmentToZero() {
	ctx := context.Background()
	req := dto.CreateContactRequest{Name: "Sharma Poultry Farm", Type: domain.Vendor}

	suite.mockRepo.On("SaveContact", ctx, mock.AnythingOfType("domain.Contact")).Return(nil).Once()

	contact, err := suite.service.CreateContact(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(contact.PriceAdjustment.IsZero())
}

func (suite *ContactServiceTestSuite) TestCreateContact_InvalidType() {
	req := dto.CreateContactRequest{Name: "X", Type: domain.ContactType("SUPPLIER")}

	contact, err := suite.service.CreateContact(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(contact)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveContact")
}

func (suite *ContactServiceTestSuite) TestListContacts_FilterByType() {
	ctx := context.Background()
	vendorType := domain.Vendor
	expected := []domain.Contact{{ContactID: uuid.NewString(), Name: "Sharma Poultry Farm", Type: domain.Vendor}}

	suite.mockRepo.On("ListContacts", ctx, &vendorType).Return(expected, nil).Once()

	contacts, err := suite.service.ListContacts(ctx, &vendorType)

	suite.Require().NoError(err)
	suite.Equal(expected, contacts)
}

func (suite *ContactServiceTestSuite) TestListContacts_InvalidFilter() {
	badType := domain.ContactType("SUPPLIER")

	contacts, err := suite.service.ListContacts(context.Background(), &badType)

	suite.Require().Error(err)
	suite.Nil(contacts)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListContacts")
}

func (suite *ContactServiceTestSuite) TestUpdateContact_BalanceUntouched() {
	ctx := context.Background()
	contactID := uuid.NewString()
	existing := &domain.Contact{
		ContactID:      contactID,
		Name:           "Old Name",
		Type:           domain.Customer,
		CurrentBalance: decimal.NewFromInt(900),
	}
	newName := "New Name"

	suite.mockRepo.On("FindContactByID", ctx, contactID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Name == newName && c.CurrentBalance.Equal(decimal.NewFromInt(900))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateContact(ctx, contactID, dto.UpdateContactRequest{Name: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.CurrentBalance.Equal(decimal.NewFromInt(900)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestUpdateContact_NotFound() {
	ctx := context.Background()
	contactID := uuid.NewString()

	suite.mockRepo.On("FindContactByID", ctx, contactID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateContact(ctx, contactID, dto.UpdateContactRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ContactServiceTestSuite) TestGetContactByID_RepoError() {
	ctx := context.Background()
	contactID := uuid.NewString()

	suite.mockRepo.On("FindContactByID", ctx, contactID).Return(nil, assert.AnError).Once()

	contact, err := suite.service.GetContactByID(ctx, contactID)

	suite.Require().Error(err)
	suite.Nil(contact)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
