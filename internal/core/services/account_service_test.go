package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/seeddata"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	orgRepo     *MockOrganizationRepository
	service     portssvc.AccountSvcFacade
	orgID       string
	userID      string
	expenseType domain.AccountType
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.orgRepo = new(MockOrganizationRepository)
	suite.orgID = "org-1"
	suite.userID = "user-1"
	suite.expenseType = domain.AccountType{AccountTypeID: "expense", Name: "Expense", Category: domain.Expense, NormalBalance: domain.NormalDebit}
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, suite.orgID).
		Return(&domain.Organization{OrganizationID: suite.orgID, BaseCurrency: "AED"}, nil).Maybe()
	suite.service = services.NewAccountService(suite.accountRepo, suite.orgRepo)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	taxCode := "VAT5"
	req := dto.CreateAccountRequest{Code: " 6300 ", Name: "Office Supplies", AccountTypeID: "expense", TaxCode: &taxCode}
	suite.accountRepo.On("FindAccountTypeByID", mock.Anything, "expense").Return(&suite.expenseType, nil).Once()
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("6300", account.Code)
	suite.Equal(domain.Expense, account.Category)
	suite.Equal(domain.NormalDebit, account.NormalBalance)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	req := dto.CreateAccountRequest{Code: "6300", Name: "Office", AccountTypeID: "expense"}
	suite.accountRepo.On("FindAccountTypeByID", mock.Anything, "expense").Return(&suite.expenseType, nil).Once()
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(context.Background(), suite.orgID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownType() {
	req := dto.CreateAccountRequest{Code: "9000", Name: "Mystery", AccountTypeID: "gadgets"}
	suite.accountRepo.On("FindAccountTypeByID", mock.Anything, "gadgets").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(context.Background(), suite.orgID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingFields() {
	_, err := suite.service.CreateAccount(context.Background(), suite.orgID, dto.CreateAccountRequest{Name: "No code"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_SystemAccount() {
	suite.accountRepo.On("FindAccountByID", mock.Anything, suite.orgID, "acc-ap").
		Return(&domain.Account{AccountID: "acc-ap", Code: "2000", IsSystem: true}, nil).Once()

	err := suite.service.DeleteAccount(context.Background(), suite.orgID, "acc-ap")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.accountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Referenced() {
	suite.accountRepo.On("FindAccountByID", mock.Anything, suite.orgID, "acc-1").
		Return(&domain.Account{AccountID: "acc-1", Code: "6300"}, nil).Once()
	suite.accountRepo.On("IsAccountReferenced", mock.Anything, suite.orgID, "acc-1").Return(true, nil).Once()

	err := suite.service.DeleteAccount(context.Background(), suite.orgID, "acc-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Unused() {
	suite.accountRepo.On("FindAccountByID", mock.Anything, suite.orgID, "acc-1").
		Return(&domain.Account{AccountID: "acc-1", Code: "6300"}, nil).Once()
	suite.accountRepo.On("IsAccountReferenced", mock.Anything, suite.orgID, "acc-1").Return(false, nil).Once()
	suite.accountRepo.On("DeleteAccount", mock.Anything, suite.orgID, "acc-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteAccount(context.Background(), suite.orgID, "acc-1"))
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_CannotDeactivateSystemAccount() {
	inactive := false
	suite.accountRepo.On("FindAccountByID", mock.Anything, suite.orgID, "acc-vat").
		Return(&domain.Account{AccountID: "acc-vat", Code: "1150", IsSystem: true, IsActive: true}, nil).Once()

	_, err := suite.service.UpdateAccount(context.Background(), suite.orgID, "acc-vat", dto.UpdateAccountRequest{IsActive: &inactive}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestSeedChartOfAccounts_SkipsExistingCodes() {
	chart := func() ([]seeddata.ChartAccount, error) {
		return []seeddata.ChartAccount{
			{Code: "1000", Name: "Cash", AccountTypeID: "current_asset"},
			{Code: "2000", Name: "Accounts Payable", AccountTypeID: "current_liability", IsSystem: true},
		}, nil
	}
	svc := services.NewAccountService(suite.accountRepo, suite.orgRepo, services.WithChartTemplate(chart))
	suite.accountRepo.On("FindAccountsByCodes", mock.Anything, suite.orgID, []string{"1000", "2000"}).
		Return(map[string]domain.Account{"1000": {Code: "1000"}}, nil).Once()
	suite.accountRepo.On("FindAccountTypeByID", mock.Anything, "current_liability").
		Return(&domain.AccountType{AccountTypeID: "current_liability", Category: domain.Liability, NormalBalance: domain.NormalCredit}, nil).Once()
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Code == "2000" && a.IsSystem
	})).Return(nil).Once()

	created, skipped, err := svc.SeedChartOfAccounts(context.Background(), suite.orgID, suite.userID)

	suite.Require().NoError(err)
	suite.Len(created, 1)
	suite.Equal([]string{"1000"}, skipped)
}

func TestEmbeddedChartCoversReservedCodes(t *testing.T) {
	chart, err := seeddata.ChartOfAccounts()
	assert.NoError(t, err)
	reserved := domain.DefaultReservedAccountCodes()
	found := map[string]bool{}
	for _, a := range chart {
		found[a.Code] = a.IsSystem
	}
	for _, code := range []string{reserved.VATInput, reserved.VATOutput, reserved.AccountsPayable} {
		assert.True(t, found[code], "reserved code %s must be a system account in the template", code)
	}
}
