package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/handlers"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, organizationID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, organizationID, accountID string) error {
	return m.Called(ctx, organizationID, accountID).Error(0)
}
func (m *MockAccountService) SeedChartOfAccounts(ctx context.Context, organizationID, userID string) ([]domain.Account, []string, error) {
	args := m.Called(ctx, organizationID, userID)
	var created []domain.Account
	if v := args.Get(0); v != nil {
		created = v.([]domain.Account)
	}
	var skipped []string
	if v := args.Get(1); v != nil {
		skipped = v.([]string)
	}
	return created, skipped, args.Error(2)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetEntry(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}
func (m *MockJournalService) Validate(draft domain.EntryDraft) domain.ValidationResult {
	return m.Called(draft).Get(0).(domain.ValidationResult)
}
func (m *MockJournalService) PostEntry(ctx context.Context, organizationID string, draft domain.EntryDraft, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, draft, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) PostDocument(ctx context.Context, organizationID string, doc domain.DocumentPosting, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, doc, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ReverseEntry(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GeneralLedger(ctx context.Context, organizationID, accountID string) (*domain.Account, []domain.LedgerRow, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).([]domain.LedgerRow), args.Error(2)
}
func (m *MockLedgerService) TrialBalance(ctx context.Context, organizationID string, asOf *time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, organizationID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockLedgerService) AccountBalance(ctx context.Context, organizationID, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, organizationID, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockJournalService *MockJournalService
	mockLedgerService  *MockLedgerService
	jwtSecret          string
	orgID              string
}

// generateTestToken creates a signed JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
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

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.orgID = "acme"

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockLedgerService = new(MockLedgerService)

	handlers.RegisterRoutes(suite.router, &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Journal: suite.mockJournalService,
		Ledger:  suite.mockLedgerService,
	})
}

func (suite *HandlerTestSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestRequiresBearerToken() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/acme/accounts", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRejectsTokenSignedWithAnotherKey() {
	claims := jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/organizations/acme/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "6700", Name: "Bank Charges", AccountTypeID: "expense"}
	created := &domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.orgID, Code: "6700", Name: "Bank Charges",
		AccountTypeID: "expense", Category: domain.Expense, NormalBalance: domain.NormalDebit, IsActive: true}

	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.orgID, req, userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/accounts", userID, req)
	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal("expense", resp.Category)
	suite.Equal("debit", resp.NormalBalance)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountTypeID: "current_asset"}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.orgID, req, "u1").
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/accounts", "u1", req)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_BindingError() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/accounts", "u1", map[string]string{"name": "No code"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.orgID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/acme/accounts/missing", "u1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAccountBalance() {
	suite.mockLedgerService.On("AccountBalance", mock.Anything, suite.orgID, "cash").
		Return(decimal.RequireFromString("1250.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/acme/accounts/cash/balance", "u1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("1250.50")))
}

func entryRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   "2024-03-05",
		Description: "Office rent",
		Lines: []dto.JournalLineRequest{
			{AccountID: "rent", Debit: decimal.NewFromInt(1200)},
			{AccountID: "bank", Credit: decimal.NewFromInt(1200)},
		},
	}
}

func (suite *HandlerTestSuite) TestPostEntry_Success() {
	userID := uuid.NewString()
	posted := &domain.JournalEntry{
		EntryID: "e1", EntryNumber: "JE-202403-0001", EntryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Status: domain.EntryStatusPosted, TotalDebit: decimal.NewFromInt(1200), TotalCredit: decimal.NewFromInt(1200),
	}
	suite.mockJournalService.On("PostEntry", mock.Anything, suite.orgID,
		mock.MatchedBy(func(d domain.EntryDraft) bool {
			return d.SourceType == domain.SourceManual && len(d.Lines) == 2 && d.EntryDate.Day() == 5
		}), userID).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/journals", userID, entryRequest())
	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JE-202403-0001", resp.EntryNumber)
	suite.Equal("2024-03-05", resp.EntryDate)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostEntry_ValidationErrorListsAllMessages() {
	suite.mockJournalService.On("PostEntry", mock.Anything, suite.orgID, mock.Anything, "u1").
		Return(nil, apperrors.NewValidationError("journal entry is out of balance: debits 1200.00, credits 0.00", "line 2: account is required")).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/journals", "u1", entryRequest())
	suite.Equal(http.StatusBadRequest, w.Code)

	var body struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("journal entry is out of balance: debits 1200.00, credits 0.00", body.Error)
	suite.Len(body.Errors, 2)
}

func (suite *HandlerTestSuite) TestPostEntry_ClosedPeriodConflicts() {
	suite.mockJournalService.On("PostEntry", mock.Anything, suite.orgID, mock.Anything, "u1").
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/journals", "u1", entryRequest())
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_StorageFailureIsHidden() {
	suite.mockJournalService.On("PostEntry", mock.Anything, suite.orgID, mock.Anything, "u1").
		Return(nil, apperrors.NewPersistenceError("insert failed", nil)).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/journals", "u1", entryRequest())
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to post journal entry")
	suite.NotContains(w.Body.String(), "insert failed")
}

func (suite *HandlerTestSuite) TestValidateEntry() {
	suite.mockJournalService.On("Validate", mock.Anything).
		Return(domain.ValidationResult{Valid: false, Errors: []string{"journal entry must have at least two lines"}}).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/journals/validate", "u1", entryRequest())
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ValidateJournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Valid)
	suite.Equal("journal entry must have at least two lines", resp.Error)
}

func (suite *HandlerTestSuite) TestListEntries_PassesToken() {
	next := "opaque-next"
	suite.mockJournalService.On("ListEntries", mock.Anything, suite.orgID, 2,
		mock.MatchedBy(func(tok *string) bool { return tok != nil && *tok == "opaque-prev" })).
		Return([]domain.JournalEntry{{EntryID: "e2"}, {EntryID: "e1"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/acme/journals?limit=2&nextToken=opaque-prev", "u1", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestPostDocument_MissingReservedAccount() {
	suite.mockJournalService.On("PostDocument", mock.Anything, suite.orgID,
		mock.MatchedBy(func(d domain.DocumentPosting) bool { return d.ExpenseAccountID == "utilities" }), "u1").
		Return(nil, apperrors.NewValidationError("VAT input account (code 1150) is missing from the chart of accounts")).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/acme/documents/post", "u1", dto.PostDocumentRequest{
		DocumentID: "doc-1", Date: "2024-02-10", MerchantName: "DEWA", GLAccountID: "utilities",
		NetAmount: decimal.NewFromInt(100), VATAmount: decimal.NewFromInt(5), TotalAmount: decimal.NewFromInt(105),
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "VAT input account (code 1150)")
}

func (suite *HandlerTestSuite) TestTrialBalance_RejectsBadDate() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/acme/reports/trial-balance?asOf=31-12-2024", "u1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestTrialBalance_AsOf() {
	asOf := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockLedgerService.On("TrialBalance", mock.Anything, suite.orgID,
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(asOf) })).
		Return(&domain.TrialBalance{AsOf: &asOf, TotalDebit: decimal.NewFromInt(10), TotalCredit: decimal.NewFromInt(10)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/acme/reports/trial-balance?asOf=2024-12-31", "u1", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-12-31", resp.AsOf)
	suite.True(resp.Totals.Debit.Equal(resp.Totals.Credit))
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
