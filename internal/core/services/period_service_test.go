package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	orgRepo    *MockOrganizationRepository
	periodRepo *MockPeriodRepository
	tx         *fakeTxManager
	service    portssvc.PeriodSvcFacade
	orgID      string
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.orgRepo = new(MockOrganizationRepository)
	suite.periodRepo = new(MockPeriodRepository)
	suite.tx = &fakeTxManager{repos: portsrepo.RepositoryProvider{PeriodRepo: suite.periodRepo}}
	suite.service = services.NewPeriodService(suite.periodRepo, suite.orgRepo, suite.tx)
	suite.orgID = "org-1"
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, suite.orgID).
		Return(&domain.Organization{OrganizationID: suite.orgID, BaseCurrency: "AED"}, nil).Maybe()
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

func (suite *PeriodServiceTestSuite) TestResolve_ExistingPeriod() {
	date := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	existing := &domain.AccountingPeriod{PeriodID: "per-1", Status: domain.PeriodOpen}
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).
		Return(existing, nil).Once()

	id, err := suite.service.ResolveOrCreatePeriod(context.Background(), suite.orgID, date)

	suite.Require().NoError(err)
	suite.Equal("per-1", id)
	suite.periodRepo.AssertNotCalled(suite.T(), "EnsureFiscalYear", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestResolve_CreatesFiscalYearAndMonth() {
	date := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, date).Return(nil, apperrors.ErrNotFound).Once()
	suite.periodRepo.On("EnsureFiscalYear", mock.Anything, mock.MatchedBy(func(fy domain.FiscalYear) bool {
		return fy.Name == "FY 2024" &&
			fy.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			fy.EndDate.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.FiscalYear{FiscalYearID: "fy-2024", Name: "FY 2024"}, nil).Once()

	var inserted domain.AccountingPeriod
	suite.periodRepo.On("EnsurePeriod", mock.Anything, mock.MatchedBy(func(p domain.AccountingPeriod) bool {
		return p.FiscalYearID == "fy-2024"
	})).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(domain.AccountingPeriod)
	}).Return(&domain.AccountingPeriod{
		PeriodID:  "per-2024-02",
		Name:      "February 2024",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   date,
		Status:    domain.PeriodOpen,
	}, nil).Once()

	id, err := suite.service.ResolveOrCreatePeriod(context.Background(), suite.orgID, date)

	suite.Require().NoError(err)
	suite.Equal("per-2024-02", id)
	suite.NotEmpty(inserted.PeriodID)
	suite.Equal("February 2024", inserted.Name)
	suite.Equal(domain.PeriodOpen, inserted.Status)
	suite.True(inserted.StartDate.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	suite.True(inserted.EndDate.Equal(date))
	suite.Equal(1, suite.tx.calls)
}

func (suite *PeriodServiceTestSuite) TestResolve_ConcurrentWinnerIsReused() {
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	winner := &domain.AccountingPeriod{
		PeriodID:  "per-winner",
		Name:      "May 2024",
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, date).Return(nil, apperrors.ErrNotFound).Once()
	suite.periodRepo.On("EnsureFiscalYear", mock.Anything, mock.Anything).Return(&domain.FiscalYear{FiscalYearID: "fy-2024"}, nil).Once()
	suite.periodRepo.On("EnsurePeriod", mock.Anything, mock.Anything).Return(winner, nil).Once()

	id, err := suite.service.ResolveOrCreatePeriod(context.Background(), suite.orgID, date)

	suite.Require().NoError(err)
	suite.Equal("per-winner", id)
}

func (suite *PeriodServiceTestSuite) TestResolve_ClosedFiscalYear() {
	date := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, date).Return(nil, apperrors.ErrNotFound).Once()
	suite.periodRepo.On("EnsureFiscalYear", mock.Anything, mock.Anything).
		Return(&domain.FiscalYear{FiscalYearID: "fy-2023", Name: "FY 2023", IsClosed: true}, nil).Once()

	id, err := suite.service.ResolveOrCreatePeriod(context.Background(), suite.orgID, date)

	suite.Empty(id)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.periodRepo.AssertNotCalled(suite.T(), "EnsurePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestResolve_StorageFailureNeverYieldsEmptyID() {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	suite.periodRepo.On("FindPeriodContaining", mock.Anything, suite.orgID, date).Return(nil, apperrors.ErrNotFound).Once()
	suite.periodRepo.On("EnsureFiscalYear", mock.Anything, mock.Anything).Return(&domain.FiscalYear{FiscalYearID: "fy"}, nil).Once()
	suite.periodRepo.On("EnsurePeriod", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewPersistenceError("insert failed", nil)).Once()

	id, err := suite.service.ResolveOrCreatePeriod(context.Background(), suite.orgID, date)

	suite.Empty(id)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *PeriodServiceTestSuite) TestResolve_ZeroDate() {
	_, err := suite.service.ResolveOrCreatePeriod(context.Background(), suite.orgID, time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriodStatus_LockedIsFinal() {
	suite.periodRepo.On("FindPeriodByID", mock.Anything, suite.orgID, "per-1").
		Return(&domain.AccountingPeriod{PeriodID: "per-1", Name: "March 2024", Status: domain.PeriodLocked}, nil).Once()

	_, err := suite.service.UpdatePeriodStatus(context.Background(), suite.orgID, "per-1", domain.PeriodOpen)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.periodRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriodStatus_Close() {
	suite.periodRepo.On("FindPeriodByID", mock.Anything, suite.orgID, "per-1").
		Return(&domain.AccountingPeriod{PeriodID: "per-1", Status: domain.PeriodOpen}, nil).Once()
	suite.periodRepo.On("UpdatePeriodStatus", mock.Anything, suite.orgID, "per-1", domain.PeriodClosed).Return(nil).Once()

	period, err := suite.service.UpdatePeriodStatus(context.Background(), suite.orgID, "per-1", domain.PeriodClosed)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, period.Status)
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriodStatus_UnknownStatus() {
	_, err := suite.service.UpdatePeriodStatus(context.Background(), suite.orgID, "per-1", domain.PeriodStatus("archived"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}
