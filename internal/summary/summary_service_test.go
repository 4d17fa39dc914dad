package summary_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/employee"
	employeeMock "go-hris-leave/internal/employee/mock"
	grouppolicyerrors "go-hris-leave/internal/grouppolicy/errors"
	grouppolicyMock "go-hris-leave/internal/grouppolicy/mock"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/ledger"
	ledgerMock "go-hris-leave/internal/ledger/mock"
	"go-hris-leave/internal/summary"
	summaryerrors "go-hris-leave/internal/summary/errors"
	summaryMock "go-hris-leave/internal/summary/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type summaryFixture struct {
	companyID string
	staff     employee.Employee
	manager   employee.Employee
	service   summary.Service
}

// setupSummary builds a company with two enabled leave types and one
// disabled one. Staff may not take Medical Leave.
func setupSummary(t *testing.T) summaryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	companyID := uuid.New()
	staff := employee.Employee{ID: uuid.New(), CompanyID: companyID, FullName: "Dewi Lestari", Designation: "Staff"}
	manager := employee.Employee{ID: uuid.New(), CompanyID: companyID, FullName: "Agus Pratama", Designation: "Manager"}

	repo := summaryMock.NewMockRepository(ctrl)
	repo.EXPECT().
		CountApplications(gomock.Any(), companyID.String(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, employeeID string, from, to time.Time) ([]summary.StatusCount, error) {
			assert.Equal(t, 2025, from.Year())
			assert.Equal(t, 2026, to.Year())
			all := []summary.StatusCount{
				{EmployeeID: staff.ID.String(), LeaveType: "Annual Leave", Status: domain.LeaveStatusApproved, Applications: 1},
				{EmployeeID: staff.ID.String(), LeaveType: "Annual Leave", Status: domain.LeaveStatusPending, Applications: 1},
				{EmployeeID: manager.ID.String(), LeaveType: "Medical Leave", Status: domain.LeaveStatusRejected, Applications: 2},
			}
			if employeeID == "" {
				return all, nil
			}
			var out []summary.StatusCount
			for _, c := range all {
				if c.EmployeeID == employeeID {
					out = append(out, c)
				}
			}
			return out, nil
		}).
		AnyTimes()

	directory := employeeMock.NewMockDirectory(ctrl)
	directory.EXPECT().ListByCompany(gomock.Any(), companyID.String()).Return([]employee.Employee{staff, manager}, nil).AnyTimes()
	directory.EXPECT().FindByID(gomock.Any(), companyID.String(), staff.ID.String()).Return(&staff, nil).AnyTimes()

	types := ledgerMock.NewMockCompanyTypeReader(ctrl)
	types.EXPECT().CompanyTypeStates(gomock.Any(), companyID.String()).Return([]leavepolicy.CompanyTypeState{
		{LeaveType: "Sabbatical", EntitlementDays: decimal.NewFromInt(30)},
		{LeaveType: "Medical Leave", EntitlementDays: decimal.NewFromInt(10), Enabled: true},
		{LeaveType: "Annual Leave", EntitlementDays: decimal.NewFromInt(14), Enabled: true},
	}, nil).AnyTimes()

	eligibility := grouppolicyMock.NewMockService(ctrl)
	eligibility.EXPECT().
		CheckAccess(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, emp employee.Employee, leaveType string) error {
			if emp.Role() == "Staff" && leaveType == "Medical Leave" {
				return grouppolicyerrors.ErrRoleNotPermitted
			}
			return nil
		}).
		AnyTimes()

	balances := ledgerMock.NewMockService(ctrl)
	balances.EXPECT().
		Balance(gomock.Any(), gomock.Any(), 2025).
		DoAndReturn(func(_ context.Context, key domain.LeaveKey, year int) (ledger.Balance, error) {
			if key.LeaveType == "Annual Leave" {
				return ledger.Balance{
					Key:         key,
					Year:        year,
					Entitlement: decimal.NewFromInt(14),
					Taken:       decimal.NewFromInt(3),
					Carried:     decimal.NewFromInt(1),
					Remaining:   decimal.NewFromInt(12),
					Included:    true,
				}, nil
			}
			return ledger.Balance{
				Key:         key,
				Year:        year,
				Entitlement: decimal.NewFromInt(10),
				Remaining:   decimal.NewFromInt(10),
				Included:    true,
			}, nil
		}).
		AnyTimes()

	return summaryFixture{
		companyID: companyID.String(),
		staff:     staff,
		manager:   manager,
		service:   summary.NewService(repo, directory, types, eligibility, balances),
	}
}

func TestSummaryService_EmployeeSummary(t *testing.T) {
	f := setupSummary(t)

	got, err := f.service.EmployeeSummary(context.Background(), f.companyID, f.staff.ID.String(), 2025)

	require.NoError(t, err)
	assert.Equal(t, "Staff", got.Role)
	require.Len(t, got.LeaveTypes, 2)

	annual := got.LeaveTypes[0]
	assert.Equal(t, "Annual Leave", annual.LeaveType)
	assert.True(t, annual.IsEligible)
	assert.Equal(t, "14", annual.EntitlementDays)
	assert.Equal(t, "3", annual.DaysTaken)
	assert.Equal(t, "1", annual.CarriedDays)
	assert.Equal(t, "12", annual.RemainingDays)
	assert.Equal(t, int64(2), annual.ApplicationsCount)

	medical := got.LeaveTypes[1]
	assert.Equal(t, "Medical Leave", medical.LeaveType)
	assert.False(t, medical.IsEligible)
	assert.Zero(t, medical.ApplicationsCount)
}

func TestSummaryService_CompanySummary(t *testing.T) {
	f := setupSummary(t)

	got, err := f.service.CompanySummary(context.Background(), f.companyID, 2025)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, f.staff.ID.String(), got[0].EmployeeID)
	assert.Equal(t, f.manager.ID.String(), got[1].EmployeeID)
	assert.Equal(t, int64(2), got[1].LeaveTypes[1].ApplicationsCount)
	assert.True(t, got[1].LeaveTypes[1].IsEligible)
}

func TestSummaryService_LeaveTypeStatistics(t *testing.T) {
	f := setupSummary(t)

	got, err := f.service.LeaveTypeStatistics(context.Background(), f.companyID, 2025)

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, summary.LeaveTypeStatisticsResponse{
		LeaveType:        "Annual Leave",
		Employees:        2,
		TotalEntitlement: "28",
		TotalTaken:       "6",
		TotalRemaining:   "24",
		Pending:          1,
		Approved:         1,
	}, got[0])
	assert.Equal(t, summary.LeaveTypeStatisticsResponse{
		LeaveType:        "Medical Leave",
		Employees:        1,
		TotalEntitlement: "10",
		TotalTaken:       "0",
		TotalRemaining:   "10",
		Rejected:         2,
	}, got[1])
}

func TestSummaryService_RenderPDF(t *testing.T) {
	f := setupSummary(t)

	doc, err := f.service.RenderPDF(context.Background(), f.companyID, 2025)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestSummaryService_Validation(t *testing.T) {
	ctx := context.Background()
	f := setupSummary(t)

	_, err := f.service.CompanySummary(ctx, f.companyID, 1999)
	assert.ErrorIs(t, err, summaryerrors.ErrInvalidYear)

	_, err = f.service.LeaveTypeStatistics(ctx, "acme", 2025)
	assert.ErrorIs(t, err, summaryerrors.ErrInvalidCompanyID)

	_, err = f.service.EmployeeSummary(ctx, f.companyID, "nobody", 2025)
	assert.ErrorIs(t, err, summaryerrors.ErrInvalidEmployeeID)
}

func TestSummaryService_EligibilityFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	companyID := uuid.New()
	emp := employee.Employee{ID: uuid.New(), CompanyID: companyID, Designation: "Staff"}
	boom := errors.New("redis down")

	repo := summaryMock.NewMockRepository(ctrl)
	repo.EXPECT().CountApplications(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	directory := employeeMock.NewMockDirectory(ctrl)
	directory.EXPECT().ListByCompany(gomock.Any(), gomock.Any()).Return([]employee.Employee{emp}, nil)
	types := ledgerMock.NewMockCompanyTypeReader(ctrl)
	types.EXPECT().CompanyTypeStates(gomock.Any(), gomock.Any()).Return([]leavepolicy.CompanyTypeState{
		{LeaveType: "Annual Leave", Enabled: true},
	}, nil)
	eligibility := grouppolicyMock.NewMockService(ctrl)
	eligibility.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), "Annual Leave").Return(boom)

	svc := summary.NewService(repo, directory, types, eligibility, ledgerMock.NewMockService(ctrl))
	_, err := svc.CompanySummary(context.Background(), companyID.String(), 2025)

	assert.ErrorIs(t, err, boom)
}
