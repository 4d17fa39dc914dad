package leave_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-hris-leave/internal/approvalsetting"
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/employee"
	grouppolicyMock "go-hris-leave/internal/grouppolicy/mock"
	"go-hris-leave/internal/leave"
	leaveerrors "go-hris-leave/internal/leave/errors"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/ledger"
	ledgerMock "go-hris-leave/internal/ledger/mock"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/counter"
	"go-hris-leave/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Two eight day requests against a ten day entitlement: both may be filed,
// only the first one approved can be paid for.
func TestLeaveWorkflow_SecondApprovalAutoRejects(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	gdb := testdb.Open(t,
		&employee.Employee{},
		&leave.LeaveApplication{},
		&leave.LeaveApplicationAction{},
		&ledger.EmployeeLeavePolicy{},
		&ledger.IndividualLeaveAdjustment{},
		&ledger.CarryForwardRecord{},
		&approvalsetting.ApprovalSetting{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
	)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	companyID := uuid.New()
	applicant := employee.Employee{ID: uuid.New(), CompanyID: companyID, FullName: "Budi Santoso", Designation: "Engineer"}
	approver := employee.Employee{ID: uuid.New(), CompanyID: companyID, FullName: "Rina Wijaya", Designation: "Manager"}
	require.NoError(t, gdb.Create(&applicant).Error)
	require.NoError(t, gdb.Create(&approver).Error)

	types := ledgerMock.NewMockCompanyTypeReader(ctrl)
	types.EXPECT().
		CompanyTypeState(gomock.Any(), gomock.Any(), "Annual Leave").
		Return(leavepolicy.CompanyTypeState{
			LeaveType:       "Annual Leave",
			EntitlementDays: decimal.NewFromInt(10),
			Enabled:         true,
		}, true, nil).
		AnyTimes()
	eligibility := grouppolicyMock.NewMockService(ctrl)
	eligibility.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), "Annual Leave").Return(nil).AnyTimes()
	types.EXPECT().
		CompanyTypeState(gomock.Any(), gomock.Any(), "Unpaid Leave").
		Return(leavepolicy.CompanyTypeState{
			LeaveType:       "Unpaid Leave",
			EntitlementDays: decimal.Zero,
			Enabled:         true,
			AllowOverdraft:  true,
		}, true, nil).
		AnyTimes()
	eligibility.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), "Unpaid Leave").Return(nil).AnyTimes()

	directory := employee.NewDirectory(gdb)
	balances := ledger.NewService(sqlDB, ledger.NewRepository(gdb), types, directory)
	approvers := approvalsetting.NewService(sqlDB, approvalsetting.NewRepository(gdb), directory)
	outbox := kafka.NewOutboxRepository(gdb)
	svc := leave.NewService(sqlDB, leave.NewRepository(gdb), directory, eligibility, balances, approvers,
		counter.NewRepository(gdb), outbox)

	_, err = approvers.Upsert(ctx, companyID.String(), approver.ID.String(), approvalsetting.UpsertRequest{
		FirstLevelApproverID: approver.ID.String(),
	})
	require.NoError(t, err)

	year := time.Now().UTC().Year()
	submit := func(start, end string) leave.SubmitResponse {
		resp, err := svc.Submit(ctx, companyID.String(), applicant.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: "Annual Leave",
			StartDate: fmt.Sprintf("%d-%s", year, start),
			EndDate:   fmt.Sprintf("%d-%s", year, end),
			Reason:    "annual trip",
		})
		require.NoError(t, err)
		return resp
	}

	first := submit("03-02", "03-09")
	second := submit("04-06", "04-13")
	assert.Equal(t, "8", first.Application.TotalDays)
	assert.Equal(t, "8", second.Application.TotalDays)
	assert.NotEqual(t, first.Application.ReferenceNo, second.Application.ReferenceNo)

	approve := leave.DecideRequest{Action: domain.DecisionApprove}

	got, err := svc.Decide(ctx, companyID.String(), approver.ID.String(), first.Application.ID, approve)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusApproved, got.Application.Status)
	assert.Equal(t, "2", got.Balance)

	got, err = svc.Decide(ctx, companyID.String(), approver.ID.String(), second.Application.ID, approve)
	require.NoError(t, err)
	assert.True(t, got.AutoRejected)
	assert.Equal(t, domain.LeaveStatusRejected, got.Application.Status)
	require.NotNil(t, got.Application.DecisionComments)
	assert.Contains(t, *got.Application.DecisionComments, "remaining 2, requested 8")

	_, err = svc.Decide(ctx, companyID.String(), approver.ID.String(), first.Application.ID, approve)
	assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))

	balance, err := balances.Balance(ctx, domain.LeaveKey{
		CompanyID:  companyID.String(),
		EmployeeID: applicant.ID.String(),
		LeaveType:  "Annual Leave",
	}, year)
	require.NoError(t, err)
	assert.Equal(t, "8", balance.Taken.String())
	assert.Equal(t, "2", balance.Remaining.String())

	detail, err := svc.GetByID(ctx, companyID.String(), second.Application.ID)
	require.NoError(t, err)
	require.Len(t, detail.Actions, 2)
	assert.Equal(t, leave.ActionSubmit, detail.Actions[0].Action)
	assert.Equal(t, leave.ActionAutoReject, detail.Actions[1].Action)

	pending, err := outbox.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 4)

	_, err = svc.Submit(ctx, companyID.String(), applicant.ID.String(), leave.SubmitLeaveRequest{
		LeaveType: "Annual Leave",
		StartDate: fmt.Sprintf("%d-03-05", year),
		EndDate:   fmt.Sprintf("%d-03-06", year),
		Reason:    "overlaps the approved trip",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)

	unpaid, err := svc.Submit(ctx, companyID.String(), applicant.ID.String(), leave.SubmitLeaveRequest{
		LeaveType: "Unpaid Leave",
		StartDate: fmt.Sprintf("%d-05-04", year),
		EndDate:   fmt.Sprintf("%d-05-06", year),
		Reason:    "family matter",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, unpaid.Warning)

	got, err = svc.Decide(ctx, companyID.String(), approver.ID.String(), unpaid.Application.ID, approve)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusApproved, got.Application.Status)
	assert.False(t, got.AutoRejected)
	assert.Equal(t, "-3", got.Balance)

	unpaidBalance, err := balances.Balance(ctx, domain.LeaveKey{
		CompanyID:  companyID.String(),
		EmployeeID: applicant.ID.String(),
		LeaveType:  "Unpaid Leave",
	}, year)
	require.NoError(t, err)
	assert.Equal(t, "-3", unpaidBalance.Remaining.String())

	// The annual leave balance is untouched by the overdraft type.
	balance, err = balances.Balance(ctx, domain.LeaveKey{
		CompanyID:  companyID.String(),
		EmployeeID: applicant.ID.String(),
		LeaveType:  "Annual Leave",
	}, year)
	require.NoError(t, err)
	assert.Equal(t, "2", balance.Remaining.String())
}
