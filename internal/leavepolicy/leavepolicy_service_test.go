package leavepolicy_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-hris-leave/internal/leavepolicy"
	leavepolicyerrors "go-hris-leave/internal/leavepolicy/errors"
	leavepolicyMock "go-hris-leave/internal/leavepolicy/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     leavepolicy.Service
	repo        *leavepolicyMock.MockRepository
	invalidator *leavepolicyMock.MockEligibilityInvalidator
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := leavepolicyMock.NewMockRepository(ctrl)
	invalidator := leavepolicyMock.NewMockEligibilityInvalidator(ctrl)

	svc := leavepolicy.NewService(db, repo, invalidator)

	return &serviceDeps{
		db:          db,
		sqlMock:     sqlMock,
		service:     svc,
		repo:        repo,
		invalidator: invalidator,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func boolPtr(v bool) *bool { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestLeavePolicyService_CreateSystemPolicy(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success defaults to enabled", func(t *testing.T) {
		req := leavepolicy.CreateSystemPolicyRequest{LeaveType: " Annual Leave ", DefaultEntitlementDays: 14}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Annual Leave").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateSystemPolicy(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *leavepolicy.SystemLeavePolicy) error {
				assert.Equal(t, "Annual Leave", p.LeaveType)
				assert.True(t, p.IsEnabled)
				assert.True(t, p.DefaultEntitlementDays.Equal(decimal.NewFromInt(14)))
				return nil
			})

		resp, err := deps.service.CreateSystemPolicy(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Annual Leave", resp.LeaveType)
		assert.Equal(t, "14", resp.DefaultEntitlementDays)
		assert.True(t, resp.IsEnabled)
	})

	t.Run("duplicate leave type -> conflict", func(t *testing.T) {
		req := leavepolicy.CreateSystemPolicyRequest{LeaveType: "Annual Leave", DefaultEntitlementDays: 14}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Annual Leave").
			Return(&leavepolicy.SystemLeavePolicy{ID: uuid.New(), LeaveType: "Annual Leave"}, nil)

		_, err := deps.service.CreateSystemPolicy(ctx, req)

		assert.ErrorIs(t, err, leavepolicyerrors.ErrLeaveTypeExists)
	})

	t.Run("unique index race -> conflict", func(t *testing.T) {
		req := leavepolicy.CreateSystemPolicyRequest{LeaveType: "Sick Leave", DefaultEntitlementDays: 10}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Sick Leave").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateSystemPolicy(ctx, gomock.Any()).
			Return(gorm.ErrDuplicatedKey)

		_, err := deps.service.CreateSystemPolicy(ctx, req)

		assert.ErrorIs(t, err, leavepolicyerrors.ErrLeaveTypeExists)
	})

	t.Run("negative entitlement", func(t *testing.T) {
		_, err := deps.service.CreateSystemPolicy(ctx, leavepolicy.CreateSystemPolicyRequest{
			LeaveType:              "Annual Leave",
			DefaultEntitlementDays: -1,
		})

		assert.ErrorIs(t, err, leavepolicyerrors.ErrNegativeEntitlement)
	})

	t.Run("blank leave type", func(t *testing.T) {
		_, err := deps.service.CreateSystemPolicy(ctx, leavepolicy.CreateSystemPolicyRequest{LeaveType: "   "})

		assert.ErrorIs(t, err, leavepolicyerrors.ErrLeaveTypeRequired)
	})
}

func TestLeavePolicyService_DisableSystemPolicy(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("disabling invalidates every company using the type", func(t *testing.T) {
		id := uuid.New()
		companyA := uuid.New().String()
		companyB := uuid.New().String()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByID(ctx, id.String()).
			Return(&leavepolicy.SystemLeavePolicy{ID: id, LeaveType: "Annual Leave", IsEnabled: true}, nil)
		deps.repo.EXPECT().
			UpdateSystemPolicy(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *leavepolicy.SystemLeavePolicy) error {
				assert.False(t, p.IsEnabled)
				return nil
			})
		deps.repo.EXPECT().
			ListCompanyIDsUsingType(ctx, "Annual Leave").
			Return([]string{companyA, companyB}, nil)
		deps.invalidator.EXPECT().
			Invalidate(ctx, companyA, companyB).
			Return(nil)

		resp, err := deps.service.DisableSystemPolicy(ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsEnabled)
	})

	t.Run("already disabled skips invalidation", func(t *testing.T) {
		id := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByID(ctx, id.String()).
			Return(&leavepolicy.SystemLeavePolicy{ID: id, LeaveType: "Unpaid Leave", IsEnabled: false}, nil)
		deps.repo.EXPECT().UpdateSystemPolicy(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.DisableSystemPolicy(ctx, id.String())

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.DisableSystemPolicy(ctx, id)

		assert.ErrorIs(t, err, leavepolicyerrors.ErrSystemPolicyNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := deps.service.DisableSystemPolicy(ctx, "nope")

		assert.ErrorIs(t, err, leavepolicyerrors.ErrInvalidPolicyID)
	})
}

func TestLeavePolicyService_UpdateSystemPolicy(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	id := uuid.New()

	t.Run("changes days without touching enabled flag", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByID(ctx, id.String()).
			Return(&leavepolicy.SystemLeavePolicy{
				ID:                     id,
				LeaveType:              "Annual Leave",
				DefaultEntitlementDays: decimal.NewFromInt(12),
				IsEnabled:              true,
			}, nil)
		deps.repo.EXPECT().UpdateSystemPolicy(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.UpdateSystemPolicy(ctx, id.String(), leavepolicy.UpdateSystemPolicyRequest{
			DefaultEntitlementDays: floatPtr(14.5),
		})

		assert.NoError(t, err)
		assert.Equal(t, "14.5", resp.DefaultEntitlementDays)
		assert.True(t, resp.IsEnabled)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByID(ctx, id.String()).
			Return(&leavepolicy.SystemLeavePolicy{ID: id, LeaveType: "Annual Leave", IsEnabled: true}, nil)
		deps.repo.EXPECT().UpdateSystemPolicy(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.UpdateSystemPolicy(ctx, id.String(), leavepolicy.UpdateSystemPolicyRequest{
			Remarks: new(string),
		})

		assert.Error(t, err)
	})
}

func TestLeavePolicyService_ActivateForCompany(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("falls back to system default days", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Annual Leave").
			Return(&leavepolicy.SystemLeavePolicy{
				LeaveType:              "Annual Leave",
				DefaultEntitlementDays: decimal.NewFromInt(12),
				IsEnabled:              true,
			}, nil)
		var saved leavepolicy.CompanyLeaveType
		deps.repo.EXPECT().
			UpsertCompanyType(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *leavepolicy.CompanyLeaveType) error {
				assert.Equal(t, companyID, row.CompanyID.String())
				assert.True(t, row.EntitlementDays.Equal(decimal.NewFromInt(12)))
				assert.True(t, row.Enabled)
				assert.Nil(t, row.CarryForwardCap)
				saved = *row
				return nil
			})
		deps.repo.EXPECT().
			FindCompanyType(ctx, companyID, "Annual Leave").
			DoAndReturn(func(ctx context.Context, companyID, leaveType string) (*leavepolicy.CompanyLeaveType, error) {
				return &saved, nil
			})
		deps.invalidator.EXPECT().Invalidate(ctx, companyID).Return(nil)

		resp, err := deps.service.ActivateForCompany(ctx, companyID, leavepolicy.ActivateCompanyTypeRequest{
			LeaveType: "Annual Leave",
		})

		assert.NoError(t, err)
		assert.Equal(t, "12", resp.EntitlementDays)
		assert.True(t, resp.Active)
	})

	t.Run("company override and carry cap", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Annual Leave").
			Return(&leavepolicy.SystemLeavePolicy{
				LeaveType:              "Annual Leave",
				DefaultEntitlementDays: decimal.NewFromInt(12),
				IsEnabled:              true,
			}, nil)
		var saved leavepolicy.CompanyLeaveType
		deps.repo.EXPECT().
			UpsertCompanyType(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *leavepolicy.CompanyLeaveType) error {
				saved = *row
				return nil
			})
		deps.repo.EXPECT().
			FindCompanyType(ctx, companyID, "Annual Leave").
			DoAndReturn(func(ctx context.Context, companyID, leaveType string) (*leavepolicy.CompanyLeaveType, error) {
				return &saved, nil
			})
		deps.invalidator.EXPECT().Invalidate(ctx, companyID).Return(errors.New("redis down"))

		resp, err := deps.service.ActivateForCompany(ctx, companyID, leavepolicy.ActivateCompanyTypeRequest{
			LeaveType:       "Annual Leave",
			EntitlementDays: floatPtr(14),
			CarryForwardCap: floatPtr(5),
			AllowOverdraft:  true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "14", resp.EntitlementDays)
		if assert.NotNil(t, resp.CarryForwardCap) {
			assert.Equal(t, "5", *resp.CarryForwardCap)
		}
		assert.True(t, resp.AllowOverdraft)
	})

	t.Run("disabled system policy cannot be activated", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Unpaid Leave").
			Return(&leavepolicy.SystemLeavePolicy{LeaveType: "Unpaid Leave", IsEnabled: false}, nil)

		_, err := deps.service.ActivateForCompany(ctx, companyID, leavepolicy.ActivateCompanyTypeRequest{
			LeaveType: "Unpaid Leave",
			Enabled:   boolPtr(true),
		})

		assert.ErrorIs(t, err, leavepolicyerrors.ErrSystemPolicyDisabled)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Moon Leave").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ActivateForCompany(ctx, companyID, leavepolicy.ActivateCompanyTypeRequest{LeaveType: "Moon Leave"})

		assert.ErrorIs(t, err, leavepolicyerrors.ErrSystemPolicyNotFound)
	})

	t.Run("invalid company id", func(t *testing.T) {
		_, err := deps.service.ActivateForCompany(ctx, "bad", leavepolicy.ActivateCompanyTypeRequest{LeaveType: "Annual Leave"})

		assert.ErrorIs(t, err, leavepolicyerrors.ErrInvalidCompanyID)
	})
}

func TestLeavePolicyService_ListActiveCompanyTypes(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New()

	deps.repo.EXPECT().
		ListCompanyTypes(ctx, companyID.String()).
		Return([]leavepolicy.CompanyLeaveType{
			{ID: uuid.New(), CompanyID: companyID, LeaveType: "Annual Leave", Enabled: true},
			{ID: uuid.New(), CompanyID: companyID, LeaveType: "Sick Leave", Enabled: false},
			{ID: uuid.New(), CompanyID: companyID, LeaveType: "Study Leave", Enabled: true},
		}, nil)
	deps.repo.EXPECT().
		ListSystemPolicies(ctx).
		Return([]leavepolicy.SystemLeavePolicy{
			{LeaveType: "Annual Leave", IsEnabled: true},
			{LeaveType: "Sick Leave", IsEnabled: true},
			{LeaveType: "Study Leave", IsEnabled: false},
		}, nil)

	resp, err := deps.service.ListActiveCompanyTypes(ctx, companyID.String())

	assert.NoError(t, err)
	if assert.Len(t, resp, 1) {
		assert.Equal(t, "Annual Leave", resp[0].LeaveType)
	}
}

func TestLeavePolicyService_CompanyTypeState(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("never activated", func(t *testing.T) {
		deps.repo.EXPECT().
			FindCompanyType(ctx, companyID, "Annual Leave").
			Return(nil, gorm.ErrRecordNotFound)

		state, ok, err := deps.service.CompanyTypeState(ctx, companyID, "Annual Leave")

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, state.Enabled)
	})

	t.Run("system disable wins over company enable", func(t *testing.T) {
		deps.repo.EXPECT().
			FindCompanyType(ctx, companyID, "Annual Leave").
			Return(&leavepolicy.CompanyLeaveType{LeaveType: "Annual Leave", Enabled: true, EntitlementDays: decimal.NewFromInt(14)}, nil)
		deps.repo.EXPECT().
			FindSystemPolicyByType(ctx, "Annual Leave").
			Return(&leavepolicy.SystemLeavePolicy{LeaveType: "Annual Leave", IsEnabled: false}, nil)

		state, ok, err := deps.service.CompanyTypeState(ctx, companyID, "Annual Leave")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, state.Enabled)
		assert.True(t, state.EntitlementDays.Equal(decimal.NewFromInt(14)))
	})
}
