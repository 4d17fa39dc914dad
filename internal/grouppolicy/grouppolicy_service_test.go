package grouppolicy_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hris-leave/internal/employee"
	employeeMock "go-hris-leave/internal/employee/mock"
	"go-hris-leave/internal/grouppolicy"
	grouppolicyerrors "go-hris-leave/internal/grouppolicy/errors"
	grouppolicyMock "go-hris-leave/internal/grouppolicy/mock"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/shared/testdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ttl = 5 * time.Minute

type serviceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	service      grouppolicy.Service
	repo         *grouppolicyMock.MockRepository
	types        *grouppolicyMock.MockCompanyTypeSource
	restrictions *grouppolicyMock.MockRestrictionReader
	directory    *employeeMock.MockDirectory
	redismock    redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := grouppolicyMock.NewMockRepository(ctrl)
	types := grouppolicyMock.NewMockCompanyTypeSource(ctrl)
	restrictions := grouppolicyMock.NewMockRestrictionReader(ctrl)
	directory := employeeMock.NewMockDirectory(ctrl)

	svc := grouppolicy.NewService(db, repo, types, restrictions, directory, dbRedis, ttl)

	return &serviceDeps{
		db:           db,
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		types:        types,
		restrictions: restrictions,
		directory:    directory,
		redismock:    redisMock,
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

func snapshotJSON(t *testing.T, types map[string]bool, roles map[string][]string) string {
	t.Helper()
	if roles == nil {
		roles = map[string][]string{}
	}
	b, err := json.Marshal(map[string]any{"company_types": types, "roles": roles})
	require.NoError(t, err)
	return string(b)
}

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		role    string
		want    bool
	}{
		{"empty list admits any role", nil, "Staff", true},
		{"empty list admits empty role", []string{}, "", true},
		{"listed role", []string{"Manager", "Staff"}, "Staff", true},
		{"unlisted role", []string{"Manager"}, "Staff", false},
		{"match is exact", []string{"Manager"}, "manager", false},
		{"empty role against closed list", []string{"Manager"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grouppolicy.RoleAllowed(tt.allowed, tt.role))
		})
	}
}

func TestGroupPolicyService_IsRoleAllowed(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	genKey := grouppolicy.GetEligibilityGenerationKey(companyID)

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(genKey).RedisNil()
		deps.redismock.ExpectGet(grouppolicy.GetEligibilitySnapshotKey(companyID, 0)).SetVal(snapshotJSON(t,
			map[string]bool{"Annual Leave": true},
			map[string][]string{"Annual Leave": {"Manager"}},
		))

		ok, err := deps.service.IsRoleAllowed(ctx, companyID, "Annual Leave", "Staff")

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores the snapshot", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := grouppolicy.GetEligibilitySnapshotKey(companyID, 2)
		deps.redismock.ExpectGet(genKey).SetVal("2")
		deps.redismock.ExpectGet(key).RedisNil()
		deps.types.EXPECT().
			CompanyTypeStates(gomock.Any(), companyID).
			Return([]leavepolicy.CompanyTypeState{
				{LeaveType: "Annual Leave", EntitlementDays: decimal.NewFromInt(14), Enabled: true},
			}, nil)
		deps.repo.EXPECT().
			List(gomock.Any(), companyID, "").
			Return(nil, nil)
		deps.redismock.ExpectSet(key, []byte(snapshotJSON(t, map[string]bool{"Annual Leave": true}, nil)), ttl).SetVal("OK")

		ok, err := deps.service.IsRoleAllowed(ctx, companyID, "Annual Leave", "Staff")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("invalidation during rebuild retires the written snapshot", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		states := []leavepolicy.CompanyTypeState{
			{LeaveType: "Annual Leave", EntitlementDays: decimal.NewFromInt(14), Enabled: true},
		}
		stale := grouppolicy.GetEligibilitySnapshotKey(companyID, 4)
		fresh := grouppolicy.GetEligibilitySnapshotKey(companyID, 5)

		deps.redismock.ExpectGet(genKey).SetVal("4")
		deps.redismock.ExpectGet(stale).RedisNil()
		deps.types.EXPECT().CompanyTypeStates(gomock.Any(), companyID).Return(states, nil).Times(2)
		gomock.InOrder(
			deps.repo.EXPECT().
				List(gomock.Any(), companyID, "").
				DoAndReturn(func(ctx context.Context, _, _ string) ([]grouppolicy.GroupPolicySetting, error) {
					// A Manager-only setting commits after this read.
					require.NoError(t, deps.service.Invalidate(ctx, companyID))
					return nil, nil
				}),
			deps.repo.EXPECT().
				List(gomock.Any(), companyID, "").
				Return([]grouppolicy.GroupPolicySetting{{LeaveType: "Annual Leave", Role: "Manager"}}, nil),
		)
		deps.redismock.ExpectIncr(genKey).SetVal(5)
		deps.redismock.ExpectSet(stale, []byte(snapshotJSON(t, map[string]bool{"Annual Leave": true}, nil)), ttl).SetVal("OK")
		deps.redismock.ExpectGet(genKey).SetVal("5")
		deps.redismock.ExpectGet(fresh).RedisNil()
		deps.redismock.ExpectSet(fresh, []byte(snapshotJSON(t,
			map[string]bool{"Annual Leave": true},
			map[string][]string{"Annual Leave": {"Manager"}},
		)), ttl).SetVal("OK")

		ok, err := deps.service.IsRoleAllowed(ctx, companyID, "Annual Leave", "Staff")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = deps.service.IsRoleAllowed(ctx, companyID, "Annual Leave", "Staff")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestGroupPolicyService_Eligibility(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New()
	emp := &employee.Employee{ID: uuid.New(), CompanyID: companyID, FullName: "Ana", Designation: "Staff"}

	deps.directory.EXPECT().
		FindByID(ctx, companyID.String(), emp.ID.String()).
		Return(emp, nil)
	deps.redismock.ExpectGet(grouppolicy.GetEligibilityGenerationKey(companyID.String())).RedisNil()
	deps.redismock.ExpectGet(grouppolicy.GetEligibilitySnapshotKey(companyID.String(), 0)).SetVal(snapshotJSON(t,
		map[string]bool{"Annual Leave": true, "Sick Leave": false, "Study Leave": true, "Medical Leave": true},
		map[string][]string{"Study Leave": {"Manager"}},
	))
	deps.restrictions.EXPECT().
		ExcludedLeaveTypes(ctx, companyID.String(), emp.ID.String()).
		Return([]string{"Medical Leave"}, nil)

	got, err := deps.service.Eligibility(ctx, companyID.String(), emp.ID.String())

	require.NoError(t, err)
	assert.Equal(t, []grouppolicy.EligibilityResponse{
		{LeaveType: "Annual Leave", Accessible: true},
		{LeaveType: "Medical Leave", Reason: grouppolicyerrors.ErrPolicyRestricted.Message},
		{LeaveType: "Sick Leave", Reason: grouppolicyerrors.ErrTypeNotEnabled.Message},
		{LeaveType: "Study Leave", Reason: grouppolicyerrors.ErrRoleNotPermitted.Message},
	}, got)
}

func TestGroupPolicyService_AddSetting(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("duplicate role -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Exists(ctx, companyID, "Annual Leave", "Manager").
			Return(true, nil)

		_, err := deps.service.AddSetting(ctx, companyID, uuid.New().String(), grouppolicy.AddSettingRequest{
			LeaveType: "Annual Leave",
			Role:      "Manager",
		})

		assert.ErrorIs(t, err, grouppolicyerrors.ErrSettingExists)
	})

	t.Run("success invalidates the company snapshot", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Exists(ctx, companyID, "Annual Leave", "Manager").
			Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *grouppolicy.GroupPolicySetting) error {
				assert.Equal(t, "Manager", s.Role)
				assert.Equal(t, companyID, s.CompanyID.String())
				return nil
			})
		deps.redismock.ExpectIncr(grouppolicy.GetEligibilityGenerationKey(companyID)).SetVal(1)

		resp, err := deps.service.AddSetting(ctx, companyID, uuid.New().String(), grouppolicy.AddSettingRequest{
			LeaveType: " Annual Leave ",
			Role:      "Manager",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Annual Leave", resp.LeaveType)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestGroupPolicyService_RemoveSetting(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("missing row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Delete(ctx, companyID, "Annual Leave", "Manager").
			Return(int64(0), nil)

		err := deps.service.RemoveSetting(ctx, companyID, "Annual Leave", "Manager")

		assert.ErrorIs(t, err, grouppolicyerrors.ErrSettingNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Delete(ctx, companyID, "Annual Leave", "Manager").
			Return(int64(1), nil)
		deps.redismock.ExpectIncr(grouppolicy.GetEligibilityGenerationKey(companyID)).SetVal(1)

		err := deps.service.RemoveSetting(ctx, companyID, "Annual Leave", "Manager")

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestGroupPolicyService_InvalidateMany(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	a, b := uuid.New().String(), uuid.New().String()
	deps.redismock.ExpectIncr(grouppolicy.GetEligibilityGenerationKey(a)).SetVal(3)
	deps.redismock.ExpectIncr(grouppolicy.GetEligibilityGenerationKey(b)).SetVal(1)

	err := deps.service.Invalidate(context.Background(), a, b)

	assert.NoError(t, err)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

// Annual Leave enabled at 14 days with no settings is open to Staff; adding
// a Manager-only setting closes it to Staff until Staff is added too.
func TestGroupPolicyService_AnnualLeaveScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gdb := testdb.Open(t, &grouppolicy.GroupPolicySetting{})
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	companyID := uuid.New()
	staff := employee.Employee{ID: uuid.New(), CompanyID: companyID, Designation: "Staff"}

	types := grouppolicyMock.NewMockCompanyTypeSource(ctrl)
	types.EXPECT().
		CompanyTypeStates(gomock.Any(), companyID.String()).
		Return([]leavepolicy.CompanyTypeState{
			{LeaveType: "Annual Leave", EntitlementDays: decimal.NewFromInt(14), Enabled: true},
		}, nil).
		AnyTimes()
	restrictions := grouppolicyMock.NewMockRestrictionReader(ctrl)
	restrictions.EXPECT().
		ExcludedLeaveTypes(gomock.Any(), companyID.String(), staff.ID.String()).
		Return(nil, nil).
		AnyTimes()

	svc := grouppolicy.NewService(sqlDB, grouppolicy.NewRepository(gdb), types, restrictions, nil, nil, ttl)

	assert.NoError(t, svc.CheckAccess(ctx, staff, "Annual Leave"))

	_, err = svc.AddSetting(ctx, companyID.String(), "", grouppolicy.AddSettingRequest{LeaveType: "Annual Leave", Role: "Manager"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.CheckAccess(ctx, staff, "Annual Leave"), grouppolicyerrors.ErrRoleNotPermitted)

	_, err = svc.AddSetting(ctx, companyID.String(), "", grouppolicy.AddSettingRequest{LeaveType: "Annual Leave", Role: "Manager"})
	assert.ErrorIs(t, err, grouppolicyerrors.ErrSettingExists)

	_, err = svc.AddSetting(ctx, companyID.String(), "", grouppolicy.AddSettingRequest{LeaveType: "Annual Leave", Role: "Staff"})
	require.NoError(t, err)
	assert.NoError(t, svc.CheckAccess(ctx, staff, "Annual Leave"))

	// Removing Staff closes it again: Manager still keeps the list non-empty.
	require.NoError(t, svc.RemoveSetting(ctx, companyID.String(), "Annual Leave", "Staff"))
	assert.ErrorIs(t, svc.CheckAccess(ctx, staff, "Annual Leave"), grouppolicyerrors.ErrRoleNotPermitted)

	require.NoError(t, svc.RemoveSetting(ctx, companyID.String(), "Annual Leave", "Manager"))
	assert.NoError(t, svc.CheckAccess(ctx, staff, "Annual Leave"))

	assert.ErrorIs(t, svc.CheckAccess(ctx, staff, "Unpaid Leave"), grouppolicyerrors.ErrTypeNotEnabled)
}
