package summary_test

import (
	"context"
	"testing"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/leave"
	"go-hris-leave/internal/shared/daycount"
	"go-hris-leave/internal/shared/testdb"
	"go-hris-leave/internal/summary"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRepository_CountApplications(t *testing.T) {
	ctx := context.Background()
	gdb := testdb.Open(t, &leave.LeaveApplication{})
	repo := summary.NewRepository(gdb)

	companyID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	add := func(employeeID uuid.UUID, start, status string) {
		d, err := daycount.ParseDate(start)
		require.NoError(t, err)
		require.NoError(t, gdb.Create(&leave.LeaveApplication{
			ID:          uuid.New(),
			CompanyID:   companyID,
			ReferenceNo: uuid.NewString(),
			EmployeeID:  employeeID,
			LeaveType:   "Annual Leave",
			StartDate:   d,
			EndDate:     d,
			TotalDays:   decimal.NewFromInt(1),
			Status:      status,
			AppliedDate: time.Now().UTC(),
		}).Error)
	}
	add(alice, "2025-01-01", domain.LeaveStatusApproved)
	add(alice, "2025-06-10", domain.LeaveStatusApproved)
	add(alice, "2025-07-01", domain.LeaveStatusPending)
	add(bob, "2025-12-31", domain.LeaveStatusRejected)
	add(bob, "2026-01-01", domain.LeaveStatusApproved)

	from, to := daycount.YearBounds(2025)

	all, err := repo.CountApplications(ctx, companyID.String(), "", from, to)
	require.NoError(t, err)
	total := int64(0)
	for _, c := range all {
		total += c.Applications
	}
	assert.Equal(t, int64(4), total)

	mine, err := repo.CountApplications(ctx, companyID.String(), alice.String(), from, to)
	require.NoError(t, err)
	got := map[string]int64{}
	for _, c := range mine {
		got[c.Status] = c.Applications
	}
	assert.Equal(t, map[string]int64{
		domain.LeaveStatusApproved: 2,
		domain.LeaveStatusPending:  1,
	}, got)

	other, err := repo.CountApplications(ctx, uuid.NewString(), "", from, to)
	require.NoError(t, err)
	assert.Empty(t, other)
}
