package summary

import (
	"context"
	"time"

	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
)

// StatusCount is the number of applications per employee, leave type and status.
type StatusCount struct {
	EmployeeID   string
	LeaveType    string
	Status       string
	Applications int64
}

//go:generate mockgen -source=summary_repo.go -destination=mock/summary_repo_mock.go -package=mock
type Repository interface {
	// CountApplications groups the applications starting in [from, to).
	// An empty employeeID counts the whole company.
	CountApplications(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountApplications(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]StatusCount, error) {
	q := r.db.WithContext(ctx).
		Table("leave_applications").
		Select("employee_id, leave_type, status, COUNT(*) AS applications").
		Scopes(tenant.Scope(companyID)).
		Where("start_date >= ? AND start_date < ?", from, to)
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var rows []StatusCount
	err := q.Group("employee_id, leave_type, status").Scan(&rows).Error
	return rows, err
}
