package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	Status     string
	EmployeeID string
	LeaveType  string
	From, To   time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *LeaveApplication) error
	FindByID(ctx context.Context, companyID, id string) (*LeaveApplication, error)
	LockByID(ctx context.Context, companyID, id string) (*LeaveApplication, error)
	// SaveDecision writes the terminal status only while the row is still
	// Pending and reports how many rows changed.
	SaveDecision(ctx context.Context, a *LeaveApplication) (int64, error)
	List(ctx context.Context, companyID string, f Filter) ([]LeaveApplication, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error)

	CreateAction(ctx context.Context, a *LeaveApplicationAction) error
	ListActions(ctx context.Context, applicationID string) ([]LeaveApplicationAction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, a *LeaveApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*LeaveApplication, error) {
	var a LeaveApplication
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) LockByID(ctx context.Context, companyID, id string) (*LeaveApplication, error) {
	var a LeaveApplication
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) SaveDecision(ctx context.Context, a *LeaveApplication) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Where("id = ? AND status = ?", a.ID, domain.LeaveStatusPending).
		Updates(map[string]any{
			"status":            a.Status,
			"decided_by":        a.DecidedBy,
			"decided_at":        a.DecidedAt,
			"decision_comments": a.DecisionComments,
			"updated_at":        a.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) List(ctx context.Context, companyID string, f Filter) ([]LeaveApplication, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.LeaveType != "" {
		q = q.Where("leave_type = ?", f.LeaveType)
	}
	if !f.From.IsZero() {
		q = q.Where("start_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("start_date < ?", f.To)
	}

	var list []LeaveApplication
	err := q.Order("applied_date DESC").Find(&list).Error
	return list, err
}

// HasOverlappingPeriod ignores rejected applications.
func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", domain.LeaveStatusRejected).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAction(ctx context.Context, a *LeaveApplicationAction) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ListActions(ctx context.Context, applicationID string) ([]LeaveApplicationAction, error) {
	var list []LeaveApplicationAction
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
