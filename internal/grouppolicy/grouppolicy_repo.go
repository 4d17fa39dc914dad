package grouppolicy

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=grouppolicy_repo.go -destination=mock/grouppolicy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, s *GroupPolicySetting) error
	Delete(ctx context.Context, companyID, leaveType, role string) (int64, error)
	Exists(ctx context.Context, companyID, leaveType, role string) (bool, error)
	// List returns the company's settings, optionally narrowed to one leave type.
	List(ctx context.Context, companyID, leaveType string) ([]GroupPolicySetting, error)
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

func (r *repository) Create(ctx context.Context, s *GroupPolicySetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Delete(ctx context.Context, companyID, leaveType, role string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("leave_type = ? AND role = ?", leaveType, role).
		Delete(&GroupPolicySetting{})
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, companyID, leaveType, role string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&GroupPolicySetting{}).
		Scopes(tenant.Scope(companyID)).
		Where("leave_type = ? AND role = ?", leaveType, role).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) List(ctx context.Context, companyID, leaveType string) ([]GroupPolicySetting, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if leaveType != "" {
		q = q.Where("leave_type = ?", leaveType)
	}

	var list []GroupPolicySetting
	err := q.Order("leave_type ASC, role ASC").Find(&list).Error
	return list, err
}
