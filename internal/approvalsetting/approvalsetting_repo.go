package approvalsetting

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=approvalsetting_repo.go -destination=mock/approvalsetting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, s *ApprovalSetting) error
	Find(ctx context.Context, companyID, leaveType string) (*ApprovalSetting, error)
	List(ctx context.Context, companyID string) ([]ApprovalSetting, error)
	Delete(ctx context.Context, companyID, leaveType string) (int64, error)
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

func (r *repository) Upsert(ctx context.Context, s *ApprovalSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "leave_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_level_approver_id",
				"second_level_approver_id",
				"updated_by",
				"updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) Find(ctx context.Context, companyID, leaveType string) (*ApprovalSetting, error) {
	var s ApprovalSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("leave_type = ?", leaveType).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context, companyID string) ([]ApprovalSetting, error) {
	var list []ApprovalSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("leave_type ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) Delete(ctx context.Context, companyID, leaveType string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("leave_type = ?", leaveType).
		Delete(&ApprovalSetting{})
	return res.RowsAffected, res.Error
}
