package leavepolicy

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavepolicy_repo.go -destination=mock/leavepolicy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateSystemPolicy(ctx context.Context, p *SystemLeavePolicy) error
	UpdateSystemPolicy(ctx context.Context, p *SystemLeavePolicy) error
	FindSystemPolicyByID(ctx context.Context, id string) (*SystemLeavePolicy, error)
	FindSystemPolicyByType(ctx context.Context, leaveType string) (*SystemLeavePolicy, error)
	ListSystemPolicies(ctx context.Context) ([]SystemLeavePolicy, error)

	UpsertCompanyType(ctx context.Context, t *CompanyLeaveType) error
	FindCompanyType(ctx context.Context, companyID, leaveType string) (*CompanyLeaveType, error)
	ListCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveType, error)
	ListCompanyIDsUsingType(ctx context.Context, leaveType string) ([]string, error)
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

func (r *repository) CreateSystemPolicy(ctx context.Context, p *SystemLeavePolicy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdateSystemPolicy(ctx context.Context, p *SystemLeavePolicy) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select("default_entitlement_days", "is_enabled", "remarks", "updated_at").
		Updates(p).Error
}

func (r *repository) FindSystemPolicyByID(ctx context.Context, id string) (*SystemLeavePolicy, error) {
	var p SystemLeavePolicy
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindSystemPolicyByType(ctx context.Context, leaveType string) (*SystemLeavePolicy, error) {
	var p SystemLeavePolicy
	err := r.db.WithContext(ctx).First(&p, "leave_type = ?", leaveType).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListSystemPolicies(ctx context.Context) ([]SystemLeavePolicy, error) {
	var list []SystemLeavePolicy
	err := r.db.WithContext(ctx).Order("leave_type ASC").Find(&list).Error
	return list, err
}

// UpsertCompanyType inserts or refreshes the company's activation row keyed
// by (company_id, leave_type).
func (r *repository) UpsertCompanyType(ctx context.Context, t *CompanyLeaveType) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "leave_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"entitlement_days", "enabled", "allow_overdraft", "carry_forward_cap", "updated_at",
			}),
		}).
		Create(t).Error
}

func (r *repository) FindCompanyType(ctx context.Context, companyID, leaveType string) (*CompanyLeaveType, error) {
	var t CompanyLeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "leave_type = ?", leaveType).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveType, error) {
	var list []CompanyLeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("leave_type ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListCompanyIDsUsingType(ctx context.Context, leaveType string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&CompanyLeaveType{}).
		Where("leave_type = ?", leaveType).
		Distinct().
		Pluck("company_id", &ids).Error
	return ids, err
}
