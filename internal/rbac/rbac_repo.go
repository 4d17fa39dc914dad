package rbac

import (
	"context"

	"go-hris-leave/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error)

	ListRoles(ctx context.Context, companyID string) ([]Role, error)
	FindRole(ctx context.Context, companyID, id string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	AssignRole(ctx context.Context, row *EmployeeRole) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	CountPermissions(ctx context.Context, ids []uuid.UUID) (int64, error)
	// ReplaceRolePermissions swaps the role's grants in one transaction.
	ReplaceRolePermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error
	// SeedPermissions inserts the permissions that do not exist yet.
	SeedPermissions(ctx context.Context, perms []Permission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Scopes(tenant.ScopeTable("roles", companyID)).
		Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scopes(tenant.ScopeTable("roles", companyID)).
		Scan(&result).Error
	return result, err
}

func (r *repository) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) FindRole(ctx context.Context, companyID, id string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) AssignRole(ctx context.Context, row *EmployeeRole) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) CountPermissions(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Permission{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&RolePermission{}).Error; err != nil {
			return err
		}
		if len(permissionIDs) == 0 {
			return nil
		}
		rows := make([]RolePermission, 0, len(permissionIDs))
		for _, id := range permissionIDs {
			rows = append(rows, RolePermission{RoleID: roleID, PermissionID: id})
		}
		return tx.Create(&rows).Error
	})
}

func (r *repository) SeedPermissions(ctx context.Context, perms []Permission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource"}, {Name: "action"}},
			DoNothing: true,
		}).
		Create(&perms).Error
}
