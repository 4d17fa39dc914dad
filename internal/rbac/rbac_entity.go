package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_role_name"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex:uq_role_name"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Resource string    `gorm:"type:varchar(50);uniqueIndex:uq_permission"`
	Action   string    `gorm:"type:varchar(20);uniqueIndex:uq_permission"`
	Label    string
	Category string
}

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

type EmployeeRole struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// EmployeeRoleRow and RolePermissionRow are the casbin policy lines.
type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}
