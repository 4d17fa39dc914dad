package employee

import (
	"context"
	"errors"
	employeeerrors "go-hris-leave/internal/employee/errors"
	"go-hris-leave/internal/tenant"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the slice of the employee record the leave engine reads.
// The table is owned by the employee service; this package never writes it.
type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index"`
	FullName    string
	Email       string
	Designation string `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string { return "employees" }

// Role is the value group policies are matched against.
func (e Employee) Role() string { return e.Designation }

//go:generate mockgen -source=employee_directory.go -destination=mock/employee_directory_mock.go -package=mock
type Directory interface {
	FindByID(ctx context.Context, companyID, id string) (*Employee, error)
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)
}

type directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (d *directory) FindByID(ctx context.Context, companyID, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	var e Employee
	err := d.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (d *directory) ListByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var list []Employee
	err := d.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("full_name ASC").
		Find(&list).Error
	return list, err
}
