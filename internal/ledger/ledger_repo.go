package ledger

import (
	"context"
	"database/sql"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applicationsTable is owned by the leave workflow; the ledger only sums it.
const applicationsTable = "leave_applications"

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindPolicy(ctx context.Context, key domain.LeaveKey) (*EmployeeLeavePolicy, error)
	FindPolicyByID(ctx context.Context, companyID, id string) (*EmployeeLeavePolicy, error)
	// LockPolicy reads the row with SELECT ... FOR UPDATE.
	LockPolicy(ctx context.Context, key domain.LeaveKey) (*EmployeeLeavePolicy, error)
	LockPolicyByID(ctx context.Context, companyID, id string) (*EmployeeLeavePolicy, error)
	CreatePolicy(ctx context.Context, p *EmployeeLeavePolicy) error
	// EnsurePolicy inserts p unless the pair already has a row.
	EnsurePolicy(ctx context.Context, p *EmployeeLeavePolicy) error
	// SavePolicy writes the mutable columns if the stored version still equals
	// p.Version, then bumps p.Version.
	SavePolicy(ctx context.Context, p *EmployeeLeavePolicy) error
	DeletePolicy(ctx context.Context, companyID, id string) (int64, error)
	ListPoliciesByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeLeavePolicy, error)
	ListPoliciesByCompany(ctx context.Context, companyID string) ([]EmployeeLeavePolicy, error)
	ListExcludedTypes(ctx context.Context, companyID, employeeID string) ([]string, error)

	LatestActiveAdjustment(ctx context.Context, key domain.LeaveKey) (*IndividualLeaveAdjustment, error)
	SupersedeAdjustments(ctx context.Context, key domain.LeaveKey) error
	CreateAdjustment(ctx context.Context, a *IndividualLeaveAdjustment) error
	ListAdjustments(ctx context.Context, companyID, employeeID string) ([]IndividualLeaveAdjustment, error)

	// SumApprovedDays totals approved applications whose start date falls in [from, to).
	SumApprovedDays(ctx context.Context, key domain.LeaveKey, from, to time.Time) (decimal.Decimal, error)
	SumCarriedDays(ctx context.Context, key domain.LeaveKey, year int) (decimal.Decimal, error)
	UpsertCarryForward(ctx context.Context, r *CarryForwardRecord) error
	ListCarryForward(ctx context.Context, companyID string, year int) ([]CarryForwardRecord, error)
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

func pair(key domain.LeaveKey) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ? AND employee_id = ? AND leave_type = ?",
			key.CompanyID, key.EmployeeID, key.LeaveType)
	}
}

func (r *repository) FindPolicy(ctx context.Context, key domain.LeaveKey) (*EmployeeLeavePolicy, error) {
	var p EmployeeLeavePolicy
	if err := r.db.WithContext(ctx).Scopes(pair(key)).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindPolicyByID(ctx context.Context, companyID, id string) (*EmployeeLeavePolicy, error) {
	var p EmployeeLeavePolicy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) LockPolicy(ctx context.Context, key domain.LeaveKey) (*EmployeeLeavePolicy, error) {
	var p EmployeeLeavePolicy
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(pair(key)).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) LockPolicyByID(ctx context.Context, companyID, id string) (*EmployeeLeavePolicy, error) {
	var p EmployeeLeavePolicy
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) CreatePolicy(ctx context.Context, p *EmployeeLeavePolicy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) EnsurePolicy(ctx context.Context, p *EmployeeLeavePolicy) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "employee_id"}, {Name: "leave_type"}},
			DoNothing: true,
		}).
		Create(p).Error
}

func (r *repository) SavePolicy(ctx context.Context, p *EmployeeLeavePolicy) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&EmployeeLeavePolicy{}).
		Where("id = ? AND version = ?", p.ID, p.Version).
		Updates(map[string]any{
			"entitlement":  p.Entitlement,
			"balance":      p.Balance,
			"balance_year": p.BalanceYear,
			"remarks":      p.Remarks,
			"included":     p.Included,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrConcurrentModification
	}
	p.Version++
	p.UpdatedAt = now
	return nil
}

func (r *repository) DeletePolicy(ctx context.Context, companyID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&EmployeeLeavePolicy{})
	return res.RowsAffected, res.Error
}

func (r *repository) ListPoliciesByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeLeavePolicy, error) {
	var list []EmployeeLeavePolicy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("leave_type ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListPoliciesByCompany(ctx context.Context, companyID string) ([]EmployeeLeavePolicy, error) {
	var list []EmployeeLeavePolicy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("employee_id ASC, leave_type ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListExcludedTypes(ctx context.Context, companyID, employeeID string) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).
		Model(&EmployeeLeavePolicy{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND included = ?", employeeID, false).
		Order("leave_type ASC").
		Pluck("leave_type", &types).Error
	return types, err
}

func (r *repository) LatestActiveAdjustment(ctx context.Context, key domain.LeaveKey) (*IndividualLeaveAdjustment, error) {
	var a IndividualLeaveAdjustment
	err := r.db.WithContext(ctx).
		Scopes(pair(key)).
		Where("status = ?", AdjustmentActive).
		Order("effective_date DESC, created_at DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) SupersedeAdjustments(ctx context.Context, key domain.LeaveKey) error {
	return r.db.WithContext(ctx).
		Model(&IndividualLeaveAdjustment{}).
		Scopes(pair(key)).
		Where("status = ?", AdjustmentActive).
		Update("status", AdjustmentSuperseded).Error
}

func (r *repository) CreateAdjustment(ctx context.Context, a *IndividualLeaveAdjustment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ListAdjustments(ctx context.Context, companyID, employeeID string) ([]IndividualLeaveAdjustment, error) {
	var list []IndividualLeaveAdjustment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) SumApprovedDays(ctx context.Context, key domain.LeaveKey, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Table(applicationsTable).
		Select("SUM(total_days)").
		Scopes(pair(key)).
		Where("status = ? AND start_date >= ? AND start_date < ?", domain.LeaveStatusApproved, from, to).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *repository) SumCarriedDays(ctx context.Context, key domain.LeaveKey, year int) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&CarryForwardRecord{}).
		Select("SUM(carried_days)").
		Scopes(pair(key)).
		Where("year = ?", year).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *repository) UpsertCarryForward(ctx context.Context, rec *CarryForwardRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "employee_id"}, {Name: "leave_type"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"carried_days", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *repository) ListCarryForward(ctx context.Context, companyID string, year int) ([]CarryForwardRecord, error) {
	var list []CarryForwardRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("year = ?", year).
		Order("employee_id ASC, leave_type ASC").
		Find(&list).Error
	return list, err
}
