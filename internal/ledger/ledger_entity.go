package ledger

import (
	"time"

	"go-hris-leave/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AdjustmentActive     = "active"
	AdjustmentSuperseded = "superseded"
)

// Where an effective entitlement came from, highest priority first.
const (
	SourceAdjustment = "adjustment"
	SourcePolicy     = "policy"
	SourceCompany    = "company"
	SourceNone       = "none"
)

// EmployeeLeavePolicy is one employee's row for one leave type. Balance is
// a cache of the balance formula for BalanceYear and is only written by
// the ledger inside the transaction that changed one of its inputs.
type EmployeeLeavePolicy struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_leave_policy"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_leave_policy"`
	LeaveType  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_employee_leave_policy"`
	// Entitlement overrides the company default when set.
	Entitlement *decimal.Decimal `gorm:"type:numeric(6,2)"`
	Balance     decimal.Decimal  `gorm:"type:numeric(7,2);not null"`
	BalanceYear int              `gorm:"not null"`
	Remarks     string           `gorm:"type:text"`
	Included    bool             `gorm:"not null"`
	Version     int64            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p EmployeeLeavePolicy) Key() domain.LeaveKey {
	return domain.LeaveKey{
		CompanyID:  p.CompanyID.String(),
		EmployeeID: p.EmployeeID.String(),
		LeaveType:  p.LeaveType,
	}
}

// IndividualLeaveAdjustment is an append-only entitlement override. Only
// the latest row per pair is active.
type IndividualLeaveAdjustment struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_adjustment_pair"`
	EmployeeID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_adjustment_pair"`
	LeaveType           string          `gorm:"type:varchar(100);not null;index:idx_adjustment_pair"`
	OriginalEntitlement decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	AdjustedEntitlement decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	AdjustmentReason    string          `gorm:"type:text;not null"`
	EffectiveDate       time.Time       `gorm:"not null"`
	Status              string          `gorm:"type:varchar(20);not null"`
	CreatedBy           string          `gorm:"type:varchar(64)"`
	CreatedAt           time.Time
}

// CarryForwardRecord holds the days rolled into Year. Re-running a rollover
// overwrites it.
type CarryForwardRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_carry_forward"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_carry_forward"`
	LeaveType   string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_carry_forward"`
	Year        int             `gorm:"not null;uniqueIndex:uq_carry_forward"`
	CarriedDays decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Balance is the ledger's answer for one pair and year.
type Balance struct {
	Key               domain.LeaveKey
	Year              int
	Entitlement       decimal.Decimal
	EntitlementSource string
	Taken             decimal.Decimal
	Carried           decimal.Decimal
	Remaining         decimal.Decimal
	Included          bool
	AllowOverdraft    bool
	CompanyEnabled    bool
	CarryForwardCap   *decimal.Decimal
}

// Covers reports whether days can be taken from this balance.
func (b Balance) Covers(days decimal.Decimal) bool {
	return b.AllowOverdraft || b.Remaining.GreaterThanOrEqual(days)
}
