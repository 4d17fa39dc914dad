package leavepolicy

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SystemLeavePolicy is the system-wide catalogue entry for a leave type.
// LeaveType is the join key used by every other component and never changes
// after creation.
type SystemLeavePolicy struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LeaveType              string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_system_leave_type"`
	DefaultEntitlementDays decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	IsEnabled              bool            `gorm:"not null"`
	Remarks                string          `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// CompanyLeaveType activates a system policy for one company and may
// override its default days.
type CompanyLeaveType struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_company_leave_type"`
	LeaveType       string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_company_leave_type"`
	EntitlementDays decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Enabled         bool            `gorm:"not null"`
	// AllowOverdraft lets applications of this type push the balance below zero.
	AllowOverdraft bool `gorm:"not null"`
	// CarryForwardCap limits the days rolled into the next year; nil rolls
	// the whole unused balance, zero disables carry-forward.
	CarryForwardCap *decimal.Decimal `gorm:"type:numeric(6,2)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CompanyTypeState is the resolved view other components consume: the
// company row joined with its system policy.
type CompanyTypeState struct {
	LeaveType       string
	EntitlementDays decimal.Decimal
	// Enabled is true only when both the company row and the system policy are enabled.
	Enabled         bool
	AllowOverdraft  bool
	CarryForwardCap *decimal.Decimal
}

func (c CompanyLeaveType) State(systemEnabled bool) CompanyTypeState {
	return CompanyTypeState{
		LeaveType:       c.LeaveType,
		EntitlementDays: c.EntitlementDays,
		Enabled:         c.Enabled && systemEnabled,
		AllowOverdraft:  c.AllowOverdraft,
		CarryForwardCap: c.CarryForwardCap,
	}
}
