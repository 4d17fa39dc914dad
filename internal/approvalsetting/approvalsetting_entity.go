package approvalsetting

import (
	"time"

	"github.com/google/uuid"
)

// GlobalScope is the LeaveType of the company-wide fallback row.
const GlobalScope = ""

type ApprovalSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_approval_setting_scope"`
	LeaveType string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:uq_approval_setting_scope"`

	FirstLevelApproverID  uuid.UUID  `gorm:"type:uuid;not null"`
	SecondLevelApproverID *uuid.UUID `gorm:"type:uuid"`

	UpdatedBy string `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Approver levels recorded on every decision.
const (
	LevelFirst  = 1
	LevelSecond = 2
)

// Level returns which approval level employeeID holds, or 0.
func (s ApprovalSetting) Level(employeeID string) int {
	if s.FirstLevelApproverID.String() == employeeID {
		return LevelFirst
	}
	if s.SecondLevelApproverID != nil && s.SecondLevelApproverID.String() == employeeID {
		return LevelSecond
	}
	return 0
}
