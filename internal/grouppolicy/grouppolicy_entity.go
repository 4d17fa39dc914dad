package grouppolicy

import (
	"time"

	"github.com/google/uuid"
)

// GroupPolicySetting allows one role to use one leave type. A leave type
// with no rows is open to every role.
type GroupPolicySetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_group_policy_setting"`
	LeaveType string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_group_policy_setting"`
	Role      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_group_policy_setting"`
	CreatedBy string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time
}
