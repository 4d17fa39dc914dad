package leave

import (
	"time"

	"go-hris-leave/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveApplication is immutable once its status is terminal.
type LeaveApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_app_company_status;uniqueIndex:uq_leave_app_reference"`
	ReferenceNo string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_leave_app_reference"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_app_pair"`
	// ApplicantName is a snapshot taken at submission.
	ApplicantName string `gorm:"type:varchar(150)"`
	LeaveType     string `gorm:"type:varchar(100);not null;index:idx_leave_app_pair"`

	StartDate    time.Time       `gorm:"type:date;not null;index:idx_leave_app_pair"`
	EndDate      time.Time       `gorm:"type:date;not null"`
	StartDayType string          `gorm:"type:varchar(10);not null"`
	EndDayType   string          `gorm:"type:varchar(10);not null"`
	TotalDays    decimal.Decimal `gorm:"type:numeric(6,2);not null"`

	Reason                string  `gorm:"type:text;not null"`
	SupportingDocumentRef *string `gorm:"type:text"`

	Status      string    `gorm:"type:varchar(20);not null;index:idx_leave_app_company_status"`
	AppliedDate time.Time `gorm:"not null"`
	CreatedBy   string    `gorm:"type:varchar(64)"`

	DecidedBy        *uuid.UUID `gorm:"type:uuid"`
	DecidedAt        *time.Time
	DecisionComments *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveApplication) TableName() string { return "leave_applications" }

func (a LeaveApplication) Key() domain.LeaveKey {
	return domain.LeaveKey{
		CompanyID:  a.CompanyID.String(),
		EmployeeID: a.EmployeeID.String(),
		LeaveType:  a.LeaveType,
	}
}

// PolicyYear is the ledger year the application is charged to.
func (a LeaveApplication) PolicyYear() int {
	return a.StartDate.Year()
}

func (a LeaveApplication) IsTerminal() bool {
	return a.Status == domain.LeaveStatusApproved || a.Status == domain.LeaveStatusRejected
}

// Action values written to the audit trail.
const (
	ActionSubmit     = "submit"
	ActionApprove    = "approve"
	ActionReject     = "reject"
	ActionAutoReject = "auto_reject"
)

// LeaveApplicationAction records who moved an application and when.
type LeaveApplicationAction struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null"`
	ActorID       string    `gorm:"type:varchar(64);not null"`
	Action        string    `gorm:"type:varchar(20);not null"`
	ApprovalLevel int       `gorm:"not null;default:0"`
	FromStatus    string    `gorm:"type:varchar(20)"`
	ToStatus      string    `gorm:"type:varchar(20);not null"`
	Comments      string    `gorm:"type:text"`
	CreatedAt     time.Time
}
