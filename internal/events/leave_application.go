package events

import "time"

const (
	LeaveApplicationSubmittedTopic = "hr.leave.application.submitted.v1"
	LeaveApplicationDecidedTopic   = "hr.leave.application.decided.v1"
)

const (
	EventLeaveApplicationSubmitted = "leave_application_submitted"
	EventLeaveApplicationDecided   = "leave_application_decided"
)

type LeaveApplicationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	ReferenceNo   string    `json:"reference_no"`
	CompanyID     string    `json:"company_id"`
	EmployeeID    string    `json:"employee_id"`
	LeaveType     string    `json:"leave_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalDays     string    `json:"total_days"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// LeaveApplicationDecidedEvent is emitted for every terminal transition,
// including automatic rejections during approval.
type LeaveApplicationDecidedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	ReferenceNo   string    `json:"reference_no"`
	CompanyID     string    `json:"company_id"`
	EmployeeID    string    `json:"employee_id"`
	LeaveType     string    `json:"leave_type"`
	Status        string    `json:"status"`
	DecidedBy     string    `json:"decided_by"`
	Comments      string    `json:"comments,omitempty"`
	AutoRejected  bool      `json:"auto_rejected"`
	OccurredAt    time.Time `json:"occurred_at"`
}
