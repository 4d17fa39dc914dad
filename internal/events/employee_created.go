package events

import "time"

const (
	EmployeeCreatedTopic = "hr.employee.lifecycle.v1"
	EventEmployeeCreated = "employee_created"
)

// EmployeeCreatedEvent is published by the employee service when a hire is
// recorded. The leave engine only consumes it.

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
