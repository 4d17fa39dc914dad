package domain

// Leave application statuses. Approved and Rejected are terminal.
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Decide actions.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// LeaveKey identifies one employee's entitlement for one leave type.
type LeaveKey struct {
	CompanyID  string
	EmployeeID string
	LeaveType  string
}
