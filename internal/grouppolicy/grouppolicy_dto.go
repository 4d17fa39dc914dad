package grouppolicy

type AddSettingRequest struct {
	LeaveType string `json:"leave_type" binding:"required,max=100"`
	Role      string `json:"role" binding:"required,max=100"`
}

type SettingResponse struct {
	ID        string `json:"id"`
	LeaveType string `json:"leave_type"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// EligibilityResponse explains whether an employee may apply for a leave
// type and, when not, which check failed.
type EligibilityResponse struct {
	LeaveType  string `json:"leave_type"`
	Accessible bool   `json:"accessible"`
	Reason     string `json:"reason,omitempty"`
}
