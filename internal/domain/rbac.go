package domain

type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

// RBAC resources guarded by the leave API.
const (
	ResourceLeavePolicy      = "leave_policy"
	ResourceLeaveApplication = "leave_application"
	ResourceLeaveReport      = "leave_report"
	ResourceApprovalSetting  = "approval_setting"
	ResourceRole             = "role"

	ActionRead   = "read"
	ActionManage = "manage"
	ActionCreate = "create"
)
