package leave

// SubmitLeaveRequest applies for the caller unless EmployeeID names someone
// else (HR filing on an employee's behalf).
type SubmitLeaveRequest struct {
	EmployeeID            string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveType             string `json:"leave_type" binding:"required"`
	StartDate             string `json:"start_date" binding:"required"`
	EndDate               string `json:"end_date" binding:"required"`
	StartDayType          string `json:"start_day_type"`
	EndDayType            string `json:"end_day_type"`
	Reason                string `json:"reason"`
	SupportingDocumentRef string `json:"supporting_document_ref"`
}

type DecideRequest struct {
	Action   string `json:"action" binding:"required,oneof=approve reject"`
	Comments string `json:"comments"`
}

type BulkDecideRequest struct {
	IDs      []string `json:"ids" binding:"required,min=1,max=100,dive,uuid"`
	Action   string   `json:"action" binding:"required,oneof=approve reject"`
	Comments string   `json:"comments"`
}

// ListQuery.Mode "approval" narrows to pending applications the caller may
// decide; "report" (the default) returns everything matching the filters.
type ListQuery struct {
	Mode       string `form:"mode" binding:"omitempty,oneof=approval report"`
	Status     string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	LeaveType  string `form:"leave_type"`
	Year       int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
}

const (
	ModeApproval = "approval"
	ModeReport   = "report"
)

type ActionResponse struct {
	Actor         string `json:"actor"`
	Action        string `json:"action"`
	ApprovalLevel int    `json:"approval_level,omitempty"`
	FromStatus    string `json:"from_status,omitempty"`
	ToStatus      string `json:"to_status"`
	Comments      string `json:"comments,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type ApplicationResponse struct {
	ID                    string           `json:"id"`
	ReferenceNo           string           `json:"reference_no"`
	EmployeeID            string           `json:"employee_id"`
	Applicant             string           `json:"applicant"`
	LeaveType             string           `json:"leave_type"`
	StartDate             string           `json:"start_date"`
	EndDate               string           `json:"end_date"`
	StartDayType          string           `json:"start_day_type"`
	EndDayType            string           `json:"end_day_type"`
	TotalDays             string           `json:"total_days"`
	Reason                string           `json:"reason"`
	SupportingDocumentRef *string          `json:"supporting_document_ref,omitempty"`
	Status                string           `json:"status"`
	AppliedDate           string           `json:"applied_date"`
	DecidedBy             *string          `json:"decided_by,omitempty"`
	DecidedAt             *string          `json:"decided_at,omitempty"`
	DecisionComments      *string          `json:"decision_comments,omitempty"`
	Actions               []ActionResponse `json:"actions,omitempty"`
}

type SubmitResponse struct {
	Application ApplicationResponse `json:"application"`
	// Warning is set when the request overdraws a leave type that allows it.
	Warning string `json:"warning,omitempty"`
}

type DecisionResponse struct {
	Application  ApplicationResponse `json:"application"`
	AutoRejected bool                `json:"auto_rejected"`
	// Balance is the pair's remaining days after the decision.
	Balance string `json:"balance,omitempty"`
}

type BulkDecisionResult struct {
	ID      string `json:"id"`
	Status  string `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
