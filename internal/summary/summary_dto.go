package summary

// LeaveTypeSummary is one leave type as seen by one employee.
type LeaveTypeSummary struct {
	LeaveType         string `json:"leave_type"`
	EntitlementDays   string `json:"entitlement_days"`
	DaysTaken         string `json:"days_taken"`
	CarriedDays       string `json:"carried_days"`
	RemainingDays     string `json:"remaining_days"`
	ApplicationsCount int64  `json:"applications_count"`
	IsEligible        bool   `json:"is_eligible"`
}

type EmployeeSummaryResponse struct {
	EmployeeID string             `json:"employee_id"`
	FullName   string             `json:"full_name"`
	Role       string             `json:"role"`
	Year       int                `json:"year"`
	LeaveTypes []LeaveTypeSummary `json:"leave_types"`
}

type LeaveTypeStatisticsResponse struct {
	LeaveType        string `json:"leave_type"`
	Employees        int    `json:"employees"`
	TotalEntitlement string `json:"total_entitlement"`
	TotalTaken       string `json:"total_taken"`
	TotalRemaining   string `json:"total_remaining"`
	Pending          int64  `json:"pending"`
	Approved         int64  `json:"approved"`
	Rejected         int64  `json:"rejected"`
}
