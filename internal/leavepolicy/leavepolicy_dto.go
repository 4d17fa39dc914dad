package leavepolicy

type CreateSystemPolicyRequest struct {
	LeaveType              string  `json:"leave_type" binding:"required,max=100"`
	DefaultEntitlementDays float64 `json:"default_entitlement_days" binding:"gte=0,lte=366"`
	IsEnabled              *bool   `json:"is_enabled"`
	Remarks                string  `json:"remarks"`
}

// UpdateSystemPolicyRequest deliberately has no leave_type: a rename is a
// disable plus a create.
type UpdateSystemPolicyRequest struct {
	DefaultEntitlementDays *float64 `json:"default_entitlement_days" binding:"omitempty,gte=0,lte=366"`
	IsEnabled              *bool    `json:"is_enabled"`
	Remarks                *string  `json:"remarks"`
}

type SystemPolicyResponse struct {
	ID                     string `json:"id"`
	LeaveType              string `json:"leave_type"`
	DefaultEntitlementDays string `json:"default_entitlement_days"`
	IsEnabled              bool   `json:"is_enabled"`
	Remarks                string `json:"remarks"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
}

type ActivateCompanyTypeRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	// EntitlementDays falls back to the system default when omitted.
	EntitlementDays *float64 `json:"entitlement_days" binding:"omitempty,gte=0,lte=366"`
	Enabled         *bool    `json:"enabled"`
	AllowOverdraft  bool     `json:"allow_overdraft"`
	CarryForwardCap *float64 `json:"carry_forward_cap" binding:"omitempty,gte=0"`
}

type CompanyLeaveTypeResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	LeaveType       string  `json:"leave_type"`
	EntitlementDays string  `json:"entitlement_days"`
	Enabled         bool    `json:"enabled"`
	Active          bool    `json:"active"`
	AllowOverdraft  bool    `json:"allow_overdraft"`
	CarryForwardCap *string `json:"carry_forward_cap"`
}
