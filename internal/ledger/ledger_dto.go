package ledger

type CreatePolicyRequest struct {
	EmployeeID  string   `json:"employee_id" binding:"required,uuid"`
	LeaveType   string   `json:"leave_type" binding:"required"`
	Entitlement *float64 `json:"entitlement" binding:"omitempty,gte=0,lte=366"`
	Remarks     string   `json:"remarks"`
	Included    *bool    `json:"included"`
}

// UpdatePolicyRequest never carries a balance: the balance is recomputed.
type UpdatePolicyRequest struct {
	Entitlement      *float64 `json:"entitlement" binding:"omitempty,gte=0,lte=366"`
	ClearEntitlement bool     `json:"clear_entitlement"`
	Remarks          *string  `json:"remarks"`
	Included         *bool    `json:"included"`
	// Version, when sent, must match the stored row.
	Version *int64 `json:"version"`
}

type PolicyResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	LeaveType            string  `json:"leave_type"`
	Entitlement          *string `json:"entitlement"`
	EffectiveEntitlement string  `json:"effective_entitlement"`
	EntitlementSource    string  `json:"entitlement_source"`
	Balance              string  `json:"balance"`
	BalanceYear          int     `json:"balance_year"`
	Remarks              string  `json:"remarks"`
	Included             bool    `json:"included"`
	Version              int64   `json:"version"`
}

type AdjustEntitlementRequest struct {
	EmployeeID          string  `json:"employee_id" binding:"required,uuid"`
	LeaveType           string  `json:"leave_type" binding:"required"`
	AdjustedEntitlement float64 `json:"adjusted_entitlement" binding:"lte=366"`
	AdjustmentReason    string  `json:"adjustment_reason"`
	// EffectiveDate defaults to today.
	EffectiveDate string `json:"effective_date" binding:"omitempty,datetime=2006-01-02"`
}

type AdjustmentResponse struct {
	ID                  string `json:"id"`
	EmployeeID          string `json:"employee_id"`
	LeaveType           string `json:"leave_type"`
	OriginalEntitlement string `json:"original_entitlement"`
	AdjustedEntitlement string `json:"adjusted_entitlement"`
	AdjustmentReason    string `json:"adjustment_reason"`
	EffectiveDate       string `json:"effective_date"`
	Status              string `json:"status"`
	CreatedBy           string `json:"created_by"`
	CreatedAt           string `json:"created_at"`
	Balance             string `json:"balance,omitempty"`
}

type BalanceResponse struct {
	EmployeeID        string `json:"employee_id"`
	LeaveType         string `json:"leave_type"`
	Year              int    `json:"year"`
	Entitlement       string `json:"entitlement"`
	EntitlementSource string `json:"entitlement_source"`
	Taken             string `json:"taken"`
	Carried           string `json:"carried"`
	Remaining         string `json:"remaining"`
	Included          bool   `json:"included"`
	AllowOverdraft    bool   `json:"allow_overdraft"`
}

// CarryForwardRequest rolls one pair when EmployeeID and LeaveType are both
// set, otherwise every included policy of the company (optionally one type).
type CarryForwardRequest struct {
	FromYear   int    `json:"from_year" binding:"required,gte=2000,lte=2100"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveType  string `json:"leave_type"`
}

type CarryForwardResponse struct {
	EmployeeID  string `json:"employee_id"`
	LeaveType   string `json:"leave_type"`
	Year        int    `json:"year"`
	CarriedDays string `json:"carried_days"`
}
