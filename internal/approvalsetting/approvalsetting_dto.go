package approvalsetting

// UpsertRequest with an empty LeaveType configures the global approvers.
type UpsertRequest struct {
	LeaveType             string `json:"leave_type"`
	FirstLevelApproverID  string `json:"first_level_approver_id" binding:"required,uuid"`
	SecondLevelApproverID string `json:"second_level_approver_id" binding:"omitempty,uuid"`
}

type SettingResponse struct {
	ID                    string  `json:"id"`
	LeaveType             string  `json:"leave_type"`
	Global                bool    `json:"global"`
	FirstLevelApproverID  string  `json:"first_level_approver_id"`
	SecondLevelApproverID *string `json:"second_level_approver_id"`
	UpdatedBy             string  `json:"updated_by"`
	UpdatedAt             string  `json:"updated_at"`
}
