package rbac

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type AssignRoleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type GrantPermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"required,dive,uuid"`
}

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}
