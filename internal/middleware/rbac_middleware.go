package middleware

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
)

// RBACService is satisfied by anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString(string(ContextEmployeeID))
		companyID := c.GetString(string(ContextCompanyID))
		if employeeID == "" || companyID == "" {
			abort(c, ErrMissingAuthContext)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			zap.L().Named("middleware.rbac").Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			abort(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			denied := *ErrPermissionDenied
			denied.Details = map[string]string{"required": resource + ":" + action}
			abort(c, &denied)
			return
		}
		c.Next()
	}
}
