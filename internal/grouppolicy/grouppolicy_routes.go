package grouppolicy

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	settings := r.Group("/group-policy-settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionRead), handler.ListSettings)
		settings.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.AddSetting)
		settings.DELETE("/:leaveType/:role", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.RemoveSetting)
	}

	eligibility := r.Group("/leave-eligibility")
	eligibility.Use(middleware.AuthMiddleware())
	{
		eligibility.GET("/:employeeId", middleware.RBACAuthorize(rbacService, domain.ResourceLeaveApplication, domain.ActionCreate), handler.Eligibility)
	}
}
