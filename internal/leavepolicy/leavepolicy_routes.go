package leavepolicy

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
	system := r.Group("/system-leave-policies")
	system.Use(middleware.AuthMiddleware())
	{
		system.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionRead), handler.ListSystemPolicies)
		system.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.CreateSystemPolicy)
		system.PUT("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.UpdateSystemPolicy)
		system.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.DisableSystemPolicy)
	}

	company := r.Group("/company-leave-types")
	company.Use(middleware.AuthMiddleware())
	{
		company.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionRead), handler.ListCompanyTypes)
		company.GET("/enabled", handler.ListActiveCompanyTypes)
		company.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.ActivateForCompany)
		company.DELETE("/:leaveType", middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage), handler.DeactivateForCompany)
	}
}
