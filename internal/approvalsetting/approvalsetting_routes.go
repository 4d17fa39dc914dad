package approvalsetting

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
	settings := r.Group("/approval-settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceApprovalSetting, domain.ActionRead), handler.Get)
		settings.PUT("", middleware.RBACAuthorize(rbacService, domain.ResourceApprovalSetting, domain.ActionManage), handler.Upsert)
		settings.DELETE("", middleware.RBACAuthorize(rbacService, domain.ResourceApprovalSetting, domain.ActionManage), handler.Delete)
	}
}
