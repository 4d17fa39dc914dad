package rbac

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	read := middleware.RBACAuthorize(service, domain.ResourceRole, domain.ActionRead)
	manage := middleware.RBACAuthorize(service, domain.ResourceRole, domain.ActionManage)

	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)

		group.GET("/roles", read, handler.ListRoles)
		group.POST("/roles", manage, handler.CreateRole)
		group.POST("/roles/:id/employees", manage, handler.AssignRole)
		group.PUT("/roles/:id/permissions", manage, handler.GrantPermissions)
		group.GET("/permissions", read, handler.ListPermissions)
	}
}
