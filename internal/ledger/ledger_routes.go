package ledger

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionRead)
	manage := middleware.RBACAuthorize(rbacService, domain.ResourceLeavePolicy, domain.ActionManage)

	policies := r.Group("/leave-policies")
	policies.Use(middleware.AuthMiddleware())
	{
		policies.GET("/employee/:employeeId", read, handler.ListPolicies)
		policies.POST("", manage, handler.CreatePolicy)
		policies.PUT("/:id", manage, handler.UpdatePolicy)
		policies.DELETE("/:id", manage, handler.DeletePolicy)
	}

	adjustments := r.Group("/leave-adjustments")
	adjustments.Use(middleware.AuthMiddleware())
	{
		adjustments.POST("", manage, handler.AdjustEntitlement)
		adjustments.GET("/employee/:employeeId", read, handler.ListAdjustments)
	}

	balances := r.Group("/leave-balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("/:employeeId/:leaveType", read, handler.GetBalance)
	}

	carry := r.Group("/leave-balance-carry-forward")
	carry.Use(middleware.AuthMiddleware())
	{
		carry.POST("", manage, handler.RollCarryForward)
		carry.GET("", read, handler.ListCarryForward)
	}
}
