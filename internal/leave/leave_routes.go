package leave

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Per-user budget for the write-heavy workflow endpoints.
const (
	userRateLimit = rate.Limit(5)
	userBurst     = 20
)

// RegisterRoutes leaves decide unguarded by RBAC: the approval setting is
// the authority on who may decide.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	applications := r.Group("/leave-applications")
	applications.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(userRateLimit, userBurst))
	if rdb != nil {
		applications.Use(middleware.Idempotency(rdb))
	}
	{
		applications.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceLeaveApplication, domain.ActionRead), handler.List)
		applications.GET("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceLeaveApplication, domain.ActionRead), handler.GetByID)
		applications.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceLeaveApplication, domain.ActionCreate), handler.Submit)
		applications.POST("/:id/approve", handler.Decide)
		applications.POST("/bulk-decide", handler.BulkDecide)
	}
}
