package summary

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceLeaveReport, domain.ActionRead)

	reports := r.Group("")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/leave-summary-all-employees", read, handler.GetCompanySummary)
		reports.GET("/leave-summary-all-employees/pdf", read, handler.ExportPDF)
		reports.GET("/leave-summary/:employeeId", read, handler.GetEmployeeSummary)
		reports.GET("/leave-statistics", read, handler.GetStatistics)
	}
}
