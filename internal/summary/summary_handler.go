package summary

import (
	"fmt"
	"net/http"
	"strconv"

	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/response"
	summaryerrors "go-hris-leave/internal/summary/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("summary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.handler")
	}
	return &Handler{service: service, logger: l}
}

func queryYear(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, summaryerrors.ErrInvalidYear
	}
	return year, nil
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("summary request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetEmployeeSummary(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.EmployeeSummary(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCompanySummary(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.CompanySummary(c.Request.Context(), c.GetString("company_id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetStatistics(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.LeaveTypeStatistics(c.Request.Context(), c.GetString("company_id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	doc, err := h.service.RenderPDF(c.Request.Context(), c.GetString("company_id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	name := "leave-summary.pdf"
	if year != 0 {
		name = fmt.Sprintf("leave-summary-%d.pdf", year)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "application/pdf", doc)
}
