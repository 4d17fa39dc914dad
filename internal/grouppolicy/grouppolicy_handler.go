package grouppolicy

import (
	"net/http"

	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("grouppolicy.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("grouppolicy.handler")
	}
	return &Handler{service: service, logger: l}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("group policy request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListSettings(c *gin.Context) {
	resp, err := h.service.ListSettings(c.Request.Context(), c.GetString("company_id"), c.Query("leave_type"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddSetting(c *gin.Context) {
	companyID := c.GetString("company_id")
	actorID := getActorID(c)
	h.logger.Debug("http add group policy setting", zap.String("company_id", companyID), zap.String("actor_id", actorID))

	var req AddSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add group policy setting validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddSetting(c.Request.Context(), companyID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RemoveSetting(c *gin.Context) {
	err := h.service.RemoveSetting(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("leaveType"),
		c.Param("role"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Eligibility answers for one leave type when ?leave_type= is given,
// otherwise for every activated type. ?selectable=true keeps only the
// types the employee may apply for.
func (h *Handler) Eligibility(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	employeeID := c.Param("employeeId")

	if leaveType := c.Query("leave_type"); leaveType != "" {
		resp, err := h.service.IsAccessible(ctx, companyID, employeeID, leaveType)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	if c.Query("selectable") == "true" {
		resp, err := h.service.SelectableLeaveTypes(ctx, companyID, employeeID)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if resp == nil {
			resp = []string{}
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.Eligibility(ctx, companyID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
