package leavepolicy

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
	l := zap.L().Named("leavepolicy.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavepolicy.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave policy request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateSystemPolicy(c *gin.Context) {
	var req CreateSystemPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create system policy validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateSystemPolicy(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateSystemPolicy(c *gin.Context) {
	var req UpdateSystemPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update system policy validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateSystemPolicy(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DisableSystemPolicy(c *gin.Context) {
	resp, err := h.service.DisableSystemPolicy(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListSystemPolicies(c *gin.Context) {
	resp, err := h.service.ListSystemPolicies(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ActivateForCompany(c *gin.Context) {
	companyID := c.GetString("company_id")
	h.logger.Debug("http activate company leave type", zap.String("company_id", companyID))

	var req ActivateCompanyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http activate company leave type validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ActivateForCompany(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeactivateForCompany(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.DeactivateForCompany(c.Request.Context(), companyID, c.Param("leaveType"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListCompanyTypes(c *gin.Context) {
	resp, err := h.service.ListCompanyTypes(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListActiveCompanyTypes(c *gin.Context) {
	resp, err := h.service.ListActiveCompanyTypes(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
