package approvalsetting

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
	l := zap.L().Named("approvalsetting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approvalsetting.handler")
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
	h.logger.Warn("approval setting request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Get returns one scope when ?leave_type is present (use ?global=true for
// the fallback row), otherwise every setting of the company.
func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetString("company_id")

	leaveType, scoped := c.GetQuery("leave_type")
	if c.Query("global") == "true" {
		leaveType, scoped = GlobalScope, true
	}
	if !scoped {
		resp, err := h.service.List(c.Request.Context(), companyID)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), companyID, leaveType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upsert(c *gin.Context) {
	companyID := c.GetString("company_id")
	actorID := getActorID(c)
	h.logger.Debug("http upsert approval setting", zap.String("company_id", companyID), zap.String("actor_id", actorID))

	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http upsert approval setting validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), companyID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	leaveType := c.Query("leave_type")
	if c.Query("global") == "true" {
		leaveType = GlobalScope
	}

	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), leaveType); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
