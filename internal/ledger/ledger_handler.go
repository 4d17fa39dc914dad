package ledger

import (
	"net/http"
	"strconv"

	"go-hris-leave/internal/domain"
	ledgererrors "go-hris-leave/internal/ledger/errors"
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
	l := zap.L().Named("ledger.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.handler")
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

// queryYear reads ?year=, returning 0 when absent.
func queryYear(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, ledgererrors.ErrInvalidYear
	}
	return year, nil
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("ledger request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListPolicies(c *gin.Context) {
	resp, err := h.service.ListPolicies(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreatePolicy(c *gin.Context) {
	companyID := c.GetString("company_id")
	h.logger.Debug("http create leave policy", zap.String("company_id", companyID))

	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave policy validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreatePolicy(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdatePolicy(c *gin.Context) {
	var req UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update leave policy validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdatePolicy(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeletePolicy(c *gin.Context) {
	if err := h.service.DeletePolicy(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AdjustEntitlement(c *gin.Context) {
	companyID := c.GetString("company_id")
	actorID := getActorID(c)
	h.logger.Debug("http adjust entitlement", zap.String("company_id", companyID), zap.String("actor_id", actorID))

	var req AdjustEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http adjust entitlement validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AdjustEntitlement(c.Request.Context(), companyID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListAdjustments(c *gin.Context) {
	resp, err := h.service.ListAdjustments(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	key := domain.LeaveKey{
		CompanyID:  c.GetString("company_id"),
		EmployeeID: c.Param("employeeId"),
		LeaveType:  c.Param("leaveType"),
	}
	resp, err := h.service.CurrentBalance(c.Request.Context(), key, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RollCarryForward(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req CarryForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http carry forward validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RollCarryForward(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListCarryForward(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListCarryForward(c.Request.Context(), c.GetString("company_id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
