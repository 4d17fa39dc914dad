package leavepolicy_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-leave/internal/leavepolicy"
	leavepolicyerrors "go-hris-leave/internal/leavepolicy/errors"
	leavepolicyMock "go-hris-leave/internal/leavepolicy/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func TestLeavePolicyHandler_CreateSystemPolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavepolicyMock.NewMockService(ctrl)
		svc.EXPECT().
			CreateSystemPolicy(gomock.Any(), leavepolicy.CreateSystemPolicyRequest{
				LeaveType:              "Annual Leave",
				DefaultEntitlementDays: 14,
			}).
			Return(leavepolicy.SystemPolicyResponse{
				ID:                     uuid.New().String(),
				LeaveType:              "Annual Leave",
				DefaultEntitlementDays: "14",
				IsEnabled:              true,
			}, nil)

		h := leavepolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/system-leave-policies",
			strings.NewReader(`{"leave_type":"Annual Leave","default_entitlement_days":14}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateSystemPolicy(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leavepolicy.SystemPolicyResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Annual Leave", got.LeaveType)
		assert.Equal(t, "14", got.DefaultEntitlementDays)
	})

	t.Run("missing leave type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := leavepolicy.NewHandler(leavepolicyMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/system-leave-policies", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateSystemPolicy(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavepolicyMock.NewMockService(ctrl)
		svc.EXPECT().
			CreateSystemPolicy(gomock.Any(), gomock.Any()).
			Return(leavepolicy.SystemPolicyResponse{}, leavepolicyerrors.ErrLeaveTypeExists)

		h := leavepolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/system-leave-policies",
			strings.NewReader(`{"leave_type":"Annual Leave","default_entitlement_days":14}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateSystemPolicy(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestLeavePolicyHandler_ActivateForCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("uses company from context", func(t *testing.T) {
		companyID := uuid.New().String()
		ctrl := gomock.NewController(t)
		svc := leavepolicyMock.NewMockService(ctrl)
		svc.EXPECT().
			ActivateForCompany(gomock.Any(), companyID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req leavepolicy.ActivateCompanyTypeRequest) (leavepolicy.CompanyLeaveTypeResponse, error) {
				assert.Equal(t, "Annual Leave", req.LeaveType)
				if assert.NotNil(t, req.EntitlementDays) {
					assert.Equal(t, 14.0, *req.EntitlementDays)
				}
				return leavepolicy.CompanyLeaveTypeResponse{
					CompanyID:       companyID,
					LeaveType:       req.LeaveType,
					EntitlementDays: "14",
					Enabled:         true,
					Active:          true,
				}, nil
			})

		h := leavepolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/company-leave-types",
			strings.NewReader(`{"leave_type":"Annual Leave","entitlement_days":14}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", companyID)

		h.ActivateForCompany(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("disabled system policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavepolicyMock.NewMockService(ctrl)
		svc.EXPECT().
			ActivateForCompany(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(leavepolicy.CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrSystemPolicyDisabled)

		h := leavepolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/company-leave-types",
			strings.NewReader(`{"leave_type":"Unpaid Leave"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())

		h.ActivateForCompany(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestLeavePolicyHandler_ListActiveCompanyTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal errors are not leaked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavepolicyMock.NewMockService(ctrl)
		svc.EXPECT().
			ListActiveCompanyTypes(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: connection refused"))

		h := leavepolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/company-leave-types/enabled", nil)
		c.Set("company_id", uuid.New().String())

		h.ListActiveCompanyTypes(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "connection refused")
	})
}
