package approvalsetting_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-leave/internal/approvalsetting"
	approvalsettingMock "go-hris-leave/internal/approvalsetting/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestApprovalSettingHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()

	t.Run("without scope lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := approvalsettingMock.NewMockService(ctrl)
		svc.EXPECT().List(gomock.Any(), companyID).Return([]approvalsetting.SettingResponse{{Global: true}}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/approval-settings", nil)
		c.Set("company_id", companyID)

		approvalsetting.NewHandler(svc).Get(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("global flag reads the fallback row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := approvalsettingMock.NewMockService(ctrl)
		svc.EXPECT().Get(gomock.Any(), companyID, approvalsetting.GlobalScope).Return(approvalsetting.SettingResponse{Global: true}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/approval-settings?global=true", nil)
		c.Set("company_id", companyID)

		approvalsetting.NewHandler(svc).Get(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestApprovalSettingHandler_Upsert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("first approver required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/approval-settings", strings.NewReader(`{"leave_type":"Annual Leave"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		approvalsetting.NewHandler(approvalsettingMock.NewMockService(ctrl)).Upsert(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("actor is passed through", func(t *testing.T) {
		approver := uuid.NewString()
		ctrl := gomock.NewController(t)
		svc := approvalsettingMock.NewMockService(ctrl)
		svc.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), "emp-1", approvalsetting.UpsertRequest{
				LeaveType:            "Annual Leave",
				FirstLevelApproverID: approver,
			}).
			Return(approvalsetting.SettingResponse{FirstLevelApproverID: approver}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/approval-settings",
			strings.NewReader(`{"leave_type":"Annual Leave","first_level_approver_id":"`+approver+`"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_id", "emp-1")

		approvalsetting.NewHandler(svc).Upsert(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
