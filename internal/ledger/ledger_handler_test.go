package ledger_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/ledger"
	ledgererrors "go-hris-leave/internal/ledger/errors"
	ledgerMock "go-hris-leave/internal/ledger/mock"
	"go-hris-leave/internal/shared/apperror"

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

func TestLedgerHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes year and path params", func(t *testing.T) {
		companyID := uuid.New().String()
		employeeID := uuid.New().String()
		ctrl := gomock.NewController(t)
		svc := ledgerMock.NewMockService(ctrl)
		svc.EXPECT().
			CurrentBalance(gomock.Any(), domain.LeaveKey{
				CompanyID:  companyID,
				EmployeeID: employeeID,
				LeaveType:  "Annual Leave",
			}, 2025).
			Return(ledger.BalanceResponse{
				EmployeeID:  employeeID,
				LeaveType:   "Annual Leave",
				Year:        2025,
				Entitlement: "14",
				Taken:       "3",
				Remaining:   "11",
			}, nil)

		h := ledger.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-balances/x/y?year=2025", nil)
		c.Params = gin.Params{
			{Key: "employeeId", Value: employeeID},
			{Key: "leaveType", Value: "Annual Leave"},
		}
		c.Set("company_id", companyID)

		h.GetBalance(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got ledger.BalanceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "11", got.Remaining)
	})

	t.Run("bad year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := ledger.NewHandler(ledgerMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-balances/x/y?year=last", nil)

		h.GetBalance(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})
}

func TestLedgerHandler_AdjustEntitlement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("actor falls back to user id", func(t *testing.T) {
		employeeID := uuid.New().String()
		ctrl := gomock.NewController(t)
		svc := ledgerMock.NewMockService(ctrl)
		svc.EXPECT().
			AdjustEntitlement(gomock.Any(), gomock.Any(), "user-1", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, req ledger.AdjustEntitlementRequest) (ledger.AdjustmentResponse, error) {
				assert.Equal(t, 12.0, req.AdjustedEntitlement)
				assert.Equal(t, "joined mid-year", req.AdjustmentReason)
				return ledger.AdjustmentResponse{EmployeeID: employeeID, AdjustedEntitlement: "12", Status: ledger.AdjustmentActive}, nil
			})

		h := ledger.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-adjustments", strings.NewReader(
			`{"employee_id":"`+employeeID+`","leave_type":"Annual Leave","adjusted_entitlement":12,"adjustment_reason":"joined mid-year"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())
		c.Set("user_id_validated", "user-1")

		h.AdjustEntitlement(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("blank reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := ledgerMock.NewMockService(ctrl)
		svc.EXPECT().
			AdjustEntitlement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(ledger.AdjustmentResponse{}, ledgererrors.ErrReasonRequired)

		h := ledger.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-adjustments", strings.NewReader(
			`{"employee_id":"`+uuid.New().String()+`","leave_type":"Annual Leave","adjusted_entitlement":12}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.AdjustEntitlement(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})
}

func TestLedgerHandler_UpdatePolicyConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := ledgerMock.NewMockService(ctrl)
	svc.EXPECT().
		UpdatePolicy(gomock.Any(), gomock.Any(), "p-1", gomock.Any()).
		Return(ledger.PolicyResponse{}, apperror.ErrConcurrentModification)

	h := ledger.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/leave-policies/p-1", strings.NewReader(`{"included":false,"version":1}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "p-1"}}

	h.UpdatePolicy(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLedgerHandler_RollCarryForward(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("from_year required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := ledger.NewHandler(ledgerMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-balance-carry-forward", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.RollCarryForward(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("company wide", func(t *testing.T) {
		companyID := uuid.New().String()
		ctrl := gomock.NewController(t)
		svc := ledgerMock.NewMockService(ctrl)
		svc.EXPECT().
			RollCarryForward(gomock.Any(), companyID, ledger.CarryForwardRequest{FromYear: 2024}).
			Return([]ledger.CarryForwardResponse{{Year: 2025, CarriedDays: "4"}}, nil)

		h := ledger.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-balance-carry-forward", strings.NewReader(`{"from_year":2024}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", companyID)

		h.RollCarryForward(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got []ledger.CarryForwardResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
	})
}
