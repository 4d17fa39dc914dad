package grouppolicy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-leave/internal/grouppolicy"
	grouppolicyerrors "go-hris-leave/internal/grouppolicy/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

type fakeGroupPolicyService struct {
	grouppolicy.Service

	addSettingFn    func(ctx context.Context, companyID, actorID string, req grouppolicy.AddSettingRequest) (grouppolicy.SettingResponse, error)
	removeSettingFn func(ctx context.Context, companyID, leaveType, role string) error
	isAccessibleFn  func(ctx context.Context, companyID, employeeID, leaveType string) (grouppolicy.EligibilityResponse, error)
	selectableFn    func(ctx context.Context, companyID, employeeID string) ([]string, error)
}

func (f *fakeGroupPolicyService) AddSetting(ctx context.Context, companyID, actorID string, req grouppolicy.AddSettingRequest) (grouppolicy.SettingResponse, error) {
	return f.addSettingFn(ctx, companyID, actorID, req)
}
func (f *fakeGroupPolicyService) RemoveSetting(ctx context.Context, companyID, leaveType, role string) error {
	return f.removeSettingFn(ctx, companyID, leaveType, role)
}
func (f *fakeGroupPolicyService) IsAccessible(ctx context.Context, companyID, employeeID, leaveType string) (grouppolicy.EligibilityResponse, error) {
	return f.isAccessibleFn(ctx, companyID, employeeID, leaveType)
}
func (f *fakeGroupPolicyService) SelectableLeaveTypes(ctx context.Context, companyID, employeeID string) ([]string, error) {
	return f.selectableFn(ctx, companyID, employeeID)
}

func TestGroupPolicyHandler_AddSetting(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		actorID := uuid.New().String()
		svc := &fakeGroupPolicyService{
			addSettingFn: func(ctx context.Context, cid, aid string, req grouppolicy.AddSettingRequest) (grouppolicy.SettingResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, actorID, aid)
				return grouppolicy.SettingResponse{ID: uuid.New().String(), LeaveType: req.LeaveType, Role: req.Role}, nil
			},
		}

		h := grouppolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/group-policy-settings",
			strings.NewReader(`{"leave_type":"Annual Leave","role":"Manager"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", companyID)
		c.Set("user_id_validated", actorID)

		h.AddSetting(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("already added", func(t *testing.T) {
		svc := &fakeGroupPolicyService{
			addSettingFn: func(ctx context.Context, cid, aid string, req grouppolicy.AddSettingRequest) (grouppolicy.SettingResponse, error) {
				return grouppolicy.SettingResponse{}, grouppolicyerrors.ErrSettingExists
			},
		}

		h := grouppolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/group-policy-settings",
			strings.NewReader(`{"leave_type":"Annual Leave","role":"Manager"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())

		h.AddSetting(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		h := grouppolicy.NewHandler(&fakeGroupPolicyService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/group-policy-settings",
			strings.NewReader(`{"leave_type":"Annual Leave"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.AddSetting(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestGroupPolicyHandler_RemoveSetting(t *testing.T) {
	svc := &fakeGroupPolicyService{
		removeSettingFn: func(ctx context.Context, cid, leaveType, role string) error {
			assert.Equal(t, "Annual Leave", leaveType)
			assert.Equal(t, "Manager", role)
			return grouppolicyerrors.ErrSettingNotFound
		},
	}

	h := grouppolicy.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/group-policy-settings/Annual%20Leave/Manager", nil)
	c.Params = gin.Params{{Key: "leaveType", Value: "Annual Leave"}, {Key: "role", Value: "Manager"}}
	c.Set("company_id", uuid.New().String())

	h.RemoveSetting(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroupPolicyHandler_Eligibility(t *testing.T) {
	t.Run("single leave type with reason", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeGroupPolicyService{
			isAccessibleFn: func(ctx context.Context, cid, eid, leaveType string) (grouppolicy.EligibilityResponse, error) {
				assert.Equal(t, employeeID, eid)
				return grouppolicy.EligibilityResponse{
					LeaveType: leaveType,
					Reason:    grouppolicyerrors.ErrRoleNotPermitted.Message,
				}, nil
			},
		}

		h := grouppolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-eligibility/"+employeeID+"?leave_type=Annual+Leave", nil)
		c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}
		c.Set("company_id", uuid.New().String())

		h.Eligibility(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got grouppolicy.EligibilityResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.False(t, got.Accessible)
		assert.Equal(t, "role not permitted for this leave type", got.Reason)
	})

	t.Run("selectable list is never null", func(t *testing.T) {
		svc := &fakeGroupPolicyService{
			selectableFn: func(ctx context.Context, cid, eid string) ([]string, error) {
				return nil, nil
			},
		}

		h := grouppolicy.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-eligibility/x?selectable=true", nil)
		c.Params = gin.Params{{Key: "employeeId", Value: "x"}}
		c.Set("company_id", uuid.New().String())

		h.Eligibility(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.JSONEq(t, `[]`, string(env.Data))
	})
}
