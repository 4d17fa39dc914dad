package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type envelope struct {
	Ok    bool `json:"ok"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"employee_id": c.GetString("employee_id"),
				"company_id":  c.GetString("company_id"),
				"ctx_company": contextutil.GetCompanyID(c.Request.Context()),
				"ctx_user":    contextutil.GetUserID(c.Request.Context()),
			})
		})
		return r
	}

	valid := jwt.MapClaims{
		"user_id":     "u-1",
		"employee_id": "e-1",
		"company_id":  "c-1",
		"role":        "hr",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", valid))
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"e-1"`)
		assert.Contains(t, w.Body.String(), `"ctx_company":"c-1"`)
		assert.Contains(t, w.Body.String(), `"ctx_user":"u-1"`)
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, "test-secret", valid)})
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing", header: "", code: "UNAUTHORIZED"},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", valid), code: "INVALID_TOKEN"},
		{name: "expired", header: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u-1", "employee_id": "e-1", "company_id": "c-1",
			"exp": time.Now().Add(-time.Minute).Unix(),
		}), code: "TOKEN_EXPIRED"},
		{name: "no company", header: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u-1", "employee_id": "e-1",
		}), code: "INVALID_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			newRouter().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			env := decode(t, w)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(svc RBACService, withIdentity bool) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if withIdentity {
				c.Set("employee_id", "e-1")
				c.Set("company_id", "c-1")
			}
			c.Next()
		}, RBACAuthorize(svc, domain.ResourceLeaveReport, domain.ActionRead), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeEnforcer{allowed: true}
		w := run(svc, true)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{
			EmployeeID: "e-1",
			CompanyID:  "c-1",
			Resource:   domain.ResourceLeaveReport,
			Action:     domain.ActionRead,
		}, svc.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := run(&fakeEnforcer{}, true)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, w).Error.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := run(&fakeEnforcer{err: errors.New("casbin down")}, true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		w := run(&fakeEnforcer{allowed: true}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const cacheKey = "idemp:c-1:u-1:/leave-applications:k-1"
	const lockKey = cacheKey + ":lock"

	newRouter := func(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
		rdb, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/leave-applications", func(c *gin.Context) {
			c.Set("company_id", "c-1")
			c.Set("user_id", "u-1")
			c.Next()
		}, Idempotency(rdb), func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})
		return r, mock
	}

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/leave-applications", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	stored, err := json.Marshal(cachedResponse{
		Status:      http.StatusCreated,
		ContentType: "application/json; charset=utf-8",
		Body:        []byte(`{"ok":true}`),
	})
	require.NoError(t, err)

	t.Run("first call runs and stores the response", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, stored, idempotencyTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)
		mock.ExpectGet(cacheKey).SetVal(string(stored))

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Zero(t, calls)
	})

	t.Run("duplicate in flight", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", idempotencyLockTTL).SetVal(false)

		w := post(r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PROCESSING", decode(t, w).Error.Code)
		assert.Zero(t, calls)
	})

	t.Run("redis down fails open", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)
		mock.ExpectGet(cacheKey).SetErr(errors.New("connection refused"))

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}

func TestIdempotency_KeyIsScopedToResource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	var decided []string
	r := gin.New()
	r.POST("/leave-applications/:id/approve", func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("user_id", "u-1")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		decided = append(decided, c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	for _, id := range []string{"app-A", "app-B"} {
		cacheKey := "idemp:c-1:u-1:/leave-applications/" + id + "/approve:retry-1"
		stored, err := json.Marshal(cachedResponse{
			Status:      http.StatusOK,
			ContentType: "application/json; charset=utf-8",
			Body:        []byte(`{"id":"` + id + `"}`),
		})
		require.NoError(t, err)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "1", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, stored, idempotencyTTL).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)
	}

	for _, id := range []string{"app-A", "app-B"} {
		req := httptest.NewRequest(http.MethodPost, "/leave-applications/"+id+"/approve", nil)
		req.Header.Set("Idempotency-Key", "retry-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, `{"id":"`+id+`"}`, w.Body.String())
	}

	assert.Equal(t, []string{"app-A", "app-B"}, decided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-User"))
		c.Next()
	}, RateLimitByUser(rate.Limit(0.001), 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusNoContent, do("b"))
	assert.Equal(t, http.StatusNoContent, do(""))
	assert.Equal(t, http.StatusNoContent, do(""))
}
